package gir

import "testing"

func TestEnv_Fundamentals(t *testing.T) {
	env := NewEnv()

	for f := None; f < fundamentalCount; f++ {
		id := env.FundamentalID(f)
		got, ok := env.Type(id).(Fundamental)
		if !ok || got != f {
			t.Errorf("FundamentalID(%v) resolves to %v", f, env.Type(id))
		}
	}

	if env.FundamentalID(Fundamental(-1)) != TypeID(Unsupported) {
		t.Errorf("out-of-range fundamental must map to unsupported")
	}
}

func TestEnv_TypeOutOfRange(t *testing.T) {
	env := NewEnv()

	if got := env.Type(TypeID(-1)); got != Fundamental(Unsupported) {
		t.Errorf("Type(-1) = %v, want unsupported", got)
	}
	if got := env.Type(TypeID(env.Len())); got != Fundamental(Unsupported) {
		t.Errorf("Type(len) = %v, want unsupported", got)
	}
}

func TestEnv_ResolveAlias(t *testing.T) {
	env := NewEnv()
	class := env.Register(&Class{Name: "Widget", Final: true})
	inner := env.Register(&Alias{Name: "Inner", Target: class})
	outer := env.Register(&Alias{Name: "Outer", Target: inner})

	if got := env.ResolveAlias(outer); got != class {
		t.Errorf("ResolveAlias(outer) = %v, want %v", got, class)
	}
	if got := env.ResolveAlias(class); got != class {
		t.Errorf("ResolveAlias(non-alias) = %v, want identity", got)
	}

	if !env.IsClass(outer) {
		t.Errorf("IsClass through alias chain = false, want true")
	}
	if !env.IsFinal(outer) {
		t.Errorf("IsFinal through alias chain = false, want true")
	}
	if env.IsInterface(outer) {
		t.Errorf("IsInterface on class alias = true, want false")
	}
}

func TestEnv_ResolveAliasCycle(t *testing.T) {
	env := NewEnv()
	a := env.Register(&Alias{Name: "A"})
	b := env.Register(&Alias{Name: "B", Target: a})
	env.Type(a).(*Alias).Target = b

	// Must terminate; the resolved id is one of the cycle members.
	got := env.ResolveAlias(a)
	if got != a && got != b {
		t.Errorf("ResolveAlias in a cycle = %v, want a cycle member", got)
	}
}

func TestEnv_Name(t *testing.T) {
	env := NewEnv()
	record := env.Register(&Record{Name: "Rect"})
	anon := env.Register(&CArray{Elem: env.FundamentalID(UInt8)})

	tests := []struct {
		id   TypeID
		want string
	}{
		{env.FundamentalID(Utf8), "utf8"},
		{env.FundamentalID(Pointer), "gpointer"},
		{record, "Rect"},
		{anon, ""},
	}
	for _, tt := range tests {
		if got := env.Name(tt.id); got != tt.want {
			t.Errorf("Name(%v) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestFundamentalByName(t *testing.T) {
	tests := []struct {
		name   string
		want   Fundamental
		wantOK bool
	}{
		{"guint8", UInt8, true},
		{"gsize", Size, true},
		{"utf8", Utf8, true},
		{"gpointer", Pointer, true},
		{"no-such-type", Unsupported, false},
	}
	for _, tt := range tests {
		got, ok := FundamentalByName(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("FundamentalByName(%q) = %v, %v; want %v, %v",
				tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}
