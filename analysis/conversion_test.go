package analysis

import (
	"testing"

	"github.com/girkit/girgen/gir"
)

func TestConversionOf_Fundamentals(t *testing.T) {
	env := gir.NewEnv()

	tests := []struct {
		f    gir.Fundamental
		want ConversionType
	}{
		{gir.Int8, ConversionDirect},
		{gir.UInt64, ConversionDirect},
		{gir.Size, ConversionDirect},
		{gir.SSize, ConversionDirect},
		{gir.Double, ConversionDirect},
		{gir.Boolean, ConversionScalar},
		{gir.UniChar, ConversionScalar},
		{gir.Type, ConversionScalar},
		{gir.Utf8, ConversionPointer},
		{gir.Filename, ConversionPointer},
		{gir.OsString, ConversionPointer},
		{gir.Pointer, ConversionPointer},
		{gir.VarArgs, ConversionUnknown},
		{gir.None, ConversionUnknown},
		{gir.Unsupported, ConversionUnknown},
	}
	for _, tt := range tests {
		if got := ConversionOf(env, env.FundamentalID(tt.f)); got != tt.want {
			t.Errorf("ConversionOf(%v) = %v, want %v", tt.f, got, tt.want)
		}
	}
}

func TestConversionOf_RegisteredTypes(t *testing.T) {
	env := gir.NewEnv()

	tests := []struct {
		name string
		def  gir.TypeDef
		want ConversionType
	}{
		{"class", &gir.Class{Name: "Widget"}, ConversionPointer},
		{"interface", &gir.Interface{Name: "Readable"}, ConversionPointer},
		{"record", &gir.Record{Name: "Rect"}, ConversionPointer},
		{"union", &gir.Union{Name: "Value"}, ConversionPointer},
		{"enumeration", &gir.Enumeration{Name: "Mode"}, ConversionScalar},
		{"bitfield", &gir.Bitfield{Name: "Flags"}, ConversionScalar},
		{"callback", &gir.Callback{Name: "Notify"}, ConversionDirect},
		{"carray", &gir.CArray{Elem: env.FundamentalID(gir.UInt8)}, ConversionPointer},
		{"list", &gir.List{Elem: env.FundamentalID(gir.Utf8)}, ConversionPointer},
		{"hash table", &gir.HashTable{}, ConversionPointer},
	}
	for _, tt := range tests {
		if got := ConversionOf(env, env.Register(tt.def)); got != tt.want {
			t.Errorf("%s: ConversionOf = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestConversionOf_AliasAndCustom(t *testing.T) {
	env := gir.NewEnv()

	inner := env.Register(&gir.Alias{Name: "Inner", Target: env.FundamentalID(gir.Boolean)})
	outer := env.Register(&gir.Alias{Name: "Outer", Target: inner})
	if got := ConversionOf(env, outer); got != ConversionScalar {
		t.Errorf("nested alias: ConversionOf = %v, want scalar", got)
	}

	tests := []struct {
		conversion string
		want       ConversionType
	}{
		{"direct", ConversionDirect},
		{"scalar", ConversionScalar},
		{"pointer", ConversionPointer},
		{"borrow", ConversionBorrow},
		{"", ConversionUnknown},
		{"bogus", ConversionUnknown},
	}
	for _, tt := range tests {
		id := env.Register(&gir.Custom{Name: "T", Conversion: tt.conversion})
		if got := ConversionOf(env, id); got != tt.want {
			t.Errorf("custom %q: ConversionOf = %v, want %v", tt.conversion, got, tt.want)
		}
	}
}

func TestConversionOf_Deterministic(t *testing.T) {
	env := gir.NewEnv()
	id := env.Register(&gir.Alias{Name: "Buf", Target: env.Register(&gir.CArray{Elem: env.FundamentalID(gir.UInt8)})})

	first := ConversionOf(env, id)
	for i := 0; i < 3; i++ {
		if got := ConversionOf(env, id); got != first {
			t.Fatalf("classification changed between calls: %v then %v", first, got)
		}
	}
}

func TestConversionType_String(t *testing.T) {
	tests := []struct {
		c    ConversionType
		want string
	}{
		{ConversionDirect, "direct"},
		{ConversionScalar, "scalar"},
		{ConversionPointer, "pointer"},
		{ConversionBorrow, "borrow"},
		{ConversionUnknown, "unknown"},
		{ConversionType(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", int(tt.c), got, tt.want)
		}
	}
}
