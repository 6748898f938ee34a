package frontend

import (
	stderrors "errors"
	"testing"

	"go.bytecodealliance.org/wit"

	"github.com/girkit/girgen/analysis"
	"github.com/girkit/girgen/errors"
	"github.com/girkit/girgen/gir"
)

func strPtr(s string) *string { return &s }

func TestImporter_Primitives(t *testing.T) {
	env := gir.NewEnv()
	im := NewImporter(env)

	tests := []struct {
		typ  wit.Type
		want gir.Fundamental
	}{
		{wit.Bool{}, gir.Boolean},
		{wit.U8{}, gir.UInt8},
		{wit.S8{}, gir.Int8},
		{wit.U16{}, gir.UInt16},
		{wit.S16{}, gir.Int16},
		{wit.U32{}, gir.UInt32},
		{wit.S32{}, gir.Int32},
		{wit.U64{}, gir.UInt64},
		{wit.S64{}, gir.Int64},
		{wit.F32{}, gir.Float},
		{wit.F64{}, gir.Double},
		{wit.Char{}, gir.UniChar},
		{wit.String{}, gir.Utf8},
	}
	for _, tt := range tests {
		if got := im.TypeID(tt.typ); got != env.FundamentalID(tt.want) {
			t.Errorf("TypeID(%T) = %v, want %v", tt.typ, got, tt.want)
		}
	}
}

func TestImporter_Containers(t *testing.T) {
	env := gir.NewEnv()
	im := NewImporter(env)

	list := im.TypeID(&wit.TypeDef{Kind: &wit.List{Type: wit.U8{}}})
	arr, ok := env.Type(list).(*gir.CArray)
	if !ok {
		t.Fatalf("list maps to %T, want CArray", env.Type(list))
	}
	if arr.Elem != env.FundamentalID(gir.UInt8) {
		t.Errorf("list element = %v, want u8 fundamental", arr.Elem)
	}

	record := im.TypeID(&wit.TypeDef{Name: strPtr("point"), Kind: &wit.Record{}})
	if r, ok := env.Type(record).(*gir.Record); !ok || r.Name != "point" {
		t.Errorf("record maps to %v, want named Record", env.Type(record))
	}

	enum := im.TypeID(&wit.TypeDef{Name: strPtr("mode"), Kind: &wit.Enum{}})
	if _, ok := env.Type(enum).(*gir.Enumeration); !ok {
		t.Errorf("enum maps to %T, want Enumeration", env.Type(enum))
	}

	flags := im.TypeID(&wit.TypeDef{Name: strPtr("perms"), Kind: &wit.Flags{}})
	if _, ok := env.Type(flags).(*gir.Bitfield); !ok {
		t.Errorf("flags maps to %T, want Bitfield", env.Type(flags))
	}

	variant := im.TypeID(&wit.TypeDef{Name: strPtr("shape"), Kind: &wit.Variant{}})
	if _, ok := env.Type(variant).(*gir.Union); !ok {
		t.Errorf("variant maps to %T, want Union", env.Type(variant))
	}

	result := im.TypeID(&wit.TypeDef{Kind: &wit.Result{OK: wit.U32{}}})
	if _, ok := env.Type(result).(*gir.Union); !ok {
		t.Errorf("result maps to %T, want Union", env.Type(result))
	}

	res := &wit.TypeDef{Name: strPtr("file")}
	own := im.TypeID(&wit.TypeDef{Kind: &wit.Own{Type: res}})
	class, ok := env.Type(own).(*gir.Class)
	if !ok {
		t.Fatalf("own maps to %T, want Class", env.Type(own))
	}
	if class.Name != "file" || !class.Final {
		t.Errorf("own handle class = %+v, want final file", class)
	}

	borrow := im.TypeID(&wit.TypeDef{Kind: &wit.Borrow{Type: res}})
	if _, ok := env.Type(borrow).(*gir.Class); !ok {
		t.Errorf("borrow maps to %T, want Class", env.Type(borrow))
	}
}

func TestImporter_AnonymousNames(t *testing.T) {
	env := gir.NewEnv()
	im := NewImporter(env)

	first := im.TypeID(&wit.TypeDef{Kind: &wit.Record{}})
	second := im.TypeID(&wit.TypeDef{Kind: &wit.Record{}})

	a := env.Type(first).(*gir.Record)
	b := env.Type(second).(*gir.Record)
	if a.Name == b.Name {
		t.Errorf("anonymous records share name %q", a.Name)
	}
}

func TestImporter_Memoization(t *testing.T) {
	env := gir.NewEnv()
	im := NewImporter(env)

	td := &wit.TypeDef{Name: strPtr("point"), Kind: &wit.Record{}}
	first := im.TypeID(td)
	before := env.Len()
	second := im.TypeID(td)

	if first != second {
		t.Errorf("same typedef mapped twice: %v then %v", first, second)
	}
	if env.Len() != before {
		t.Errorf("second lookup registered %d new types", env.Len()-before)
	}
}

func TestImporter_Parameter(t *testing.T) {
	env := gir.NewEnv()
	im := NewImporter(env)

	opt := im.Parameter(Param{
		Name: "display-name",
		Type: &wit.TypeDef{Kind: &wit.Option{Type: wit.String{}}},
	})
	if opt.Name != "display_name" {
		t.Errorf("name = %q, want display_name", opt.Name)
	}
	if !opt.Nullable || !opt.AllowNone {
		t.Errorf("option parameter = %+v, want nullable and allow-none", opt)
	}
	if opt.Type != env.FundamentalID(gir.Utf8) {
		t.Errorf("option payload type = %v, want utf8", opt.Type)
	}
	if opt.Direction != gir.In {
		t.Errorf("direction = %v, want in", opt.Direction)
	}

	owned := im.Parameter(Param{
		Name: "handle",
		Type: &wit.TypeDef{Kind: &wit.Own{Type: &wit.TypeDef{Name: strPtr("file")}}},
	})
	if owned.Transfer != gir.TransferFull {
		t.Errorf("owned handle transfer = %v, want full", owned.Transfer)
	}

	plain := im.Parameter(Param{Name: "count", Type: wit.U32{}})
	if plain.Nullable || plain.Transfer != gir.TransferNone {
		t.Errorf("plain parameter = %+v, want no nullability or transfer", plain)
	}
}

func TestImporter_Function(t *testing.T) {
	env := gir.NewEnv()
	im := NewImporter(env)

	fn, err := im.Function("read-bytes",
		[]Param{
			{Name: "source", Type: &wit.TypeDef{Kind: &wit.Borrow{Type: &wit.TypeDef{Name: strPtr("file")}}}},
			{Name: "max", Type: wit.U64{}},
		},
		[]Param{
			{Name: "bytes", Type: &wit.TypeDef{Kind: &wit.List{Type: wit.U8{}}}},
		},
	)
	if err != nil {
		t.Fatalf("Function: %v", err)
	}

	if fn.Name != "read_bytes" {
		t.Errorf("name = %q, want read_bytes", fn.Name)
	}
	if len(fn.Parameters) != 2 {
		t.Fatalf("parameters len = %d, want 2", len(fn.Parameters))
	}
	if fn.Return == nil {
		t.Fatalf("return descriptor missing")
	}
	if fn.Return.Direction != gir.Return || fn.Return.Transfer != gir.TransferFull {
		t.Errorf("return = %+v, want return direction with full transfer", fn.Return)
	}
}

func TestImporter_Strict(t *testing.T) {
	env := gir.NewEnv()
	im := NewImporter(env)

	bad := Param{Name: "mystery", Type: &wit.TypeDef{}}

	if _, err := im.Function("f", []Param{bad}, nil); err != nil {
		t.Fatalf("lenient mode errored: %v", err)
	}

	im.Strict = true
	_, err := im.Function("f", []Param{bad}, nil)
	if err == nil {
		t.Fatalf("strict mode accepted an unsupported shape")
	}
	if !stderrors.Is(err, errors.New(errors.PhaseImport, errors.KindUnsupported).Build()) {
		t.Errorf("error = %v, want import/unsupported", err)
	}
}

func TestImporter_LoweringRoundTrip(t *testing.T) {
	env := gir.NewEnv()
	im := NewImporter(env)

	fn, err := im.Function("write",
		[]Param{
			{Name: "data", Type: &wit.TypeDef{Kind: &wit.List{Type: wit.U8{}}}},
			{Name: "data-len", Type: wit.U64{}},
		},
		nil,
	)
	if err != nil {
		t.Fatalf("Function: %v", err)
	}

	p := analysis.Analyze(env, fn.Parameters, nil, false, false, false)
	if len(p.Surface) != 1 || p.Surface[0].Name != "data" {
		t.Fatalf("Surface = %+v, want the length folded away", p.Surface)
	}

	var link *analysis.LengthLink
	for _, tr := range p.Transformations {
		if l, ok := tr.Kind.(*analysis.LengthLink); ok {
			link = l
		}
	}
	if link == nil {
		t.Fatalf("no length link produced")
	}
	if link.ArrayName != "data" || link.LengthName != "data_len" {
		t.Errorf("link = %+v, want data paired with data_len", link)
	}
}
