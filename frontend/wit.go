package frontend

import (
	"fmt"

	"go.bytecodealliance.org/wit"

	"github.com/girkit/girgen/errors"
	"github.com/girkit/girgen/gir"
	"github.com/girkit/girgen/nameutil"
)

// Param pairs a WIT parameter name with its type.
type Param struct {
	Name string
	Type wit.Type
}

// Importer registers WIT types in a gir.Env and builds native descriptors
// from WIT signatures. When Strict is set, shapes that would degrade to the
// unsupported fundamental are reported instead of silently accepted.
type Importer struct {
	Strict bool

	env  *gir.Env
	memo map[wit.Type]gir.TypeID
	anon int
}

// NewImporter returns an importer registering into env.
func NewImporter(env *gir.Env) *Importer {
	return &Importer{
		env:  env,
		memo: make(map[wit.Type]gir.TypeID),
	}
}

// TypeID maps a WIT type to an environment id, registering named and
// container types on first use. Total: unsupported shapes map to the
// Unsupported fundamental.
func (im *Importer) TypeID(t wit.Type) gir.TypeID {
	if id, ok := im.memo[t]; ok {
		return id
	}
	id := im.typeID(t)
	im.memo[t] = id
	return id
}

func (im *Importer) typeID(t wit.Type) gir.TypeID {
	switch t.(type) {
	case wit.Bool:
		return im.env.FundamentalID(gir.Boolean)
	case wit.U8:
		return im.env.FundamentalID(gir.UInt8)
	case wit.S8:
		return im.env.FundamentalID(gir.Int8)
	case wit.U16:
		return im.env.FundamentalID(gir.UInt16)
	case wit.S16:
		return im.env.FundamentalID(gir.Int16)
	case wit.U32:
		return im.env.FundamentalID(gir.UInt32)
	case wit.S32:
		return im.env.FundamentalID(gir.Int32)
	case wit.U64:
		return im.env.FundamentalID(gir.UInt64)
	case wit.S64:
		return im.env.FundamentalID(gir.Int64)
	case wit.F32:
		return im.env.FundamentalID(gir.Float)
	case wit.F64:
		return im.env.FundamentalID(gir.Double)
	case wit.Char:
		return im.env.FundamentalID(gir.UniChar)
	case wit.String:
		return im.env.FundamentalID(gir.Utf8)
	}

	td, ok := t.(*wit.TypeDef)
	if !ok {
		return im.env.FundamentalID(gir.Unsupported)
	}

	switch kind := td.Kind.(type) {
	case *wit.List:
		return im.env.Register(&gir.CArray{Elem: im.TypeID(kind.Type)})
	case *wit.Option:
		// Nullability lives on the parameter; the type is the payload.
		return im.TypeID(kind.Type)
	case *wit.Record:
		return im.env.Register(&gir.Record{Name: im.typeName(td, "record")})
	case *wit.Tuple:
		return im.env.Register(&gir.Record{Name: im.typeName(td, "tuple")})
	case *wit.Enum:
		return im.env.Register(&gir.Enumeration{Name: im.typeName(td, "enum")})
	case *wit.Flags:
		return im.env.Register(&gir.Bitfield{Name: im.typeName(td, "flags")})
	case *wit.Variant:
		return im.env.Register(&gir.Union{Name: im.typeName(td, "variant")})
	case *wit.Result:
		return im.env.Register(&gir.Union{Name: im.typeName(td, "result")})
	case *wit.Own:
		return im.resourceClass(kind.Type)
	case *wit.Borrow:
		return im.resourceClass(kind.Type)
	case wit.Type:
		return im.TypeID(kind)
	default:
		return im.env.FundamentalID(gir.Unsupported)
	}
}

// resourceClass registers a resource handle as a final class: handles are
// opaque and never subclassed.
func (im *Importer) resourceClass(td *wit.TypeDef) gir.TypeID {
	name := "resource"
	if td != nil {
		name = im.typeName(td, "resource")
	}
	return im.env.Register(&gir.Class{Name: name, Final: true})
}

func (im *Importer) typeName(td *wit.TypeDef, fallback string) string {
	if td.Name != nil && *td.Name != "" {
		return *td.Name
	}
	im.anon++
	return fmt.Sprintf("%s-%d", fallback, im.anon)
}

// Parameter builds one In descriptor from a WIT parameter.
func (im *Importer) Parameter(p Param) gir.Parameter {
	t := p.Type
	nullable := false
	transfer := gir.TransferNone

	if td, ok := t.(*wit.TypeDef); ok {
		switch kind := td.Kind.(type) {
		case *wit.Option:
			nullable = true
			t = kind.Type
		case *wit.Own:
			transfer = gir.TransferFull
		case *wit.Borrow:
			transfer = gir.TransferNone
		}
	}

	return gir.Parameter{
		Name:      nameutil.SnakeCase(p.Name),
		Type:      im.TypeID(t),
		CType:     Spelling(p.Type),
		Direction: gir.In,
		Nullable:  nullable,
		AllowNone: nullable,
		Transfer:  transfer,
	}
}

// Function builds a native descriptor set from a WIT signature. The first
// result, if any, becomes the return descriptor. In strict mode, parameters
// degrading to the unsupported fundamental are reported.
func (im *Importer) Function(name string, params, results []Param) (gir.Function, error) {
	fn := gir.Function{
		Name:       nameutil.SnakeCase(name),
		Parameters: make([]gir.Parameter, 0, len(params)),
	}

	for _, p := range params {
		par := im.Parameter(p)
		if err := im.check(name, p, par); err != nil {
			return gir.Function{}, err
		}
		fn.Parameters = append(fn.Parameters, par)
	}

	if len(results) > 0 {
		ret := im.Parameter(results[0])
		ret.Direction = gir.Return
		ret.Transfer = gir.TransferFull
		if err := im.check(name, results[0], ret); err != nil {
			return gir.Function{}, err
		}
		fn.Return = &ret
	}

	return fn, nil
}

func (im *Importer) check(fn string, p Param, par gir.Parameter) error {
	if !im.Strict {
		return nil
	}
	if par.Type == im.env.FundamentalID(gir.Unsupported) {
		return errors.New(errors.PhaseImport, errors.KindUnsupported).
			Path(fn).
			Param(p.Name).
			Type(Spelling(p.Type)).
			Detail("no native counterpart for WIT shape %T", p.Type).
			Build()
	}
	return nil
}

// Spelling renders a WIT type as source text, used for the native type
// spelling of imported descriptors.
func Spelling(t wit.Type) string {
	switch v := t.(type) {
	case wit.Bool:
		return "bool"
	case wit.U8:
		return "u8"
	case wit.S8:
		return "s8"
	case wit.U16:
		return "u16"
	case wit.S16:
		return "s16"
	case wit.U32:
		return "u32"
	case wit.S32:
		return "s32"
	case wit.U64:
		return "u64"
	case wit.S64:
		return "s64"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	case wit.Char:
		return "char"
	case wit.String:
		return "string"
	case *wit.TypeDef:
		if v.Name != nil && *v.Name != "" {
			return *v.Name
		}
		switch kind := v.Kind.(type) {
		case *wit.List:
			return "list<" + Spelling(kind.Type) + ">"
		case *wit.Option:
			return "option<" + Spelling(kind.Type) + ">"
		case *wit.Own:
			return "own<resource>"
		case *wit.Borrow:
			return "borrow<resource>"
		default:
			return "typedef"
		}
	default:
		return fmt.Sprintf("%T", t)
	}
}
