package gir

// TypeID identifies a type in an Env. The zero value is the None fundamental.
type TypeID int

// Fundamental is the set of built-in introspection types.
type Fundamental int

const (
	None Fundamental = iota
	Boolean
	Int8
	UInt8
	Int16
	UInt16
	Int32
	UInt32
	Int64
	UInt64
	Int
	UInt
	Long
	ULong
	Size
	SSize
	Float
	Double
	UniChar
	Utf8
	Filename
	OsString
	Type
	Pointer
	VarArgs
	Unsupported

	fundamentalCount
)

var fundamentalNames = [...]string{
	None:        "none",
	Boolean:     "gboolean",
	Int8:        "gint8",
	UInt8:       "guint8",
	Int16:       "gint16",
	UInt16:      "guint16",
	Int32:       "gint32",
	UInt32:      "guint32",
	Int64:       "gint64",
	UInt64:      "guint64",
	Int:         "gint",
	UInt:        "guint",
	Long:        "glong",
	ULong:       "gulong",
	Size:        "gsize",
	SSize:       "gssize",
	Float:       "gfloat",
	Double:      "gdouble",
	UniChar:     "gunichar",
	Utf8:        "utf8",
	Filename:    "filename",
	OsString:    "os-string",
	Type:        "GType",
	Pointer:     "gpointer",
	VarArgs:     "varargs",
	Unsupported: "unsupported",
}

func (f Fundamental) String() string {
	if int(f) < len(fundamentalNames) {
		return fundamentalNames[f]
	}
	return "unsupported"
}

func (Fundamental) isType() {}

// FundamentalByName resolves a fundamental spelling like "guint8".
func FundamentalByName(name string) (Fundamental, bool) {
	for f, n := range fundamentalNames {
		if n == name {
			return Fundamental(f), true
		}
	}
	return Unsupported, false
}

// TypeDef is one entry in the type environment. Implementations are the
// Fundamental kinds plus the named and container types below.
type TypeDef interface {
	isType()
}

// Named library types.

type Alias struct {
	Name   string
	CType  string
	Target TypeID
}

type Class struct {
	Name   string
	Parent TypeID
	Final  bool
}

type Interface struct {
	Name string
}

type Record struct {
	Name  string
	Boxed bool
}

type Union struct {
	Name string
}

type Enumeration struct {
	Name string
}

type Bitfield struct {
	Name string
}

type Callback struct {
	Name string
}

// Custom is a type injected by configuration rather than the introspection
// source. Conversion names the conversion category it lowers with; the
// analysis package maps it onto its own classifier categories.
type Custom struct {
	Name       string
	Conversion string // "direct", "scalar", "pointer", "borrow", "unknown"
}

// Container types.

type CArray struct {
	Elem TypeID
}

type FixedArray struct {
	Elem TypeID
	Size int
}

// Array is a growable element array (GArray in the source domain).
type Array struct {
	Elem TypeID
}

type PtrArray struct {
	Elem TypeID
}

type List struct {
	Elem TypeID
}

type SList struct {
	Elem TypeID
}

type HashTable struct {
	Key   TypeID
	Value TypeID
}

func (*Alias) isType()       {}
func (*Class) isType()       {}
func (*Interface) isType()   {}
func (*Record) isType()      {}
func (*Union) isType()       {}
func (*Enumeration) isType() {}
func (*Bitfield) isType()    {}
func (*Callback) isType()    {}
func (*Custom) isType()      {}
func (*CArray) isType()      {}
func (*FixedArray) isType()  {}
func (*Array) isType()       {}
func (*PtrArray) isType()    {}
func (*List) isType()        {}
func (*SList) isType()       {}
func (*HashTable) isType()   {}

// TypeName returns the declared name of a named type, or the fundamental
// spelling, or "" for anonymous containers.
func TypeName(t TypeDef) string {
	switch t := t.(type) {
	case Fundamental:
		return t.String()
	case *Alias:
		return t.Name
	case *Class:
		return t.Name
	case *Interface:
		return t.Name
	case *Record:
		return t.Name
	case *Union:
		return t.Name
	case *Enumeration:
		return t.Name
	case *Bitfield:
		return t.Name
	case *Callback:
		return t.Name
	case *Custom:
		return t.Name
	default:
		return ""
	}
}
