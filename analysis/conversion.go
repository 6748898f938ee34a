package analysis

import "github.com/girkit/girgen/gir"

// ConversionType is the category a native type lowers with. It decides which
// transformation step a parameter gets and whether ownership flags are
// meaningful for it.
type ConversionType int

const (
	// ConversionDirect passes the value through with no glue at all.
	ConversionDirect ConversionType = iota
	// ConversionScalar converts by value; no ownership crosses the boundary.
	ConversionScalar
	// ConversionPointer converts through a pointer with transfer semantics.
	ConversionPointer
	// ConversionBorrow needs no conversion glue on the way in.
	ConversionBorrow
	// ConversionUnknown is the degraded category for shapes the classifier
	// cannot place. Lowering still succeeds; output needs manual review.
	ConversionUnknown
)

var conversionNames = [...]string{
	ConversionDirect:  "direct",
	ConversionScalar:  "scalar",
	ConversionPointer: "pointer",
	ConversionBorrow:  "borrow",
	ConversionUnknown: "unknown",
}

func (c ConversionType) String() string {
	if int(c) < len(conversionNames) {
		return conversionNames[c]
	}
	return "unknown"
}

// ConversionOf classifies a type. Pure and total: unrecognized shapes
// degrade to ConversionUnknown rather than erroring, and the same
// (env, type) pair always yields the same category.
func ConversionOf(env *gir.Env, id gir.TypeID) ConversionType {
	switch t := env.Type(id).(type) {
	case gir.Fundamental:
		switch t {
		case gir.Int8, gir.UInt8, gir.Int16, gir.UInt16,
			gir.Int32, gir.UInt32, gir.Int64, gir.UInt64,
			gir.Int, gir.UInt, gir.Long, gir.ULong,
			gir.Size, gir.SSize, gir.Float, gir.Double:
			return ConversionDirect
		case gir.Boolean, gir.UniChar, gir.Type:
			return ConversionScalar
		case gir.Utf8, gir.Filename, gir.OsString, gir.Pointer:
			return ConversionPointer
		default:
			return ConversionUnknown
		}
	case *gir.Alias:
		return ConversionOf(env, t.Target)
	case *gir.Enumeration, *gir.Bitfield:
		return ConversionScalar
	case *gir.Class, *gir.Interface, *gir.Record, *gir.Union:
		return ConversionPointer
	case *gir.CArray, *gir.FixedArray, *gir.Array, *gir.PtrArray,
		*gir.List, *gir.SList, *gir.HashTable:
		return ConversionPointer
	case *gir.Callback:
		// Function pointers cross the boundary as-is.
		return ConversionDirect
	case *gir.Custom:
		switch t.Conversion {
		case "direct":
			return ConversionDirect
		case "scalar":
			return ConversionScalar
		case "pointer":
			return ConversionPointer
		case "borrow":
			return ConversionBorrow
		default:
			return ConversionUnknown
		}
	default:
		return ConversionUnknown
	}
}
