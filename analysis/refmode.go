package analysis

import "github.com/girkit/girgen/gir"

// RefMode is how the generated binding accesses a native parameter: by
// value, by shared reference, or by exclusive reference.
type RefMode int

const (
	RefModeNone RefMode = iota
	RefModeByRef
	RefModeByRefMut
	RefModeByRefImmut
)

var refModeNames = [...]string{
	RefModeNone:       "none",
	RefModeByRef:      "by-ref",
	RefModeByRefMut:   "by-ref-mut",
	RefModeByRefImmut: "by-ref-immut",
}

func (m RefMode) String() string {
	if int(m) < len(refModeNames) {
		return refModeNames[m]
	}
	return "none"
}

// RefModeOf computes the base reference mode from the type and declared
// direction. Value types need none; pointer-category types are passed by
// reference, exclusively so when the call writes through them.
func RefModeOf(env *gir.Env, id gir.TypeID, dir gir.Direction) RefMode {
	switch env.Type(env.ResolveAlias(id)).(type) {
	case gir.Fundamental:
		switch env.Type(env.ResolveAlias(id)).(gir.Fundamental) {
		case gir.Utf8, gir.Filename, gir.OsString:
			return RefModeByRef
		default:
			return RefModeNone
		}
	case *gir.Class, *gir.Interface:
		return RefModeByRef
	case *gir.Record, *gir.Union:
		if dir == gir.InOut || dir == gir.Out {
			return RefModeByRefMut
		}
		return RefModeByRef
	case *gir.CArray, *gir.FixedArray, *gir.Array, *gir.PtrArray,
		*gir.List, *gir.SList, *gir.HashTable:
		if dir == gir.InOut {
			return RefModeByRefMut
		}
		return RefModeByRef
	case *gir.Custom:
		if ConversionOf(env, id) == ConversionPointer {
			return RefModeByRef
		}
		return RefModeNone
	default:
		return RefModeNone
	}
}

// RefModeFor finalizes the reference mode for one descriptor. A configured
// immutable override downgrades exclusive access to shared; so does being
// the instance receiver of a method generated inside a shared trait context,
// where requiring exclusive access would infect every caller.
func RefModeFor(env *gir.Env, par *gir.Parameter, immutable, traitReceiver bool) RefMode {
	mode := RefModeOf(env, par.Type, par.Direction)
	if mode != RefModeByRefMut {
		return mode
	}
	if immutable {
		return RefModeByRefImmut
	}
	if traitReceiver && par.Direction != gir.InOut {
		return RefModeByRef
	}
	return mode
}
