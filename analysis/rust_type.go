package analysis

import "github.com/girkit/girgen/gir"

var fundamentalSpellings = map[gir.Fundamental]string{
	gir.Boolean:  "bool",
	gir.Int8:     "i8",
	gir.UInt8:    "u8",
	gir.Int16:    "i16",
	gir.UInt16:   "u16",
	gir.Int32:    "i32",
	gir.UInt32:   "u32",
	gir.Int64:    "i64",
	gir.UInt64:   "u64",
	gir.Int:      "i32",
	gir.UInt:     "u32",
	gir.Long:     "libc::c_long",
	gir.ULong:    "libc::c_ulong",
	gir.Size:     "usize",
	gir.SSize:    "isize",
	gir.Float:    "f32",
	gir.Double:   "f64",
	gir.UniChar:  "char",
	gir.Utf8:     "str",
	gir.Filename: "std::path::Path",
	gir.OsString: "std::ffi::OsStr",
	gir.Type:     "glib::types::Type",
	gir.Pointer:  "glib::ffi::gpointer",
}

// TargetType renders a type id as target-language source text. It only
// needs to cover what the length-link transformation prints: integer
// spellings and the names of anything a misconfigured link might point at.
func TargetType(env *gir.Env, id gir.TypeID) string {
	switch t := env.Type(id).(type) {
	case gir.Fundamental:
		if s, ok := fundamentalSpellings[t]; ok {
			return s
		}
		return "libc::c_void"
	case *gir.Alias:
		return TargetType(env, t.Target)
	default:
		if name := gir.TypeName(t); name != "" {
			return name
		}
		return "libc::c_void"
	}
}
