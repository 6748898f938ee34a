package analysis

import (
	"github.com/girkit/girgen/config"
	"github.com/girkit/girgen/gir"
)

// OverrideStringType applies a configured string_type override to a
// parameter's type id. The override only makes sense for types that already
// lower as strings or string arrays; anything else keeps its declared type.
func OverrideStringType(env *gir.Env, id gir.TypeID, configured []*config.Parameter) gir.TypeID {
	forced := gir.None
	for _, p := range configured {
		switch p.StringType {
		case "utf8":
			forced = gir.Utf8
		case "filename":
			forced = gir.Filename
		case "os-string":
			forced = gir.OsString
		}
		if forced != gir.None {
			break
		}
	}
	if forced == gir.None {
		return id
	}

	switch t := env.Type(env.ResolveAlias(id)).(type) {
	case gir.Fundamental:
		switch t {
		case gir.Utf8, gir.Filename, gir.OsString:
			return env.FundamentalID(forced)
		}
	case *gir.CArray:
		// Arrays of strings keep their container shape; only a plain
		// string type can be respelled.
		if isStringID(env, t.Elem) {
			return id
		}
	}
	return id
}

func isStringID(env *gir.Env, id gir.TypeID) bool {
	f, ok := env.Type(env.ResolveAlias(id)).(gir.Fundamental)
	if !ok {
		return false
	}
	switch f {
	case gir.Utf8, gir.Filename, gir.OsString:
		return true
	}
	return false
}
