// Package girgen is the core of a binding generator: it lowers
// language-neutral descriptions of native library functions into the
// parameter model that target-language code emission consumes.
//
// # Architecture Overview
//
// The module is organized into packages with distinct responsibilities:
//
//	girgen/              Root package: lowering entry point and options
//	├── gir/             Library model: type universe, Env, descriptors
//	├── analysis/        Parameter lowering engine (the core pass)
//	├── config/          Per-function TOML override configuration
//	├── frontend/        WIT importer feeding the same engine
//	├── nameutil/        Target-language keyword mangling
//	├── errors/          Structured error types
//	└── cmd/girgen/      CLI driver: batch report and TUI inspector
//
// # Quick Start
//
// Lower one function signature:
//
//	env := gir.NewEnv()
//	fn := &gir.Function{
//	    Name: "write",
//	    Parameters: []gir.Parameter{
//	        {Name: "data", Type: env.Register(&gir.CArray{Elem: env.FundamentalID(gir.UInt8)})},
//	        {Name: "len", Type: env.FundamentalID(gir.Size)},
//	    },
//	}
//	params := girgen.Lower(env, fn, nil, girgen.Options{})
//
// The result owns three ordered lists: the surface parameters callers of the
// generated binding see, the native parameters the foreign call needs, and
// the transformation program converting one into the other. In the example
// the length parameter is folded away: callers pass only the slice, and a
// length-link step recovers the count at the call site.
//
// Lowering is a pure pass over a read-only environment; different functions
// can be lowered concurrently without locking.
package girgen
