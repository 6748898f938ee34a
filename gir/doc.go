// Package gir holds the language-neutral model of a native library as
// extracted from an introspection source: the type universe, the read-only
// type environment, and the per-parameter descriptors the analysis packages
// consume.
//
// # Type Environment
//
// An Env is built once, before analysis starts, and is never mutated
// afterward. Every analysis query (definition lookup, alias resolution,
// class/interface/final checks) reads from it without locking, which is what
// makes lowering different functions in parallel safe.
//
//	env := gir.NewEnv()
//	bytes := env.Register(&gir.CArray{Elem: env.FundamentalID(gir.UInt8)})
//
// Fundamental types are pre-registered; NewEnv guarantees that
// env.FundamentalID(f) is valid for every Fundamental value.
//
// # Descriptors
//
// Parameter is the raw record of one native function parameter: direction,
// nullability, ownership transfer, caller-allocation, scope, and the optional
// cross-parameter links (array length, closure user-data, destroy notifier).
// Descriptors are plain data; all interpretation lives in the analysis
// package.
package gir
