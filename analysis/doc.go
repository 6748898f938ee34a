// Package analysis implements the parameter lowering engine: the semantic
// pass that turns one native function's raw parameter list into the surface
// parameter list exposed to binding callers, the exact native list the
// foreign call needs, and an ordered program of per-parameter transformation
// steps that code emission consumes blindly.
//
// # Model
//
//	Descriptors ──[Analyze]──▶ Parameters
//	                            ├── Surface  []SurfaceParameter
//	                            ├── Native   []NativeParameter
//	                            └── Steps    []Transformation
//
// The native list is always 1:1 with the input descriptors. The surface list
// shrinks when parameters are folded away: length parameters paired with an
// array, out parameters promoted to return values, and the callback/user-data
// plumbing of asynchronous functions. Each transformation step carries its
// native index and, when the parameter still has a surface counterpart, its
// surface index.
//
// # Totality
//
// Analyze never fails. Every optional lookup (a length parameter with no
// qualifying array, a return value without a length link, an absent
// configuration entry) degrades to a conservative model instead of an error;
// types the classifier cannot place lower through the Unknown category.
//
// The pass is a pure computation over a read-only environment, so lowering
// different functions concurrently is safe without locking.
package analysis
