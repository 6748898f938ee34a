// Package frontend maps WIT interface descriptions onto the generator's
// native descriptor model, so WIT-first libraries feed the same lowering
// engine as introspected C libraries.
//
// The mapping is deliberately lossy in the direction of the native model:
// option<T> becomes a nullable parameter of T, own/borrow handles become
// transfer annotations on a resource class, lists become C arrays, and any
// WIT shape without a native counterpart degrades to the unsupported
// fundamental, which the lowering engine turns into an Unknown-category
// conversion rather than an error.
package frontend
