// Package errors provides structured error types for the generator.
//
// Errors carry the processing phase they occurred in, a machine-readable
// kind, and an optional path into the structure being processed (function
// name, parameter name, field chain). The lowering pass itself is total and
// never produces errors; this package serves configuration loading, the WIT
// frontend, and the CLI driver.
//
// Construction uses either a convenience constructor or the builder:
//
//	errors.New(errors.PhaseConfig, errors.KindInvalidData).
//	    Path("functions", "write").
//	    Detail("unknown string_type %q", v).
//	    Build()
package errors
