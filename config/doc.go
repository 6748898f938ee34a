// Package config holds per-function override configuration for the
// generator, loaded from TOML.
//
// Overrides are keyed by function name (exact or regex pattern) and,
// within a function, by parameter name. A parameter entry can override
// declared nullability, mark a value as immutable, force a string type
// representation, or explicitly link a length parameter to its array:
//
//	[[function]]
//	name = "write_all"
//	    [[function.parameter]]
//	    name = "count"
//	    length_of = "data"
//
// Matching never fails: a name with no matching entries simply yields the
// empty slice, which is the default path for the analysis package.
package config
