package analysis

import "github.com/girkit/girgen/gir"

// CanAsReturn decides whether an out parameter can be surfaced as the
// function's return value instead of appearing in the surface list. Error
// slots and caller-allocated buffers stay as parameters, and so does
// anything the classifier cannot place.
func CanAsReturn(env *gir.Env, par *gir.Parameter) bool {
	if par.Direction != gir.Out {
		return false
	}
	if par.IsError || par.CallerAllocates {
		return false
	}
	switch ConversionOf(env, par.Type) {
	case ConversionUnknown, ConversionBorrow:
		return false
	}
	return true
}
