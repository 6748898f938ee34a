package girgen

import (
	"github.com/girkit/girgen/analysis"
	"github.com/girkit/girgen/config"
	"github.com/girkit/girgen/gir"
)

// Options adjusts how one function is lowered. Configuration blocks matched
// by name can force length-detection off or mark the function asynchronous
// on top of these.
type Options struct {
	DisableLengthDetect bool
	Async               bool
	InTrait             bool
}

// Lower computes the parameter model for one function signature, applying
// any configuration blocks matching its name. cfg may be nil.
func Lower(env *gir.Env, fn *gir.Function, cfg *config.Config, opts Options) *analysis.Parameters {
	matched := cfg.Matched(fn.Name)

	disable := opts.DisableLengthDetect
	async := opts.Async
	inTrait := opts.InTrait
	for _, m := range matched {
		if m.IgnoreLengthDetect {
			disable = true
		}
		if m.Async {
			async = true
		}
		if m.Trait {
			inTrait = true
		}
	}

	params := analysis.Analyze(env, fn.Parameters, matched, disable, async, inTrait)
	params.AnalyzeReturn(env, fn.Return)
	return params
}
