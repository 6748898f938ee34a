package analysis

import (
	"testing"

	"github.com/girkit/girgen/gir"
)

func TestCanAsReturn(t *testing.T) {
	env := gir.NewEnv()
	borrowed := env.Register(&gir.Custom{Name: "Context", Conversion: "borrow"})

	tests := []struct {
		name string
		par  gir.Parameter
		want bool
	}{
		{"out int", gir.Parameter{Type: env.FundamentalID(gir.Int), Direction: gir.Out}, true},
		{"out string", gir.Parameter{Type: env.FundamentalID(gir.Utf8), Direction: gir.Out}, true},
		{"in int", gir.Parameter{Type: env.FundamentalID(gir.Int), Direction: gir.In}, false},
		{"inout int", gir.Parameter{Type: env.FundamentalID(gir.Int), Direction: gir.InOut}, false},
		{"error slot", gir.Parameter{Type: env.FundamentalID(gir.Pointer), Direction: gir.Out, IsError: true}, false},
		{"caller allocates", gir.Parameter{Type: env.FundamentalID(gir.Utf8), Direction: gir.Out, CallerAllocates: true}, false},
		{"unknown shape", gir.Parameter{Type: env.FundamentalID(gir.VarArgs), Direction: gir.Out}, false},
		{"borrowed shape", gir.Parameter{Type: borrowed, Direction: gir.Out}, false},
	}
	for _, tt := range tests {
		if got := CanAsReturn(env, &tt.par); got != tt.want {
			t.Errorf("%s: CanAsReturn = %v, want %v", tt.name, got, tt.want)
		}
	}
}
