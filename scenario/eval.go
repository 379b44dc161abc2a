package scenario

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

// evalContext is the HCL evaluation context for scenario files. It exposes
// a few functions that make long grid rows bearable to write:
//
//	rows = [
//	  join("", ["S", repeat(".", 30), "G"]),
//	  repeat("#", 32),
//	]
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"repeat": repeatFunc,
			"join":   stdlib.JoinFunc,
			"upper":  stdlib.UpperFunc,
		},
	}
}

// repeatFunc is repeat(str, n): str concatenated n times.
var repeatFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "str", Type: cty.String},
		{Name: "n", Type: cty.Number},
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		var n int
		if err := gocty.FromCtyValue(args[1], &n); err != nil {
			return cty.UnknownVal(cty.String), function.NewArgError(1, err)
		}
		if n < 0 {
			return cty.UnknownVal(cty.String), function.NewArgErrorf(1, "must not be negative")
		}

		return cty.StringVal(strings.Repeat(args[0].AsString(), n)), nil
	},
})
