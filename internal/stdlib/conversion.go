package stdlib

import (
	"math"

	"github.com/zen-lang/zen/internal/scope"
	"github.com/zen-lang/zen/internal/value"
)

// registerConversion installs `toNumber`, `toString`, and `round`.
func registerConversion(root *scope.Scope) {
	define(root, "toNumber", func(args []*value.Value) *value.Value {
		return value.NewNumber(value.ToNumberOrNaN(arg(args, 0)))
	})

	define(root, "toString", func(args []*value.Value) *value.Value {
		return value.NewString(value.ToString(arg(args, 0)))
	})

	define(root, "round", func(args []*value.Value) *value.Value {
		v := arg(args, 0)
		if v.Kind != value.KindNumber {
			return typeMismatchErr("round", v)
		}
		return value.NewNumber(math.Round(v.Num))
	})
}
