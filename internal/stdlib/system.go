package stdlib

import (
	"math/rand"

	"github.com/zen-lang/zen/internal/scope"
	"github.com/zen-lang/zen/internal/value"
)

// registerSystem installs `random`, returning a float in [0, 1) — the same
// contract as the teacher's Random() built-in (math.go), both backed by
// Go's math/rand.
func registerSystem(root *scope.Scope, rng *rand.Rand) {
	define(root, "random", func(args []*value.Value) *value.Value {
		return value.NewNumber(rng.Float64())
	})
}
