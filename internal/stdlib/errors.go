package stdlib

import (
	"fmt"

	"github.com/zen-lang/zen/internal/value"
)

// Error codes mirror spec.md §7's taxonomy. Duplicated from
// internal/evaluator/errors.go rather than imported from it: stdlib has no
// dependency on evaluator (the registry is wired into a scope by cmd/zen,
// not by the evaluator itself), and the two packages describe the same
// fixed, spec-mandated integers rather than sharing implementation.
const (
	codeTypeMismatch    = -202
	codeInvalidArgument = -205
	codeNullPointer     = -206
)

func typeMismatchErr(fn string, v *value.Value) *value.Value {
	return value.NewError(fmt.Sprintf("%s: unexpected argument type %s", fn, value.TypeOf(v)), codeTypeMismatch)
}

func invalidArgumentErr(format string, args ...interface{}) *value.Value {
	return value.NewError(fmt.Sprintf(format, args...), codeInvalidArgument)
}

func nullPointerErr(context string) *value.Value {
	return value.NewError(fmt.Sprintf("null pointer: %s", context), codeNullPointer)
}

func arg(args []*value.Value, i int) *value.Value {
	if i < 0 || i >= len(args) {
		return value.NewNull()
	}
	return args[i]
}
