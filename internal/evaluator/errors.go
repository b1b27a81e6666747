package evaluator

import (
	"fmt"

	"github.com/zen-lang/zen/internal/value"
)

// Error codes per spec.md §7's taxonomy. Lexical/Syntax errors are
// produced by the lexer/parser side-channels, not here; the evaluator only
// ever raises the runtime kinds below.
const (
	CodeUndefinedVariable = -200
	CodeUndefinedFunction = -201
	CodeTypeMismatch      = -202
	CodeDivisionByZero    = -203
	CodeIndexOutOfBounds  = -204
	CodeInvalidArgument   = -205
	CodeNullPointer       = -206
)

func newErr(code int, format string, args ...interface{}) *value.Value {
	return value.NewError(fmt.Sprintf(format, args...), code)
}

func undefinedVariable(name string) *value.Value {
	return newErr(CodeUndefinedVariable, "undefined variable: %s", name)
}

func undefinedFunction(name string) *value.Value {
	return newErr(CodeUndefinedFunction, "undefined function: %s", name)
}

func typeMismatch(op string, a, b *value.Value) *value.Value {
	return newErr(CodeTypeMismatch, "type mismatch: %s %s %s", value.TypeOf(a), op, value.TypeOf(b))
}

func divisionByZero() *value.Value {
	return newErr(CodeDivisionByZero, "division by zero")
}

func indexOutOfBounds(i, length int) *value.Value {
	return newErr(CodeIndexOutOfBounds, "index %d out of bounds (length %d)", i, length)
}

func invalidArgument(format string, args ...interface{}) *value.Value {
	return newErr(CodeInvalidArgument, format, args...)
}

func nullPointer(context string) *value.Value {
	return newErr(CodeNullPointer, "null pointer: %s", context)
}

func notCallable(v *value.Value) *value.Value {
	return newErr(CodeTypeMismatch, "not callable: %s", value.TypeOf(v))
}
