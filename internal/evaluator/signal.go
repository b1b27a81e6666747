// Package evaluator walks a ZEN AST against a Scope, producing Values. It
// threads a single internal control signal through statement evaluation
// (Normal/Return/Break/Continue/Error) rather than using Go panics or
// exceptions for non-local control flow, per the language's own "no
// exception-style try/catch" non-goal.
package evaluator

import "github.com/zen-lang/zen/internal/value"

// SignalKind tags which of the five statement-evaluation outcomes a Signal
// carries.
type SignalKind int

const (
	SigNormal SignalKind = iota
	SigReturn
	SigBreak
	SigContinue
	SigError
)

// Signal is the result of evaluating one statement (or a block of them):
// either continuing normally, propagating a return/break/continue, or
// short-circuiting on an error.
type Signal struct {
	Kind  SignalKind
	Value *value.Value // meaningful for SigNormal, SigReturn, SigError
}

func normal(v *value.Value) Signal  { return Signal{Kind: SigNormal, Value: v} }
func sigReturn(v *value.Value) Signal { return Signal{Kind: SigReturn, Value: v} }
func sigBreak() Signal               { return Signal{Kind: SigBreak} }
func sigContinue() Signal            { return Signal{Kind: SigContinue} }
func sigError(v *value.Value) Signal { return Signal{Kind: SigError, Value: v} }

// isError reports whether v is a KindError Value (evaluator's short-circuit
// test — mirrors the teacher's `isError`/`Value.Type() == "ERROR"` check).
func isError(v *value.Value) bool {
	return v != nil && v.Kind == value.KindError
}

// errSignalFor wraps an already-error Value as a SigError signal, or builds
// a normal signal if v isn't an error — used after evaluating an
// expression that might have failed.
func errSignalFor(v *value.Value) Signal {
	if isError(v) {
		return sigError(v)
	}
	return normal(v)
}
