package evaluator

import (
	"github.com/zen-lang/zen/internal/ast"
	"github.com/zen-lang/zen/internal/scope"
	"github.com/zen-lang/zen/internal/value"
)

// defaultMaxCallDepth bounds recursive calls, grounded on the teacher's
// CallStack.maxDepth (internal/interp/evaluator/callstack.go) — spec.md
// doesn't name a recursion-depth error kind, but §4.6's "must not crash"
// discipline extends to runaway recursion the same way it does to bad
// input, so a bounded depth reusing InvalidArgument's code stands in for
// the stack-overflow guard the teacher has a dedicated kind for.
const defaultMaxCallDepth = 1024

// Evaluator walks a ZEN AST against a Scope tree, producing Values.
type Evaluator struct {
	maxCallDepth int
	callDepth    int
}

// New constructs an Evaluator with the default recursion limit.
func New() *Evaluator {
	return &Evaluator{maxCallDepth: defaultMaxCallDepth}
}

// EvalProgram evaluates every top-level statement against root in order,
// returning the last statement's value, or the first Error Value
// encountered (which short-circuits the remaining statements).
func (e *Evaluator) EvalProgram(prog *ast.Program, root *scope.Scope) *value.Value {
	var last *value.Value = value.NewNull()
	for _, stmt := range prog.Statements {
		sig := e.evalStatement(stmt, root)
		switch sig.Kind {
		case SigError:
			return sig.Value
		case SigReturn, SigBreak, SigContinue:
			// Top level has no enclosing loop/function; treat like Normal.
			last = sig.Value
		default:
			last = sig.Value
		}
	}
	return last
}

// evalBlock evaluates stmts in order against sc, stopping and propagating
// the first non-Normal signal (Return/Break/Continue/Error).
func (e *Evaluator) evalBlock(stmts []ast.Stmt, sc *scope.Scope) Signal {
	result := normal(value.NewNull())
	for _, stmt := range stmts {
		result = e.evalStatement(stmt, sc)
		if result.Kind != SigNormal {
			return result
		}
	}
	return result
}
