package evaluator

import (
	"github.com/zen-lang/zen/internal/ast"
	"github.com/zen-lang/zen/internal/scope"
	"github.com/zen-lang/zen/internal/value"
)

// evalStatement dispatches on the concrete statement node type, mirroring
// the teacher's visitor-per-node-kind split (visitor_statements.go) but as
// one type switch, since ZEN's statement set is small.
func (e *Evaluator) evalStatement(stmt ast.Stmt, sc *scope.Scope) Signal {
	switch s := stmt.(type) {
	case *ast.Assignment:
		return e.evalAssignment(s, sc)
	case *ast.DestructureAssignment:
		return e.evalDestructureAssignment(s, sc)
	case *ast.If:
		return e.evalIf(s, sc)
	case *ast.While:
		return e.evalWhile(s, sc)
	case *ast.For:
		return e.evalFor(s, sc)
	case *ast.FunctionDef:
		fn := value.NewFunction(s.Params, s.Body, sc)
		fn.Fn.Name = s.Name
		sc.Define(s.Name, fn)
		return normal(value.NewNull())
	case *ast.Return:
		if s.Value == nil {
			return sigReturn(value.NewNull())
		}
		v := e.evalExpr(s.Value, sc)
		if isError(v) {
			return sigError(v)
		}
		return sigReturn(v)
	case *ast.Break:
		return sigBreak()
	case *ast.Continue:
		return sigContinue()
	case *ast.ClassDef:
		return e.evalClassDef(s, sc)
	case *ast.ExpressionStatement:
		v := e.evalExpr(s.Expression, sc)
		if isError(v) {
			return sigError(v)
		}
		// A bare identifier or member reference (not already a Call node)
		// that resolves to a zero-argument Function is invoked with no
		// arguments. ZEN's paren-free call grammar only builds a Call node
		// when at least one argument-starting token follows, so a
		// zero-argument call (e.g. a no-arg method statement like
		// `rex.speak`) has no syntax of its own to distinguish "call with
		// no args" from "reference the function value" — this statement-
		// position heuristic resolves it the way a bare reference is never
		// useful for its side effects otherwise. Documented deviation, same
		// spirit as the object-literal disambiguation spec.md invites
		// implementers to choose and record.
		if v != nil && v.Kind == value.KindFunction && len(v.Fn.Params) == 0 {
			switch s.Expression.(type) {
			case *ast.Identifier, *ast.Member:
				return errSignalFor(e.callValue(v, nil))
			}
		}
		return normal(v)
	default:
		return normal(value.NewNull())
	}
}

// evalAssignment implements `set target value` for all three target
// shapes spec.md §4.5 names: identifier, member chain, index chain.
// Per spec.md §5's ordering rule, the RHS is evaluated before the target
// is resolved (`set x x+1` sees the old x).
func (e *Evaluator) evalAssignment(s *ast.Assignment, sc *scope.Scope) Signal {
	rhs := e.evalExpr(s.Value, sc)
	if isError(rhs) {
		return sigError(rhs)
	}

	switch target := s.Target.(type) {
	case *ast.Identifier:
		sc.Define(target.Name, value.Ref(rhs))
		return normal(rhs)

	case *ast.Member:
		obj := e.evalExpr(target.Target, sc)
		if isError(obj) {
			return sigError(obj)
		}
		if err := setMember(obj, target.Name, rhs); err != nil {
			return sigError(err)
		}
		return normal(rhs)

	case *ast.Index:
		arr := e.evalExpr(target.Target, sc)
		if isError(arr) {
			return sigError(arr)
		}
		idx := e.evalExpr(target.Idx, sc)
		if isError(idx) {
			return sigError(idx)
		}
		if err := setIndex(arr, idx, rhs); err != nil {
			return sigError(err)
		}
		return normal(rhs)

	default:
		return sigError(invalidArgument("invalid assignment target"))
	}
}

// setMember assigns rhs into obj's property table (Object or Instance).
func setMember(obj *value.Value, name string, rhs *value.Value) *value.Value {
	switch {
	case obj == nil || obj.Kind == value.KindNull:
		return nullPointer("member assignment on null")
	case obj.Kind == value.KindObject:
		obj.Object().Set(name, value.Ref(rhs))
		return nil
	case obj.Kind == value.KindInstance:
		obj.InstanceProperties().Set(name, value.Ref(rhs))
		return nil
	default:
		return typeMismatch(".", obj, value.NewString(name))
	}
}

// setIndex assigns rhs into an array at an integer index, bounds-checked.
func setIndex(arr *value.Value, idx *value.Value, rhs *value.Value) *value.Value {
	if arr == nil || arr.Kind != value.KindArray {
		return typeMismatch("[]", arr, idx)
	}
	if idx == nil || idx.Kind != value.KindNumber {
		return invalidArgument("array index must be a number")
	}
	i := int(idx.Num)
	if i < 0 || i >= len(arr.Arr) {
		return indexOutOfBounds(i, len(arr.Arr))
	}
	value.Unref(arr.Arr[i])
	arr.Arr[i] = value.Ref(rhs)
	return nil
}

func (e *Evaluator) evalDestructureAssignment(s *ast.DestructureAssignment, sc *scope.Scope) Signal {
	rhs := e.evalExpr(s.Value, sc)
	if isError(rhs) {
		return sigError(rhs)
	}
	if rhs.Kind != value.KindArray {
		return sigError(typeMismatch("destructure", rhs, rhs))
	}
	for i, name := range s.Names {
		if i < len(rhs.Arr) {
			sc.Define(name, value.Ref(rhs.Arr[i]))
		} else {
			sc.Define(name, value.NewNull())
		}
	}
	return normal(rhs)
}

func (e *Evaluator) evalIf(s *ast.If, sc *scope.Scope) Signal {
	cond := e.evalExpr(s.Condition, sc)
	if isError(cond) {
		return sigError(cond)
	}
	if value.IsTruthy(cond) {
		return e.evalBlock(s.Then, sc)
	}
	for _, elif := range s.Elifs {
		ec := e.evalExpr(elif.Condition, sc)
		if isError(ec) {
			return sigError(ec)
		}
		if value.IsTruthy(ec) {
			return e.evalBlock(elif.Block, sc)
		}
	}
	if s.Else != nil {
		return e.evalBlock(s.Else, sc)
	}
	return normal(value.NewNull())
}

func (e *Evaluator) evalWhile(s *ast.While, sc *scope.Scope) Signal {
	for {
		cond := e.evalExpr(s.Condition, sc)
		if isError(cond) {
			return sigError(cond)
		}
		if !value.IsTruthy(cond) {
			return normal(value.NewNull())
		}
		sig := e.evalBlock(s.Body, sc)
		switch sig.Kind {
		case SigBreak:
			return normal(value.NewNull())
		case SigContinue, SigNormal:
			continue
		default: // Return, Error
			return sig
		}
	}
}

// evalFor implements `for name in iterable`, supporting arrays (by
// element) and ranges (by integer stepping) per spec.md §4.6 — ZEN's only
// two iterable shapes (non-goal: "for loops over arbitrary iterables
// beyond integer ranges and array elements").
func (e *Evaluator) evalFor(s *ast.For, sc *scope.Scope) Signal {
	iterable := e.evalExpr(s.Iterable, sc)
	if isError(iterable) {
		return sigError(iterable)
	}

	var elements []*value.Value
	switch iterable.Kind {
	case value.KindArray:
		elements = iterable.Arr
	case value.KindRange:
		for _, n := range iterable.Rng.Ints() {
			elements = append(elements, value.NewNumber(float64(n)))
		}
	default:
		return sigError(typeMismatch("for..in", iterable, iterable))
	}

	for _, elem := range elements {
		sc.Define(s.Name, value.Ref(elem))
		sig := e.evalBlock(s.Body, sc)
		switch sig.Kind {
		case SigBreak:
			return normal(value.NewNull())
		case SigContinue, SigNormal:
			continue
		default:
			return sig
		}
	}
	return normal(value.NewNull())
}
