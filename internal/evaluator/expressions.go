package evaluator

import (
	"github.com/zen-lang/zen/internal/ast"
	"github.com/zen-lang/zen/internal/scope"
	"github.com/zen-lang/zen/internal/value"
)

// evalExpr dispatches on the concrete expression node type. Every branch
// returns a Value — failures are encoded as Error Values (value.KindError),
// never Go errors or panics, per spec.md §4.6/§7.
func (e *Evaluator) evalExpr(expr ast.Expr, sc *scope.Scope) *value.Value {
	switch n := expr.(type) {
	case *ast.NumberLiteral:
		return value.NewNumber(n.Value)
	case *ast.StringLiteral:
		return value.NewString(n.Value)
	case *ast.BoolLiteral:
		return value.NewBool(n.Value)
	case *ast.NullLiteral:
		return value.NewNull()
	case *ast.Identifier:
		if v, ok := sc.Lookup(n.Name); ok {
			return v
		}
		return undefinedVariable(n.Name)
	case *ast.ArrayLiteral:
		return e.evalArrayLiteral(n, sc)
	case *ast.ObjectLiteral:
		return e.evalObjectLiteral(n, sc)
	case *ast.Lambda:
		return value.NewLambda(n.Params, n.Body, sc)
	case *ast.Call:
		return e.evalCall(n, sc)
	case *ast.BinaryOp:
		return e.evalBinaryOp(n, sc)
	case *ast.UnaryOp:
		return e.evalUnaryOp(n, sc)
	case *ast.Ternary:
		cond := e.evalExpr(n.Condition, sc)
		if isError(cond) {
			return cond
		}
		if value.IsTruthy(cond) {
			return e.evalExpr(n.Then, sc)
		}
		return e.evalExpr(n.Else, sc)
	case *ast.NullCoalesce:
		left := e.evalExpr(n.Left, sc)
		if isError(left) {
			return left
		}
		if left.Kind == value.KindNull {
			return e.evalExpr(n.Right, sc)
		}
		return left
	case *ast.OptionalChain:
		obj := e.evalExpr(n.Object, sc)
		if isError(obj) {
			return obj
		}
		if obj.Kind == value.KindNull {
			return value.NewNull()
		}
		return e.getMember(obj, n.Member)
	case *ast.Index:
		return e.evalIndex(n, sc)
	case *ast.Member:
		target := e.evalExpr(n.Target, sc)
		if isError(target) {
			return target
		}
		return e.getMember(target, n.Name)
	case *ast.Range:
		return e.evalRange(n, sc)
	case *ast.Spread:
		return e.evalExpr(n.Inner, sc)
	case *ast.New:
		return e.evalNew(n, sc)
	default:
		return invalidArgument("unsupported expression node")
	}
}

func (e *Evaluator) evalArrayLiteral(n *ast.ArrayLiteral, sc *scope.Scope) *value.Value {
	arr := value.NewArray(len(n.Elements))
	for _, elemExpr := range n.Elements {
		v := e.evalExpr(elemExpr, sc)
		if isError(v) {
			return v
		}
		arr.Arr = append(arr.Arr, value.Ref(v))
	}
	return arr
}

func (e *Evaluator) evalObjectLiteral(n *ast.ObjectLiteral, sc *scope.Scope) *value.Value {
	obj := value.NewObject()
	for _, pair := range n.Pairs {
		v := e.evalExpr(pair.Value, sc)
		if isError(v) {
			return v
		}
		obj.Object().Set(pair.Key, value.Ref(v))
	}
	return obj
}

func (e *Evaluator) evalIndex(n *ast.Index, sc *scope.Scope) *value.Value {
	target := e.evalExpr(n.Target, sc)
	if isError(target) {
		return target
	}
	idx := e.evalExpr(n.Idx, sc)
	if isError(idx) {
		return idx
	}

	switch target.Kind {
	case value.KindArray:
		if idx.Kind != value.KindNumber {
			return invalidArgument("array index must be a number")
		}
		i := int(idx.Num)
		if i < 0 || i >= len(target.Arr) {
			return indexOutOfBounds(i, len(target.Arr))
		}
		return target.Arr[i]
	case value.KindObject:
		if idx.Kind != value.KindString {
			return invalidArgument("object key must be a string")
		}
		if v, ok := target.Object().Get(idx.Str); ok {
			return v
		}
		return value.NewNull()
	case value.KindString:
		if idx.Kind != value.KindNumber {
			return invalidArgument("string index must be a number")
		}
		i := int(idx.Num)
		if i < 0 || i >= len(target.Str) {
			return indexOutOfBounds(i, len(target.Str))
		}
		return value.NewString(string(target.Str[i]))
	default:
		return typeMismatch("[]", target, idx)
	}
}

// getMember resolves `target.name`: Object/Instance field lookup, or an
// Instance method bound into a callable Function Value.
func (e *Evaluator) getMember(target *value.Value, name string) *value.Value {
	switch {
	case target == nil || target.Kind == value.KindNull:
		return nullPointer("member access on null: " + name)
	case target.Kind == value.KindObject:
		if v, ok := target.Object().Get(name); ok {
			return v
		}
		return value.NewNull()
	case target.Kind == value.KindInstance:
		if v, ok := target.InstanceProperties().Get(name); ok {
			return v
		}
		if method, ok := lookupMethod(target.Inst.Class, name); ok {
			return bindMethod(method, target)
		}
		return value.NewNull()
	default:
		return typeMismatch(".", target, value.NewString(name))
	}
}

func (e *Evaluator) evalRange(n *ast.Range, sc *scope.Scope) *value.Value {
	start := e.evalExpr(n.Start, sc)
	if isError(start) {
		return start
	}
	end := e.evalExpr(n.End, sc)
	if isError(end) {
		return end
	}
	if start.Kind != value.KindNumber || end.Kind != value.KindNumber {
		return typeMismatch("..", start, end)
	}
	return value.NewRange(int64(start.Num), int64(end.Num), n.Inclusive)
}
