package evaluator

import (
	"github.com/zen-lang/zen/internal/ast"
	"github.com/zen-lang/zen/internal/scope"
	"github.com/zen-lang/zen/internal/value"
)

// evalCall evaluates the callee, then the argument list left-to-right
// (spec.md §5's ordering rule), then dispatches to callValue.
func (e *Evaluator) evalCall(n *ast.Call, sc *scope.Scope) *value.Value {
	callee := e.evalExpr(n.Callee, sc)
	if isError(callee) {
		return callee
	}

	args := make([]*value.Value, 0, len(n.Args))
	for _, argExpr := range n.Args {
		v := e.evalExpr(argExpr, sc)
		if isError(v) {
			return v
		}
		args = append(args, v)
	}

	return e.callValue(callee, args)
}

// callValue invokes callee (a Function Value, host or user-defined) with
// already-evaluated args. Anything else is a NotCallable error.
func (e *Evaluator) callValue(callee *value.Value, args []*value.Value) *value.Value {
	if callee == nil || callee.Kind != value.KindFunction {
		return notCallable(callee)
	}
	fn := callee.Fn

	if fn.Host != nil {
		return fn.Host(args)
	}

	if e.callDepth >= e.maxCallDepth {
		return invalidArgument("maximum recursion depth (%d) exceeded", e.maxCallDepth)
	}
	e.callDepth++
	defer func() { e.callDepth-- }()

	capturedScope, _ := fn.Scope.(*scope.Scope)
	callScope := scope.NewEnclosed(capturedScope)
	bindParams(fn.Params, args, callScope)

	if fn.IsExpr {
		body, _ := fn.Body.(ast.Expr)
		return e.evalExpr(body, callScope)
	}

	body, _ := fn.Body.([]ast.Stmt)
	sig := e.evalBlock(body, callScope)
	switch sig.Kind {
	case SigReturn, SigError:
		return sig.Value
	default:
		return value.NewNull()
	}
}

// bindParams binds params positionally: extra arguments are ignored,
// missing arguments bind to null — spec.md §4.6's stated reference choice.
func bindParams(params []string, args []*value.Value, callScope *scope.Scope) {
	for i, name := range params {
		if i < len(args) {
			callScope.Define(name, value.Ref(args[i]))
		} else {
			callScope.Define(name, value.NewNull())
		}
	}
}

// evalClassDef builds a Class Value with its methods closed over the
// defining scope, and binds it under the class name.
func (e *Evaluator) evalClassDef(s *ast.ClassDef, sc *scope.Scope) Signal {
	var parent *value.Class
	if s.Parent != "" {
		parentVal, ok := sc.Lookup(s.Parent)
		if !ok || parentVal.Kind != value.KindClass {
			return sigError(undefinedVariable(s.Parent))
		}
		parent = parentVal.Class
	}

	classVal := value.NewClass(s.Name, parent)
	for _, m := range s.Methods {
		fn := &value.Function{Params: m.Params, Body: m.Body, Scope: sc, Name: m.Name}
		classVal.Class.Methods[m.Name] = fn
	}
	sc.Define(s.Name, classVal)
	return normal(value.NewNull())
}

// lookupMethod walks the class hierarchy (the instance's class, then its
// parent chain) for a method named name, matching spec.md §4.6's "look up
// on the instance's class and its parent chain."
func lookupMethod(class *value.Class, name string) (*value.Function, bool) {
	for c := class; c != nil; c = c.Parent {
		if fn, ok := c.Methods[name]; ok {
			return fn, true
		}
	}
	return nil, false
}

// bindMethod produces a callable Function Value for fn with `self` bound
// to instance in a scope wrapping the method's defining scope, so the
// method body can reference `self.field` without any special-cased
// self-passing convention at the Call site.
func bindMethod(fn *value.Function, instance *value.Value) *value.Value {
	definingScope, _ := fn.Scope.(*scope.Scope)
	boundScope := scope.NewEnclosed(definingScope)
	boundScope.Define("self", value.Ref(instance))
	bound := value.NewFunction(fn.Params, fn.Body, boundScope)
	bound.Fn.IsExpr = fn.IsExpr
	bound.Fn.Name = fn.Name
	return bound
}

// evalNew implements `new ClassName arg1 arg2`: resolves the class,
// allocates an Instance, and — if an `init` method exists anywhere in the
// class's parent chain — calls it with `self` bound to the new instance.
func (e *Evaluator) evalNew(n *ast.New, sc *scope.Scope) *value.Value {
	classVal, ok := sc.Lookup(n.ClassName)
	if !ok || classVal.Kind != value.KindClass {
		return undefinedVariable(n.ClassName)
	}

	args := make([]*value.Value, 0, len(n.Args))
	for _, argExpr := range n.Args {
		v := e.evalExpr(argExpr, sc)
		if isError(v) {
			return v
		}
		args = append(args, v)
	}

	instance := value.NewInstance(classVal.Class)
	if initFn, ok := lookupMethod(classVal.Class, "init"); ok {
		bound := bindMethod(initFn, instance)
		result := e.callValue(bound, args)
		if isError(result) {
			return result
		}
	}
	return instance
}
