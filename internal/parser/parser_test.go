package parser_test

import (
	"testing"

	"github.com/zen-lang/zen/internal/ast"
	"github.com/zen-lang/zen/internal/parser"
)

func mustParse(t *testing.T, source string) *ast.Program {
	t.Helper()
	program, lexErrs, parseErrs := parser.Parse(source)
	if len(lexErrs) != 0 {
		t.Fatalf("unexpected lex errors for %q: %v", source, lexErrs)
	}
	if len(parseErrs) != 0 {
		t.Fatalf("unexpected parse errors for %q: %v", source, parseErrs)
	}
	return program
}

func TestParseSetAssignment(t *testing.T) {
	program := mustParse(t, "set x 42")
	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Statements))
	}
	assign, ok := program.Statements[0].(*ast.Assignment)
	if !ok {
		t.Fatalf("expected *ast.Assignment, got %T", program.Statements[0])
	}
	ident, ok := assign.Target.(*ast.Identifier)
	if !ok || ident.Name != "x" {
		t.Fatalf("expected target identifier x, got %#v", assign.Target)
	}
	num, ok := assign.Value.(*ast.NumberLiteral)
	if !ok || num.Value != 42 {
		t.Fatalf("expected value literal 42, got %#v", assign.Value)
	}
}

func TestParseStringConcatExpressionStatement(t *testing.T) {
	program := mustParse(t, `print "Hello " + name`)
	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Statements))
	}
	exprStmt, ok := program.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected *ast.ExpressionStatement, got %T", program.Statements[0])
	}
	call, ok := exprStmt.Expression.(*ast.Call)
	if !ok {
		t.Fatalf("expected print to parse as a paren-free Call, got %T", exprStmt.Expression)
	}
	if callee, ok := call.Callee.(*ast.Identifier); !ok || callee.Name != "print" {
		t.Fatalf("expected callee print, got %#v", call.Callee)
	}
	if len(call.Args) != 1 {
		t.Fatalf("expected 1 argument, got %d", len(call.Args))
	}
	if _, ok := call.Args[0].(*ast.BinaryOp); !ok {
		t.Fatalf("expected argument to be a BinaryOp (string concat), got %T", call.Args[0])
	}
}

func TestParseWhileLoop(t *testing.T) {
	source := "set n 0\nwhile n < 3\n    print n\n    set n n + 1"
	program := mustParse(t, source)
	if len(program.Statements) != 2 {
		t.Fatalf("expected 2 top-level statements, got %d", len(program.Statements))
	}
	whileStmt, ok := program.Statements[1].(*ast.While)
	if !ok {
		t.Fatalf("expected *ast.While, got %T", program.Statements[1])
	}
	if len(whileStmt.Body) != 2 {
		t.Fatalf("expected 2 statements in while body, got %d", len(whileStmt.Body))
	}
	cond, ok := whileStmt.Condition.(*ast.BinaryOp)
	if !ok || cond.Op != ast.OpLess {
		t.Fatalf("expected n < 3 condition, got %#v", whileStmt.Condition)
	}
}

func TestParseFunctionDefAndNestedParenFreeCall(t *testing.T) {
	source := "function add a b\n    return a + b\nprint add 2 3"
	program := mustParse(t, source)
	if len(program.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(program.Statements))
	}
	fn, ok := program.Statements[0].(*ast.FunctionDef)
	if !ok {
		t.Fatalf("expected *ast.FunctionDef, got %T", program.Statements[0])
	}
	if fn.Name != "add" || len(fn.Params) != 2 || fn.Params[0] != "a" || fn.Params[1] != "b" {
		t.Fatalf("unexpected function signature: %#v", fn)
	}

	exprStmt := program.Statements[1].(*ast.ExpressionStatement)
	printCall := exprStmt.Expression.(*ast.Call)
	if callee, ok := printCall.Callee.(*ast.Identifier); !ok || callee.Name != "print" {
		t.Fatalf("expected print callee, got %#v", printCall.Callee)
	}
	if len(printCall.Args) != 1 {
		t.Fatalf("expected print to take exactly 1 argument (the nested call), got %d: %#v", len(printCall.Args), printCall.Args)
	}
	addCall, ok := printCall.Args[0].(*ast.Call)
	if !ok {
		t.Fatalf("expected nested Call for add 2 3, got %T", printCall.Args[0])
	}
	if callee, ok := addCall.Callee.(*ast.Identifier); !ok || callee.Name != "add" {
		t.Fatalf("expected add callee, got %#v", addCall.Callee)
	}
	if len(addCall.Args) != 2 {
		t.Fatalf("expected add to take 2 arguments, got %d", len(addCall.Args))
	}
}

func TestParseArrayLiteralShorthandAndIndex(t *testing.T) {
	program := mustParse(t, "set xs 1, 2, 3\nprint xs[1]")
	assign := program.Statements[0].(*ast.Assignment)
	arr, ok := assign.Value.(*ast.ArrayLiteral)
	if !ok || len(arr.Elements) != 3 {
		t.Fatalf("expected a 3-element array literal, got %#v", assign.Value)
	}

	exprStmt := program.Statements[1].(*ast.ExpressionStatement)
	call := exprStmt.Expression.(*ast.Call)
	idx, ok := call.Args[0].(*ast.Index)
	if !ok {
		t.Fatalf("expected an Index argument, got %T", call.Args[0])
	}
	if target, ok := idx.Target.(*ast.Identifier); !ok || target.Name != "xs" {
		t.Fatalf("expected index target xs, got %#v", idx.Target)
	}
}

func TestParseIfElse(t *testing.T) {
	source := "if 10 >= 18\n    print \"adult\"\nelse\n    print \"minor\""
	program := mustParse(t, source)
	ifStmt, ok := program.Statements[0].(*ast.If)
	if !ok {
		t.Fatalf("expected *ast.If, got %T", program.Statements[0])
	}
	if len(ifStmt.Then) != 1 || len(ifStmt.Else) != 1 {
		t.Fatalf("expected one statement in each branch, got then=%d else=%d", len(ifStmt.Then), len(ifStmt.Else))
	}
	cond := ifStmt.Condition.(*ast.BinaryOp)
	if cond.Op != ast.OpGreaterEquals {
		t.Fatalf("expected >= condition, got %v", cond.Op)
	}
}

func TestParseIfElifElse(t *testing.T) {
	source := "if a\n    print 1\nelif b\n    print 2\nelse\n    print 3"
	program := mustParse(t, source)
	ifStmt := program.Statements[0].(*ast.If)
	if len(ifStmt.Elifs) != 1 {
		t.Fatalf("expected 1 elif clause, got %d", len(ifStmt.Elifs))
	}
	if len(ifStmt.Else) != 1 {
		t.Fatalf("expected an else clause")
	}
}

func TestParseForLoop(t *testing.T) {
	source := "for i in 1..5\n    print i"
	program := mustParse(t, source)
	forStmt, ok := program.Statements[0].(*ast.For)
	if !ok {
		t.Fatalf("expected *ast.For, got %T", program.Statements[0])
	}
	if forStmt.Name != "i" {
		t.Fatalf("expected induction variable i, got %q", forStmt.Name)
	}
	rng, ok := forStmt.Iterable.(*ast.Range)
	if !ok || rng.Inclusive {
		t.Fatalf("expected a half-open range, got %#v", forStmt.Iterable)
	}
}

func TestParseDivisionByZeroExpression(t *testing.T) {
	program := mustParse(t, "set a 10\nset b 0\nprint a / b")
	exprStmt := program.Statements[2].(*ast.ExpressionStatement)
	call := exprStmt.Expression.(*ast.Call)
	bin, ok := call.Args[0].(*ast.BinaryOp)
	if !ok || bin.Op != ast.OpDiv {
		t.Fatalf("expected a / b as a division BinaryOp argument, got %#v", call.Args[0])
	}
}

func TestParseTernary(t *testing.T) {
	program := mustParse(t, "set x a ? 1 : 2")
	assign := program.Statements[0].(*ast.Assignment)
	ternary, ok := assign.Value.(*ast.Ternary)
	if !ok {
		t.Fatalf("expected *ast.Ternary, got %T", assign.Value)
	}
	if _, ok := ternary.Condition.(*ast.Identifier); !ok {
		t.Fatalf("expected identifier condition, got %#v", ternary.Condition)
	}
}

func TestParseNullCoalesceAndOptionalChain(t *testing.T) {
	program := mustParse(t, "set x a ?? b\nset y a?.b")
	assign := program.Statements[0].(*ast.Assignment)
	if _, ok := assign.Value.(*ast.NullCoalesce); !ok {
		t.Fatalf("expected *ast.NullCoalesce, got %T", assign.Value)
	}
	assign2 := program.Statements[1].(*ast.Assignment)
	if _, ok := assign2.Value.(*ast.OptionalChain); !ok {
		t.Fatalf("expected *ast.OptionalChain, got %T", assign2.Value)
	}
}

func TestParseLambda(t *testing.T) {
	program := mustParse(t, "set square (x) => x * x")
	assign := program.Statements[0].(*ast.Assignment)
	lambda, ok := assign.Value.(*ast.Lambda)
	if !ok {
		t.Fatalf("expected *ast.Lambda, got %T", assign.Value)
	}
	if len(lambda.Params) != 1 || lambda.Params[0] != "x" {
		t.Fatalf("unexpected lambda params: %#v", lambda.Params)
	}
}

func TestParseParenthesizedGroupingIsNotMistakenForLambda(t *testing.T) {
	program := mustParse(t, "set x (1 + 2) * 3")
	assign := program.Statements[0].(*ast.Assignment)
	bin, ok := assign.Value.(*ast.BinaryOp)
	if !ok || bin.Op != ast.OpMul {
		t.Fatalf("expected a multiplication at the top, got %#v", assign.Value)
	}
	if _, ok := bin.Left.(*ast.BinaryOp); !ok {
		t.Fatalf("expected grouped addition on the left, got %#v", bin.Left)
	}
}

func TestParseClassDef(t *testing.T) {
	source := "class Animal\n    function speak self\n        print \"...\"\nclass Dog : Animal\n    function speak self\n        print \"Woof\""
	program := mustParse(t, source)
	if len(program.Statements) != 2 {
		t.Fatalf("expected 2 class defs, got %d", len(program.Statements))
	}
	animal := program.Statements[0].(*ast.ClassDef)
	if animal.Name != "Animal" || animal.Parent != "" {
		t.Fatalf("unexpected Animal class: %#v", animal)
	}
	dog := program.Statements[1].(*ast.ClassDef)
	if dog.Name != "Dog" || dog.Parent != "Animal" {
		t.Fatalf("unexpected Dog class: %#v", dog)
	}
	if len(dog.Methods) != 1 || dog.Methods[0].Name != "speak" {
		t.Fatalf("unexpected Dog methods: %#v", dog.Methods)
	}
}

func TestParseNewExpression(t *testing.T) {
	program := mustParse(t, "set d new Dog \"Rex\"")
	assign := program.Statements[0].(*ast.Assignment)
	newExpr, ok := assign.Value.(*ast.New)
	if !ok {
		t.Fatalf("expected *ast.New, got %T", assign.Value)
	}
	if newExpr.ClassName != "Dog" || len(newExpr.Args) != 1 {
		t.Fatalf("unexpected new expression: %#v", newExpr)
	}
}

func TestParseObjectLiteralShorthand(t *testing.T) {
	program := mustParse(t, "set cfg width 10, height 20")
	assign := program.Statements[0].(*ast.Assignment)
	obj, ok := assign.Value.(*ast.ObjectLiteral)
	if !ok {
		t.Fatalf("expected *ast.ObjectLiteral, got %T", assign.Value)
	}
	if len(obj.Pairs) != 2 || obj.Pairs[0].Key != "width" || obj.Pairs[1].Key != "height" {
		t.Fatalf("unexpected object literal: %#v", obj.Pairs)
	}
}

func TestParseBracedObjectLiteral(t *testing.T) {
	program := mustParse(t, "set cfg {width 10, height 20}")
	assign := program.Statements[0].(*ast.Assignment)
	obj, ok := assign.Value.(*ast.ObjectLiteral)
	if !ok || len(obj.Pairs) != 2 {
		t.Fatalf("expected a 2-pair object literal, got %#v", assign.Value)
	}
}

func TestParseMinusAbuttingDigitIsArgument(t *testing.T) {
	program := mustParse(t, "print f -1")
	exprStmt := program.Statements[0].(*ast.ExpressionStatement)
	printCall := exprStmt.Expression.(*ast.Call)
	fCall, ok := printCall.Args[0].(*ast.Call)
	if !ok {
		t.Fatalf("expected f to be called with -1 as its argument, got %#v", printCall.Args[0])
	}
	unary, ok := fCall.Args[0].(*ast.UnaryOp)
	if !ok || unary.Op != ast.OpNeg {
		t.Fatalf("expected -1 as a negated literal argument, got %#v", fCall.Args[0])
	}
}

func TestParseMinusWithSpaceIsBinary(t *testing.T) {
	program := mustParse(t, "set x f - 1")
	assign := program.Statements[0].(*ast.Assignment)
	bin, ok := assign.Value.(*ast.BinaryOp)
	if !ok || bin.Op != ast.OpSub {
		t.Fatalf("expected binary subtraction f - 1, got %#v", assign.Value)
	}
}

func TestParseDestructuring(t *testing.T) {
	program := mustParse(t, "set [a, b] pair")
	destructure, ok := program.Statements[0].(*ast.DestructureAssignment)
	if !ok {
		t.Fatalf("expected *ast.DestructureAssignment, got %T", program.Statements[0])
	}
	if len(destructure.Names) != 2 || destructure.Names[0] != "a" || destructure.Names[1] != "b" {
		t.Fatalf("unexpected destructure names: %#v", destructure.Names)
	}
}

func TestParseReturnBreakContinue(t *testing.T) {
	source := "function f a\n    if a\n        return a\n    while a\n        break\n    continue"
	program := mustParse(t, source)
	fn := program.Statements[0].(*ast.FunctionDef)
	if len(fn.Body) != 3 {
		t.Fatalf("expected 3 statements in function body, got %d", len(fn.Body))
	}
	ifStmt := fn.Body[0].(*ast.If)
	if _, ok := ifStmt.Then[0].(*ast.Return); !ok {
		t.Fatalf("expected return inside if, got %T", ifStmt.Then[0])
	}
	whileStmt := fn.Body[1].(*ast.While)
	if _, ok := whileStmt.Body[0].(*ast.Break); !ok {
		t.Fatalf("expected break inside while, got %T", whileStmt.Body[0])
	}
	if _, ok := fn.Body[2].(*ast.Continue); !ok {
		t.Fatalf("expected continue, got %T", fn.Body[2])
	}
}

func TestSyntaxErrorRecoversWithoutPanicking(t *testing.T) {
	_, _, parseErrs := parser.Parse("set\nset x 1")
	if len(parseErrs) == 0 {
		t.Fatalf("expected a syntax error for a bare 'set' with no target")
	}
}
