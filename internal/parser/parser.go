// Package parser turns a ZEN token stream into an AST: Pratt precedence
// climbing for expressions, recursive descent with indentation-aware block
// parsing for statements.
package parser

import (
	"github.com/zen-lang/zen/internal/ast"
	"github.com/zen-lang/zen/internal/lexer"
	"github.com/zen-lang/zen/internal/token"
)

// Parser owns a token stream (the lexer's bounded lookahead buffer) and
// accumulates syntax errors on the side rather than panicking.
type Parser struct {
	stream *lexer.Stream
	errors []ParseError

	// callArgDepth counts how many paren-free call/new argument lists are
	// currently being gathered (nested calls-as-arguments push it further).
	// While positive, parseAdditive defers a minus that directly abuts a
	// following digit (no space) to the argument-gathering loop instead of
	// consuming it as infix subtraction, so `f -1 -2` still splits into two
	// arguments even though each argument is itself parsed at full
	// expression precedence.
	callArgDepth int
}

// New constructs a Parser over an already-tokenized stream. Callers that
// only have source text should use Parse, which tokenizes internally.
func New(stream *lexer.Stream) *Parser {
	return &Parser{stream: stream}
}

// Parse tokenizes source and parses it into a Program, returning any
// lexical and syntactic errors encountered along the way.
func Parse(source string) (*ast.Program, []lexer.LexError, []ParseError) {
	stream, lexErrs := lexer.NewStream(source)
	p := New(stream)
	program := p.ParseProgram()
	return program, lexErrs, p.errors
}

// Errors returns the syntax errors accumulated during parsing.
func (p *Parser) Errors() []ParseError { return p.errors }

func (p *Parser) current() token.Token { return p.stream.Peek(0) }
func (p *Parser) peek(n int) token.Token { return p.stream.Peek(n) }
func (p *Parser) advance() token.Token { return p.stream.Next() }

func (p *Parser) check(t token.Type) bool { return p.current().Type == t }

// match consumes the current token and returns true if it has type t,
// otherwise leaves the cursor untouched and returns false.
func (p *Parser) match(t token.Type) bool {
	if p.check(t) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token if it has type t; otherwise records a
// ParseError and leaves the cursor in place (the caller typically
// synchronizes afterward).
func (p *Parser) expect(t token.Type, context string) (token.Token, bool) {
	if p.check(t) {
		return p.advance(), true
	}
	tok := p.current()
	p.errorf(tok.Pos, "expected %s %s, got %s %q", t, context, tok.Type, tok.Lexeme)
	return tok, false
}

// skipNewlines consumes zero or more NEWLINE tokens.
func (p *Parser) skipNewlines() {
	for p.check(token.NEWLINE) {
		p.advance()
	}
}

// ParseProgram parses the entire token stream into a Program node.
func (p *Parser) ParseProgram() *ast.Program {
	pos := p.current().Pos
	var stmts []ast.Stmt

	p.skipNewlines()
	for !p.check(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		p.skipNewlines()
	}

	return ast.NewProgram(pos, stmts)
}

// parseBlock expects NEWLINE then INDENT, parses statements until DEDENT or
// EOF, and consumes the DEDENT.
func (p *Parser) parseBlock() []ast.Stmt {
	p.match(token.NEWLINE)
	if _, ok := p.expect(token.INDENT, "to begin a block"); !ok {
		p.synchronize()
		return nil
	}

	var stmts []ast.Stmt
	p.skipNewlines()
	for !p.check(token.DEDENT) && !p.check(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		p.skipNewlines()
	}
	p.match(token.DEDENT)
	return stmts
}

// parseStatement dispatches on the current token per spec.md's statement
// table and recovers to the next line on failure.
func (p *Parser) parseStatement() ast.Stmt {
	var stmt ast.Stmt

	switch p.current().Type {
	case token.SET:
		stmt = p.parseSetStatement()
	case token.FUNCTION:
		stmt = p.parseFunctionDef()
	case token.IF:
		stmt = p.parseIfStatement()
	case token.WHILE:
		stmt = p.parseWhileStatement()
	case token.FOR:
		stmt = p.parseForStatement()
	case token.RETURN:
		stmt = p.parseReturnStatement()
	case token.BREAK:
		tok := p.advance()
		stmt = &ast.Break{Base: ast.NewBase(tok.Pos)}
	case token.CONTINUE:
		tok := p.advance()
		stmt = &ast.Continue{Base: ast.NewBase(tok.Pos)}
	case token.CLASS:
		stmt = p.parseClassDef()
	default:
		stmt = p.parseExpressionStatement()
	}

	if !p.check(token.NEWLINE) && !p.check(token.DEDENT) && !p.check(token.EOF) {
		tok := p.current()
		p.errorf(tok.Pos, "unexpected token after statement: %s %q", tok.Type, tok.Lexeme)
		p.synchronize()
	}

	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Stmt {
	pos := p.current().Pos
	expr := p.parseExpression()
	return &ast.ExpressionStatement{Base: ast.NewBase(pos), Expression: expr}
}
