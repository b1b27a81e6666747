package parser

import (
	"strconv"

	"github.com/zen-lang/zen/internal/ast"
	"github.com/zen-lang/zen/internal/token"
)

// parseExpression is the entry point for expression parsing: ternary is
// the lowest-precedence, right-associative level per spec.md §4.5.
func (p *Parser) parseExpression() ast.Expr {
	return p.parseTernary()
}

func (p *Parser) parseTernary() ast.Expr {
	cond := p.parseNullCoalesce()
	if !p.check(token.QUESTION) {
		return cond
	}
	pos := p.advance().Pos
	thenExpr := p.parseExpression()
	p.expect(token.COLON, "in ternary expression")
	elseExpr := p.parseTernary() // right-associative
	return &ast.Ternary{Base: ast.NewBase(pos), Condition: cond, Then: thenExpr, Else: elseExpr}
}

func (p *Parser) parseNullCoalesce() ast.Expr {
	left := p.parseOr()
	for p.check(token.NULL_COALESCE) {
		pos := p.advance().Pos
		right := p.parseOr()
		left = &ast.NullCoalesce{Base: ast.NewBase(pos), Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseOr() ast.Expr {
	left := p.parseAnd()
	for p.check(token.OR) || p.check(token.OR_OP) {
		pos := p.advance().Pos
		right := p.parseAnd()
		left = &ast.BinaryOp{Base: ast.NewBase(pos), Op: ast.OpOr, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseAnd() ast.Expr {
	left := p.parseEquality()
	for p.check(token.AND) || p.check(token.AND_OP) {
		pos := p.advance().Pos
		right := p.parseEquality()
		left = &ast.BinaryOp{Base: ast.NewBase(pos), Op: ast.OpAnd, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseEquality() ast.Expr {
	left := p.parseRelational()
	for p.check(token.EQUALS) || p.check(token.NOT_EQUALS) {
		opTok := p.advance()
		op := ast.OpEquals
		if opTok.Type == token.NOT_EQUALS {
			op = ast.OpNotEquals
		}
		right := p.parseRelational()
		left = &ast.BinaryOp{Base: ast.NewBase(opTok.Pos), Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseRelational() ast.Expr {
	left := p.parseRange()
	for p.check(token.LESS) || p.check(token.GREATER) || p.check(token.LESS_EQUALS) || p.check(token.GREATER_EQUALS) {
		opTok := p.advance()
		var op ast.BinaryOperator
		switch opTok.Type {
		case token.LESS:
			op = ast.OpLess
		case token.GREATER:
			op = ast.OpGreater
		case token.LESS_EQUALS:
			op = ast.OpLessEquals
		default:
			op = ast.OpGreaterEquals
		}
		right := p.parseRange()
		left = &ast.BinaryOp{Base: ast.NewBase(opTok.Pos), Op: op, Left: left, Right: right}
	}
	return left
}

// parseRange handles `..`/`..=`, which spec.md §4.5 marks non-associative
// (a single range expression does not itself chain).
func (p *Parser) parseRange() ast.Expr {
	left := p.parseAdditive()
	if p.check(token.RANGE) || p.check(token.RANGE_INCL) {
		opTok := p.advance()
		right := p.parseAdditive()
		return &ast.Range{Base: ast.NewBase(opTok.Pos), Start: left, End: right, Inclusive: opTok.Type == token.RANGE_INCL}
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for p.check(token.PLUS) || (p.check(token.MINUS) && !p.minusBeginsNewCallArgument()) {
		opTok := p.advance()
		op := ast.OpAdd
		if opTok.Type == token.MINUS {
			op = ast.OpSub
		}
		right := p.parseMultiplicative()
		left = &ast.BinaryOp{Base: ast.NewBase(opTok.Pos), Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseUnary()
	for p.check(token.STAR) || p.check(token.SLASH) || p.check(token.PERCENT) {
		opTok := p.advance()
		var op ast.BinaryOperator
		switch opTok.Type {
		case token.STAR:
			op = ast.OpMul
		case token.SLASH:
			op = ast.OpDiv
		default:
			op = ast.OpMod
		}
		right := p.parseUnary()
		left = &ast.BinaryOp{Base: ast.NewBase(opTok.Pos), Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expr {
	if p.check(token.MINUS) {
		pos := p.advance().Pos
		operand := p.parseUnary()
		return &ast.UnaryOp{Base: ast.NewBase(pos), Op: ast.OpNeg, Operand: operand}
	}
	if p.check(token.NOT) || p.check(token.NOT_OP) {
		pos := p.advance().Pos
		operand := p.parseUnary()
		return &ast.UnaryOp{Base: ast.NewBase(pos), Op: ast.OpNot, Operand: operand}
	}
	return p.parsePostfix()
}

// parsePostfix parses member access, indexing, optional-chaining, and the
// paren-free call form, per spec.md §4.5's postfix precedence level. ZEN
// has no parenthesized call syntax (§1: "no parentheses on calls") — a
// Call node is only ever built by the paren-free argument gathering below.
func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()

	for {
		switch {
		case p.check(token.DOT):
			pos := p.advance().Pos
			name, _ := p.expect(token.IDENTIFIER, "after '.'")
			expr = &ast.Member{Base: ast.NewBase(pos), Target: expr, Name: name.Lexeme}
		case p.check(token.OPTIONAL_CHAIN):
			pos := p.advance().Pos
			name, _ := p.expect(token.IDENTIFIER, "after '?.'")
			expr = &ast.OptionalChain{Base: ast.NewBase(pos), Object: expr, Member: name.Lexeme}
		case p.check(token.LBRACKET):
			pos := p.advance().Pos
			idx := p.parseExpression()
			p.expect(token.RBRACKET, "to close index expression")
			expr = &ast.Index{Base: ast.NewBase(pos), Target: expr, Idx: idx}
		default:
			if call, ok := p.tryParenFreeCall(expr); ok {
				expr = call
				continue
			}
			return expr
		}
	}
}

// tryParenFreeCall implements spec.md §4.5's paren-free call disambiguation:
// a primary that is an Identifier or Member, immediately followed by a
// token that begins an argument, is treated as a call; its arguments are
// gathered greedily (each itself parsed at full expression precedence, so
// `print "Hello " + name` and nested paren-free calls both work) until a
// token that cannot begin another argument is reached.
func (p *Parser) tryParenFreeCall(callee ast.Expr) (ast.Expr, bool) {
	switch callee.(type) {
	case *ast.Identifier, *ast.Member:
	default:
		return nil, false
	}

	if !p.nextBeginsArgument() {
		return nil, false
	}

	pos := callee.Location()
	args := p.gatherCallArgs()
	return &ast.Call{Base: ast.NewBase(pos), Callee: callee, Args: args}, true
}

// gatherCallArgs repeatedly parses paren-free arguments until the current
// token can no longer start one, tracking callArgDepth for the duration so
// parseAdditive knows to yield a not-yet-consumed `-N` back to this loop
// rather than swallowing it as infix subtraction inside the prior argument.
func (p *Parser) gatherCallArgs() []ast.Expr {
	p.callArgDepth++
	defer func() { p.callArgDepth-- }()

	var args []ast.Expr
	for p.nextBeginsArgument() {
		args = append(args, p.parseCallArgument())
	}
	return args
}

// nextBeginsArgument reports whether the current token can start a
// paren-free call argument: identifier, literal, string, `-` directly
// abutting a digit (no space — spec.md §9's resolution of the `f -1`
// ambiguity), `[`, or `{`.
func (p *Parser) nextBeginsArgument() bool {
	if p.minusAbutsDigit() {
		return true
	}
	return beginsArgument(p.current().Type)
}

// minusAbutsDigit reports whether the current token is `-` immediately
// followed, with no space, by a NUMBER token — the one case spec.md's `f -1`
// rule treats as the start of a negated-literal argument rather than an
// infix operator.
func (p *Parser) minusAbutsDigit() bool {
	t := p.current()
	if t.Type != token.MINUS {
		return false
	}
	next := p.peek(1)
	return next.Type == token.NUMBER && next.Pos.Offset == t.Pos.Offset+1
}

// minusBeginsNewCallArgument reports whether the current MINUS should be
// left for an enclosing call's argument-gathering loop instead of being
// consumed here as infix subtraction: only relevant while at least one such
// loop is active (callArgDepth > 0) and only for the adjacent-to-digit form
// nextBeginsArgument already recognizes as an argument start. Outside call
// arguments this never fires, so ordinary subtraction parsing (`set z 5-1`)
// is unaffected.
func (p *Parser) minusBeginsNewCallArgument() bool {
	return p.callArgDepth > 0 && p.minusAbutsDigit()
}

// beginsArgument reports whether a token type, considered on its own
// (ignoring the minus-abuts-digit special case handled separately), can
// start an argument/value position.
func beginsArgument(t token.Type) bool {
	switch t {
	case token.IDENTIFIER, token.NUMBER, token.STRING, token.TRUE, token.FALSE, token.NULL,
		token.LBRACKET, token.LBRACE, token.NEW:
		return true
	default:
		return false
	}
}

// parseCallArgument parses a single paren-free call argument at full
// expression precedence (spec.md §4.5: arguments are "comma-separated
// expressions"), so `print "Hello " + name` and `print a / b` each gather
// one argument — the whole binary expression — rather than stopping at the
// first primary and leaving the operator to bind to the call's result.
// callArgDepth (see minusBeginsNewCallArgument) keeps this from swallowing a
// second `-N` argument as infix subtraction along the way.
func (p *Parser) parseCallArgument() ast.Expr {
	return p.parseExpression()
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.current()

	switch tok.Type {
	case token.NUMBER:
		p.advance()
		v, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			p.errorf(tok.Pos, "invalid number literal %q", tok.Lexeme)
			v = 0
		}
		return &ast.NumberLiteral{Base: ast.NewBase(tok.Pos), Value: v}
	case token.STRING:
		p.advance()
		return &ast.StringLiteral{Base: ast.NewBase(tok.Pos), Value: tok.Lexeme}
	case token.TRUE:
		p.advance()
		return &ast.BoolLiteral{Base: ast.NewBase(tok.Pos), Value: true}
	case token.FALSE:
		p.advance()
		return &ast.BoolLiteral{Base: ast.NewBase(tok.Pos), Value: false}
	case token.NULL:
		p.advance()
		return &ast.NullLiteral{Base: ast.NewBase(tok.Pos)}
	case token.IDENTIFIER:
		p.advance()
		return &ast.Identifier{Base: ast.NewBase(tok.Pos), Name: tok.Lexeme}
	case token.SPREAD:
		p.advance()
		inner := p.parseUnary()
		return &ast.Spread{Base: ast.NewBase(tok.Pos), Inner: inner}
	case token.NEW:
		return p.parseNewExpression()
	case token.LBRACKET:
		return p.parseArrayLiteral()
	case token.LBRACE:
		return p.parseBracedObjectLiteral()
	case token.LPAREN:
		return p.parseParenOrLambda()
	default:
		p.advance()
		p.errorf(tok.Pos, "unexpected token in expression: %s %q", tok.Type, tok.Lexeme)
		return &ast.NullLiteral{Base: ast.NewBase(tok.Pos)}
	}
}

func (p *Parser) parseNewExpression() ast.Expr {
	pos := p.advance().Pos // consume NEW
	nameTok, _ := p.expect(token.IDENTIFIER, "as class name after 'new'")

	args := p.gatherCallArgs()
	return &ast.New{Base: ast.NewBase(pos), ClassName: nameTok.Lexeme, Args: args}
}

func (p *Parser) parseArrayLiteral() ast.Expr {
	pos := p.advance().Pos // consume '['
	var elems []ast.Expr
	if !p.check(token.RBRACKET) {
		for {
			elems = append(elems, p.parseExpression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RBRACKET, "to close array literal")
	return &ast.ArrayLiteral{Base: ast.NewBase(pos), Elements: elems}
}

// parseBracedObjectLiteral parses `{key value, key value, ...}`.
func (p *Parser) parseBracedObjectLiteral() ast.Expr {
	pos := p.advance().Pos // consume '{'
	var pairs []ast.ObjectPair
	if !p.check(token.RBRACE) {
		for {
			keyTok, _ := p.expect(token.IDENTIFIER, "as object literal key")
			value := p.parseAdditive()
			pairs = append(pairs, ast.ObjectPair{Key: keyTok.Lexeme, Value: value})
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RBRACE, "to close object literal")
	return &ast.ObjectLiteral{Base: ast.NewBase(pos), Pairs: pairs}
}

// parseParenOrLambda disambiguates `(a, b) => expr` from a parenthesized
// grouping expression `(expr)` by tentatively parsing an identifier list
// and backtracking if it is not followed by `=>`.
func (p *Parser) parseParenOrLambda() ast.Expr {
	pos := p.current().Pos
	save := p.stream.Position()
	p.advance() // consume '('

	if params, ok := p.tryParseLambdaParams(); ok {
		body := p.parseExpression()
		return &ast.Lambda{Base: ast.NewBase(pos), Params: params, Body: body}
	}

	p.stream.Seek(save)
	p.advance() // consume '(' again
	inner := p.parseExpression()
	p.expect(token.RPAREN, "to close parenthesized expression")
	return inner
}

// tryParseLambdaParams attempts to parse a comma-separated identifier list
// followed by `) =>`, leaving the cursor just past `=>` on success. On
// failure the caller backtracks; this function does not reset the cursor
// itself, since the caller always has its own saved position to seek to.
func (p *Parser) tryParseLambdaParams() ([]string, bool) {
	var params []string
	if p.check(token.RPAREN) {
		p.advance()
		if p.check(token.ARROW) {
			p.advance()
			return params, true
		}
		return nil, false
	}
	for p.check(token.IDENTIFIER) {
		params = append(params, p.advance().Lexeme)
		if !p.match(token.COMMA) {
			break
		}
	}
	if p.check(token.RPAREN) && p.peek(1).Type == token.ARROW {
		p.advance() // ')'
		p.advance() // '=>'
		return params, true
	}
	return nil, false
}
