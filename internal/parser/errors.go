package parser

import (
	"fmt"

	"github.com/zen-lang/zen/internal/token"
)

// ParseError records a syntactic failure the parser could not avoid.
// Errors accumulate in a side channel on the Parser; they never panic the
// parse and never abort it outright — recovery produces a partial AST
// whose evaluation will typically surface an UndefinedVariable or similar
// runtime error, per spec.
type ParseError struct {
	Message string
	Pos     token.Position
}

func (e ParseError) Error() string {
	return fmt.Sprintf("syntax error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

func (p *Parser) errorf(pos token.Position, format string, args ...interface{}) {
	p.errors = append(p.errors, ParseError{Message: fmt.Sprintf(format, args...), Pos: pos})
}

// synchronize recovers from a syntax error by skipping tokens until the
// next NEWLINE, DEDENT, or EOF, so the caller can resume statement parsing
// at the next line. This is best-effort: correctness after recovery is not
// guaranteed, but the parser must not loop or crash.
func (p *Parser) synchronize() {
	for {
		t := p.current()
		if t.Type == token.NEWLINE || t.Type == token.DEDENT || t.Type == token.EOF {
			return
		}
		p.advance()
	}
}
