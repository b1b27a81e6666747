package lexer_test

import (
	"testing"

	"github.com/zen-lang/zen/internal/lexer"
	"github.com/zen-lang/zen/internal/token"
)

func kinds(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func assertKinds(t *testing.T, source string, want []token.Type) {
	t.Helper()
	toks, errs := lexer.Tokenize(source)
	if len(errs) != 0 {
		t.Fatalf("unexpected lex errors for %q: %v", source, errs)
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("token count mismatch for %q:\n got  %v\n want %v", source, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d mismatch for %q:\n got  %v\n want %v", i, source, got, want)
		}
	}
}

func TestSimpleAssignment(t *testing.T) {
	assertKinds(t, "set x 42", []token.Type{
		token.SET, token.IDENTIFIER, token.NUMBER, token.EOF,
	})
}

func TestStringConcat(t *testing.T) {
	assertKinds(t, `set name "Alice"`, []token.Type{
		token.SET, token.IDENTIFIER, token.STRING, token.EOF,
	})
}

func TestIndentDedentBalanced(t *testing.T) {
	source := "while n < 3\n    print n\n    set n n + 1\nprint n"
	toks, errs := lexer.Tokenize(source)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	var indents, dedents int
	for _, tok := range toks {
		switch tok.Type {
		case token.INDENT:
			indents++
		case token.DEDENT:
			dedents++
		}
	}
	if indents != dedents {
		t.Fatalf("unbalanced INDENT/DEDENT: %d vs %d in %v", indents, dedents, toks)
	}
	if indents != 1 {
		t.Fatalf("expected exactly one INDENT level, got %d", indents)
	}
}

func TestNestedDedentEmitsOnePerLevel(t *testing.T) {
	source := "if a\n    if b\n        print 1\nprint 2"
	toks, errs := lexer.Tokenize(source)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	got := kinds(toks)
	// print is not a keyword, so it lexes as IDENTIFIER.
	expect := []token.Type{
		token.IF, token.IDENTIFIER, token.NEWLINE,
		token.INDENT,
		token.IF, token.IDENTIFIER, token.NEWLINE,
		token.INDENT,
		token.IDENTIFIER, token.NUMBER, token.NEWLINE,
		token.DEDENT, token.DEDENT,
		token.IDENTIFIER, token.NUMBER,
		token.EOF,
	}
	if len(got) != len(expect) {
		t.Fatalf("token count mismatch:\n got  %v\n want %v", got, expect)
	}
	for i := range expect {
		if got[i] != expect[i] {
			t.Fatalf("token %d mismatch:\n got  %v\n want %v", i, got, expect)
		}
	}
}

func TestBlankAndCommentLinesDoNotAlterIndent(t *testing.T) {
	source := "if a\n    print 1\n\n    // a comment\n    print 2\nprint 3"
	toks, errs := lexer.Tokenize(source)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	var indents, dedents int
	for _, tok := range toks {
		if tok.Type == token.INDENT {
			indents++
		}
		if tok.Type == token.DEDENT {
			dedents++
		}
	}
	if indents != 1 || dedents != 1 {
		t.Fatalf("expected one INDENT/DEDENT pair, got %d/%d", indents, dedents)
	}
}

func TestNumberLiterals(t *testing.T) {
	cases := []struct {
		source string
		lexeme string
	}{
		{"42", "42"},
		{"3.14", "3.14"},
		{"1e10", "1e10"},
		{"1.5e-3", "1.5e-3"},
		{"2E+8", "2E+8"},
	}
	for _, c := range cases {
		toks, errs := lexer.Tokenize(c.source)
		if len(errs) != 0 {
			t.Fatalf("unexpected errors for %q: %v", c.source, errs)
		}
		if toks[0].Type != token.NUMBER || toks[0].Lexeme != c.lexeme {
			t.Fatalf("for %q: got %v", c.source, toks[0])
		}
	}
}

func TestDotAfterNumberIsNotConsumedWithoutDigit(t *testing.T) {
	toks, errs := lexer.Tokenize("42.foo")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := []token.Type{token.NUMBER, token.DOT, token.IDENTIFIER, token.EOF}
	got := kinds(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("mismatch at %d: got %v want %v", i, got, want)
		}
	}
	if toks[0].Lexeme != "42" {
		t.Fatalf("expected lexeme 42, got %q", toks[0].Lexeme)
	}
}

func TestStringEscapes(t *testing.T) {
	toks, errs := lexer.Tokenize(`"a\nb\tc\\d\"e\/f"`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := "a\nb\tc\\d\"e/f"
	if toks[0].Lexeme != want {
		t.Fatalf("got %q want %q", toks[0].Lexeme, want)
	}
}

func TestUnterminatedStringRecoversInDegradedMode(t *testing.T) {
	toks, errs := lexer.Tokenize(`set x "abc`)
	if len(errs) == 0 {
		t.Fatalf("expected a lex error for unterminated string")
	}
	var sawString bool
	for _, tok := range toks {
		if tok.Type == token.STRING {
			sawString = true
			if tok.Lexeme != "abc" {
				t.Fatalf("expected degraded STRING lexeme \"abc\", got %q", tok.Lexeme)
			}
		}
	}
	if !sawString {
		t.Fatalf("expected a degraded STRING token, got %v", toks)
	}
}

func TestOperatorsGreedyMatch(t *testing.T) {
	assertKinds(t, "a != b <= c >= d && e || f += g -= h *= i /= j %= k ?? l ?.m .. n ..= o ... p => q",
		[]token.Type{
			token.IDENTIFIER, token.NOT_EQUALS, token.IDENTIFIER, token.LESS_EQUALS, token.IDENTIFIER,
			token.GREATER_EQUALS, token.IDENTIFIER, token.AND_OP, token.IDENTIFIER, token.OR_OP, token.IDENTIFIER,
			token.ASSIGN_ADD, token.IDENTIFIER, token.ASSIGN_SUB, token.IDENTIFIER, token.ASSIGN_MUL, token.IDENTIFIER,
			token.ASSIGN_DIV, token.IDENTIFIER, token.ASSIGN_MOD, token.IDENTIFIER, token.NULL_COALESCE, token.IDENTIFIER,
			token.OPTIONAL_CHAIN, token.IDENTIFIER, token.RANGE, token.IDENTIFIER, token.RANGE_INCL, token.IDENTIFIER,
			token.SPREAD, token.IDENTIFIER, token.ARROW, token.IDENTIFIER,
			token.EOF,
		})
}

func TestSingleEqualsIsEquality(t *testing.T) {
	assertKinds(t, "if a = b", []token.Type{
		token.IF, token.IDENTIFIER, token.EQUALS, token.IDENTIFIER, token.EOF,
	})
}

func TestKeywordsAreRecognized(t *testing.T) {
	assertKinds(t, "set function if elif else while for in return break continue true false null class new and or not",
		[]token.Type{
			token.SET, token.FUNCTION, token.IF, token.ELIF, token.ELSE, token.WHILE, token.FOR, token.IN,
			token.RETURN, token.BREAK, token.CONTINUE, token.TRUE, token.FALSE, token.NULL, token.CLASS, token.NEW,
			token.AND, token.OR, token.NOT, token.EOF,
		})
}

func TestLexicalErrorOnBadIndentRecovers(t *testing.T) {
	source := "if a\n    print 1\n  print 2\n"
	toks, errs := lexer.Tokenize(source)
	if len(errs) == 0 {
		t.Fatalf("expected a lexical error for inconsistent indentation")
	}
	if len(toks) == 0 || toks[len(toks)-1].Type != token.EOF {
		t.Fatalf("expected recovery to still emit a full token stream ending in EOF, got %v", toks)
	}
}

func TestIdempotentTokenization(t *testing.T) {
	source := "function add a b\n    return a + b\nprint add 2 3"
	first, _ := lexer.Tokenize(source)
	second, _ := lexer.Tokenize(source)
	if len(first) != len(second) {
		t.Fatalf("tokenization not idempotent: %d vs %d tokens", len(first), len(second))
	}
	for i := range first {
		if first[i].Type != second[i].Type || first[i].Lexeme != second[i].Lexeme {
			t.Fatalf("tokenization not idempotent at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestStreamPeekAndNext(t *testing.T) {
	s, errs := lexer.NewStream("set x 1")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if s.Peek(0).Type != token.SET {
		t.Fatalf("expected SET at peek(0), got %v", s.Peek(0))
	}
	if s.Peek(1).Type != token.IDENTIFIER {
		t.Fatalf("expected IDENTIFIER at peek(1), got %v", s.Peek(1))
	}
	if tok := s.Next(); tok.Type != token.SET {
		t.Fatalf("expected Next to return SET, got %v", tok)
	}
	if s.Peek(0).Type != token.IDENTIFIER {
		t.Fatalf("expected cursor to advance to IDENTIFIER, got %v", s.Peek(0))
	}
}
