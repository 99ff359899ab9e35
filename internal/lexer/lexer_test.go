package lexer_test

import (
	"testing"

	"github.com/BonnyAD9/place-macro/internal/diag"
	"github.com/BonnyAD9/place-macro/internal/lexer"
	"github.com/BonnyAD9/place-macro/internal/source"
	"github.com/BonnyAD9/place-macro/internal/token"
)

func lexString(t *testing.T, src string) ([]token.Tree, *diag.Bag, bool) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test", []byte(src))
	bag := diag.NewBag(16)
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	stream, ok := lx.Lex()
	return stream, bag, ok
}

func mustLex(t *testing.T, src string) []token.Tree {
	t.Helper()
	stream, bag, ok := lexString(t, src)
	if !ok {
		t.Fatalf("lex %q failed: %v", src, bag.Items())
	}
	return stream
}

func TestLexIdentsAndPuncts(t *testing.T) {
	stream := mustLex(t, "foo -> bar")
	if len(stream) != 4 {
		t.Fatalf("got %d trees, want 4: %v", len(stream), stream)
	}
	if !stream[0].IsIdent("foo") {
		t.Errorf("tree 0 = %v, want ident foo", stream[0])
	}
	if !stream[1].IsPunct('-') || stream[1].Spacing != token.Joint {
		t.Errorf("tree 1 = %+v, want joint '-'", stream[1])
	}
	if !stream[2].IsPunct('>') || stream[2].Spacing != token.Alone {
		t.Errorf("tree 2 = %+v, want alone '>'", stream[2])
	}
	if !stream[3].IsIdent("bar") {
		t.Errorf("tree 3 = %v, want ident bar", stream[3])
	}
}

func TestLexGroups(t *testing.T) {
	stream := mustLex(t, "a ( b [ c ] ) { }")
	if len(stream) != 3 {
		t.Fatalf("got %d trees, want 3: %v", len(stream), stream)
	}
	g := stream[1]
	if g.Kind != token.Group || g.Delim != token.DelimParen {
		t.Fatalf("tree 1 = %+v, want paren group", g)
	}
	if len(g.Stream) != 2 || g.Stream[1].Delim != token.DelimBracket {
		t.Errorf("inner stream = %v, want b [c]", g.Stream)
	}
	if stream[2].Delim != token.DelimBrace || len(stream[2].Stream) != 0 {
		t.Errorf("tree 2 = %+v, want empty brace group", stream[2])
	}
}

func TestLexLiterals(t *testing.T) {
	tests := []struct {
		src   string
		lit   token.LitKind
		value string
	}{
		{`"ab\nc"`, token.LitString, "ab\nc"},
		{`r"ab\nc"`, token.LitRawString, `ab\nc`},
		{`'x'`, token.LitChar, "x"},
		{`b'x'`, token.LitByte, "x"},
		{`42`, token.LitInt, "42"},
		{`0x2A`, token.LitInt, "42"},
		{`0b101`, token.LitInt, "5"},
		{`1_000`, token.LitInt, "1000"},
		{`1.50`, token.LitFloat, "1.5"},
		{`2e3`, token.LitFloat, "2000"},
	}
	for _, tt := range tests {
		stream := mustLex(t, tt.src)
		if len(stream) != 1 {
			t.Errorf("%q: got %d trees, want 1", tt.src, len(stream))
			continue
		}
		tok := stream[0]
		if tok.Kind != token.Literal || tok.Lit != tt.lit {
			t.Errorf("%q: got %v/%v, want Literal/%v", tt.src, tok.Kind, tok.Lit, tt.lit)
		}
		if tok.Value != tt.value {
			t.Errorf("%q: value = %q, want %q", tt.src, tok.Value, tt.value)
		}
		if tok.Text != tt.src {
			t.Errorf("%q: text = %q, want source spelling", tt.src, tok.Text)
		}
	}
}

func TestLexComments(t *testing.T) {
	stream := mustLex(t, "a // line\nb /* block */ c")
	if len(stream) != 3 {
		t.Fatalf("got %d trees, want 3: %v", len(stream), stream)
	}
}

func TestLexUnclosedDelimiter(t *testing.T) {
	_, bag, ok := lexString(t, "a ( b")
	if ok {
		t.Fatal("expected failure for unclosed paren")
	}
	if bag.Len() == 0 || bag.Items()[0].Code != diag.LexUnclosedDelimiter {
		t.Errorf("diagnostics = %v, want UnclosedDelimiter", bag.Items())
	}
}

func TestLexMismatchedDelimiter(t *testing.T) {
	_, _, ok := lexString(t, "( a ]")
	if ok {
		t.Fatal("expected failure for mismatched delimiter")
	}
}

func TestLexStrayClose(t *testing.T) {
	_, bag, ok := lexString(t, "a )")
	if ok {
		t.Fatal("expected failure for stray close")
	}
	if bag.Items()[0].Code != diag.LexStrayCloseDelimiter {
		t.Errorf("code = %v, want StrayCloseDelimiter", bag.Items()[0].Code)
	}
}

func TestLexUnterminatedString(t *testing.T) {
	_, bag, ok := lexString(t, `"abc`)
	if ok {
		t.Fatal("expected failure for unterminated string")
	}
	if bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Errorf("code = %v, want UnterminatedString", bag.Items()[0].Code)
	}
}

func TestLexSpans(t *testing.T) {
	stream := mustLex(t, "ab (cd)")
	if stream[0].Span.Start != 0 || stream[0].Span.End != 2 {
		t.Errorf("ident span = %v, want 0-2", stream[0].Span)
	}
	g := stream[1]
	if g.Span.Start != 3 || g.Span.End != 7 {
		t.Errorf("group span = %v, want 3-7", g.Span)
	}
}
