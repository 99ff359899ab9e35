package diagfmt_test

import (
	"strings"
	"testing"

	"github.com/BonnyAD9/place-macro/internal/diag"
	"github.com/BonnyAD9/place-macro/internal/diagfmt"
	"github.com/BonnyAD9/place-macro/internal/source"
	"github.com/BonnyAD9/place-macro/internal/token"
)

func TestPretty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("expr", []byte("abc __head__() def"))

	bag := diag.NewBag(4)
	bag.Add(diag.NewError(diag.ExpEmptySequence,
		source.Span{File: id, Start: 4, End: 14}, "head of empty sequence"))

	var b strings.Builder
	diagfmt.Pretty(&b, bag, fs, diagfmt.PrettyOpts{})
	out := b.String()

	if !strings.Contains(out, "expr:1:5: ERROR EXP2001: head of empty sequence") {
		t.Errorf("header missing or wrong:\n%s", out)
	}
	if !strings.Contains(out, "^~~~~~~~~") {
		t.Errorf("caret underline missing:\n%s", out)
	}
}

func TestFormatTreesJSON(t *testing.T) {
	stream := []token.Tree{
		token.NewIdent("a", source.Span{}),
		token.NewGroup(token.DelimParen, []token.Tree{
			token.NewStringLit("x", source.Span{}),
		}, source.Span{}),
	}

	var b strings.Builder
	if err := diagfmt.FormatTreesJSON(&b, stream); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"kind": "Ident"`, `"delim": "()"`, `"value": "x"`} {
		if !strings.Contains(b.String(), want) {
			t.Errorf("JSON missing %s:\n%s", want, b.String())
		}
	}
}
