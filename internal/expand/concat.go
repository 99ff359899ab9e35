package expand

import (
	"strings"
	"unicode"

	"github.com/BonnyAD9/place-macro/internal/diag"
	"github.com/BonnyAD9/place-macro/internal/source"
	"github.com/BonnyAD9/place-macro/internal/token"
)

// tokenConcat renders a stream to plain text for string/identifier building:
// identifiers verbatim, literals by their decoded value, puncts dropped,
// groups entered depth-first. Adjacent tokens concatenate with no separator.
func tokenConcat(args []token.Tree) string {
	var b strings.Builder
	stack := [][]token.Tree{args}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if len(top) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		t := top[0]
		stack[len(stack)-1] = top[1:]

		switch t.Kind {
		case token.Group:
			stack = append(stack, t.Stream)
		case token.Ident:
			b.WriteString(t.Text)
		case token.Literal:
			b.WriteString(t.Value)
		case token.Punct:
			// dropped
		}
	}
	return b.String()
}

// buildIdent concatenates like string building but validates the result as a
// single identifier.
func buildIdent(args []token.Tree, sp source.Span) ([]token.Tree, error) {
	s := tokenConcat(args)
	if !isValidIdent(s) {
		return nil, errAt(diag.ExpInvalidIdentifier, sp,
			"%q is not a valid identifier", s)
	}
	return []token.Tree{token.NewIdent(s, sp)}, nil
}

func isValidIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
