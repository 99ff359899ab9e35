package expand

import (
	"strings"
	"unicode"

	"github.com/BonnyAD9/place-macro/internal/diag"
	"github.com/BonnyAD9/place-macro/internal/source"
	"github.com/BonnyAD9/place-macro/internal/token"
)

// splitArgs splits an argument stream on top-level commas and validates the
// argument count. A single trailing comma is tolerated.
func splitArgs(args []token.Tree, sp source.Span, want int) ([][]token.Tree, error) {
	parts := [][]token.Tree{nil}
	for _, t := range args {
		if t.IsPunct(',') {
			parts = append(parts, nil)
			continue
		}
		parts[len(parts)-1] = append(parts[len(parts)-1], t)
	}
	if len(parts) == want+1 && len(parts[want]) == 0 {
		parts = parts[:want]
	}
	if len(parts) != want {
		return nil, errAt(diag.ExpUnmatchedGroup, sp,
			"expected %d arguments, got %d", want, len(parts))
	}
	for _, p := range parts {
		if len(p) == 0 {
			return nil, errAt(diag.ExpUnmatchedGroup, sp, "empty argument")
		}
	}
	return parts, nil
}

// strLitArg extracts the decoded text of a string-literal argument. A group
// wrapping exactly one token is unwrapped, so results of inner directives
// count as literals too.
func strLitArg(arg []token.Tree, sp source.Span) (string, error) {
	if len(arg) != 1 {
		return "", errAt(diag.ExpNonLiteralArgument, token.SpanOf(arg).Cover(sp),
			"expected a single string literal")
	}
	t := arg[0]
	if t.Kind == token.Group {
		return strLitArg(t.Stream, t.Span)
	}
	if !t.IsStringLit() {
		return "", errAt(diag.ExpNonLiteralArgument, t.Span, "expected string literal")
	}
	return t.Value, nil
}

// opReplaceNewline replaces every newline together with all immediately
// following whitespace by the replacement text.
func opReplaceNewline(args []token.Tree, sp source.Span) ([]token.Tree, error) {
	parts, err := splitArgs(args, sp, 2)
	if err != nil {
		return nil, err
	}
	s, err := strLitArg(parts[0], sp)
	if err != nil {
		return nil, err
	}
	r, err := strLitArg(parts[1], sp)
	if err != nil {
		return nil, err
	}

	var out strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c != '\n' {
			out.WriteRune(c)
			continue
		}
		out.WriteString(r)
		for i++; i < len(runes); i++ {
			if !unicode.IsSpace(runes[i]) {
				out.WriteRune(runes[i])
				break
			}
		}
	}

	return []token.Tree{token.NewStringLit(out.String(), sp)}, nil
}

// opStrReplace performs non-overlapping left-to-right substring replacement
// over decoded text; inserted text is never rescanned.
func opStrReplace(args []token.Tree, sp source.Span) ([]token.Tree, error) {
	parts, err := splitArgs(args, sp, 3)
	if err != nil {
		return nil, err
	}
	s, err := strLitArg(parts[0], sp)
	if err != nil {
		return nil, err
	}
	from, err := strLitArg(parts[1], sp)
	if err != nil {
		return nil, err
	}
	to, err := strLitArg(parts[2], sp)
	if err != nil {
		return nil, err
	}

	return []token.Tree{token.NewStringLit(strings.ReplaceAll(s, from, to), sp)}, nil
}
