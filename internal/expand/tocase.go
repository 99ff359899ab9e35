package expand

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/BonnyAD9/place-macro/internal/diag"
	"github.com/BonnyAD9/place-macro/internal/source"
	"github.com/BonnyAD9/place-macro/internal/token"
)

// The case style is named by the spelling of the directive itself:
// __TOCASE__, __tocase__, __toCase__, __ToCase__, __to_case__, __TO_CASE__.
type caseStyle uint8

const (
	caseUpperFlat caseStyle = iota
	caseFlat
	caseCamel
	casePascal
	caseSnake
	caseUpperSnake
)

var caseStyles = map[string]caseStyle{
	"TOCASE":  caseUpperFlat,
	"tocase":  caseFlat,
	"toCase":  caseCamel,
	"ToCase":  casePascal,
	"to_case": caseSnake,
	"TO_CASE": caseUpperSnake,
}

var titleCaser = cases.Title(language.Und)

// opToCase converts the single identifier argument into the style named by
// the directive spelling.
func opToCase(spec string, args []token.Tree, sp source.Span) ([]token.Tree, error) {
	style, ok := caseStyles[spec]
	if !ok {
		return nil, errAt(diag.ExpUnknownCaseStyle, sp, "unknown case style %q", spec)
	}
	if len(args) != 1 || args[0].Kind != token.Ident {
		return nil, errAt(diag.ExpNonLiteralArgument, token.SpanOf(args).Cover(sp),
			"expected identifier")
	}

	words := splitWords(args[0].Text)
	out := joinWords(words, style)
	return []token.Tree{token.NewIdent(out, sp)}, nil
}

// splitWords re-segments an identifier on separator characters and existing
// case boundaries. An uppercase run followed by a lowercase letter splits
// before its last rune, so HTTPServer becomes HTTP, Server; a run with no
// lowercase tail splits per letter, so ABC becomes A, B, C and pascal-cased
// single-letter words survive the trip back to snake.
func splitWords(s string) []string {
	var words []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if r == '_' || r == '-' || r == ' ' {
			flush()
			continue
		}
		if len(cur) > 0 && unicode.IsUpper(r) {
			prev := cur[len(cur)-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if !unicode.IsUpper(prev) || nextLower || !upperRunTailed(runes, i) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

// upperRunTailed reports whether the uppercase run starting at i ends in a
// lowercase letter, i.e. the run is an acronym prefixing a tailed word.
func upperRunTailed(runes []rune, i int) bool {
	for i < len(runes) && unicode.IsUpper(runes[i]) {
		i++
	}
	return i < len(runes) && unicode.IsLower(runes[i])
}

func joinWords(words []string, style caseStyle) string {
	var parts []string
	for i, w := range words {
		lw := strings.ToLower(w)
		switch style {
		case caseUpperFlat, caseUpperSnake:
			parts = append(parts, strings.ToUpper(w))
		case caseFlat, caseSnake:
			parts = append(parts, lw)
		case caseCamel:
			if i == 0 {
				parts = append(parts, lw)
			} else {
				parts = append(parts, titleCaser.String(lw))
			}
		case casePascal:
			parts = append(parts, titleCaser.String(lw))
		}
	}

	sep := ""
	if style == caseSnake || style == caseUpperSnake {
		sep = "_"
	}
	return strings.Join(parts, sep)
}
