package expand

import (
	"strings"
)

// Kind identifies one directive of the closed vocabulary.
type Kind uint8

const (
	// KindIgnore erases its argument.
	KindIgnore Kind = iota
	// KindIdentity returns its argument unevaluated (staging escape hatch).
	KindIdentity
	// KindDollar is a bare marker expanding to the '$' punct.
	KindDollar
	// KindString concatenates decoded argument text into a string literal.
	KindString
	// KindIdentifier concatenates decoded argument text into an identifier.
	KindIdentifier
	// KindHead returns the first token.
	KindHead
	// KindTail returns all but the first token.
	KindTail
	// KindStart returns all but the last token.
	KindStart
	// KindLast returns the last token.
	KindLast
	// KindReverse reverses top-level token order.
	KindReverse
	// KindStringify renders the argument back to source text.
	KindStringify
	// KindReplaceNewline replaces newlines plus trailing whitespace.
	KindReplaceNewline
	// KindStrReplace performs literal substring replacement.
	KindStrReplace
	// KindToCase converts an identifier between case styles.
	KindToCase
)

func (k Kind) String() string {
	switch k {
	case KindIgnore:
		return "ignore"
	case KindIdentity:
		return "identity"
	case KindDollar:
		return "dollar"
	case KindString:
		return "string"
	case KindIdentifier:
		return "identifier"
	case KindHead:
		return "head"
	case KindTail:
		return "tail"
	case KindStart:
		return "start"
	case KindLast:
		return "last"
	case KindReverse:
		return "reverse"
	case KindStringify:
		return "stringify"
	case KindReplaceNewline:
		return "replace_newline"
	case KindStrReplace:
		return "str_replace"
	case KindToCase:
		return "to_case"
	}
	return "unknown"
}

// names maps every directive spelling, aliases included, to its kind.
// Alias resolution is a pure name lookup; there are no per-alias code paths.
var names = map[string]Kind{
	"__ignore__":          KindIgnore,
	"__identity__":        KindIdentity,
	"__id__":              KindIdentity,
	"__dollar__":          KindDollar,
	"__s__":               KindDollar,
	"__string__":          KindString,
	"__str__":             KindString,
	"__identifier__":      KindIdentifier,
	"__ident__":           KindIdentifier,
	"__head__":            KindHead,
	"__tail__":            KindTail,
	"__start__":           KindStart,
	"__last__":            KindLast,
	"__reverse__":         KindReverse,
	"__stringify__":       KindStringify,
	"__strfy__":           KindStringify,
	"__replace_newline__": KindReplaceNewline,
	"__repnl__":           KindReplaceNewline,
	"__str_replace__":     KindStrReplace,
	"__repstr__":          KindStrReplace,
}

// Lookup resolves a directive name to its kind. The case-conversion
// directive is special: any casing of __tocase__ or __to_case__ matches, and
// the spelling itself (underscores trimmed) names the target case style.
func Lookup(name string) (kind Kind, caseSpec string, ok bool) {
	if k, found := names[name]; found {
		return k, "", true
	}
	if strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__") {
		lc := strings.ToLower(name)
		if lc == "__tocase__" || lc == "__to_case__" {
			return KindToCase, strings.Trim(name, "_"), true
		}
	}
	return 0, "", false
}
