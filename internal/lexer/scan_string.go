package lexer

import (
	"strings"

	"github.com/BonnyAD9/place-macro/internal/diag"
	"github.com/BonnyAD9/place-macro/internal/token"
)

// scanString scans a quoted string starting at the current '"'. The mark may
// sit before an already-consumed r/b prefix. Raw strings keep escapes as-is.
func (lx *Lexer) scanString(m Mark, lit token.LitKind) token.Tree {
	lx.cursor.Bump() // opening quote

	var val strings.Builder
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			lx.fail(diag.LexUnterminatedString, lx.cursor.SpanFrom(m),
				"unterminated string literal")
			return token.Tree{}
		}
		b := lx.cursor.Bump()
		if b == '"' {
			break
		}
		if b == '\\' && lit != token.LitRawString {
			val.WriteString(lx.decodeEscape())
			continue
		}
		val.WriteByte(b)
	}

	return token.Tree{
		Kind:  token.Literal,
		Span:  lx.cursor.SpanFrom(m),
		Text:  lx.cursor.Text(m),
		Value: val.String(),
		Lit:   lit,
	}
}

// scanChar scans a character literal starting at the current '\''.
func (lx *Lexer) scanChar(m Mark, lit token.LitKind) token.Tree {
	lx.cursor.Bump() // opening quote

	var val strings.Builder
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			lx.fail(diag.LexUnterminatedChar, lx.cursor.SpanFrom(m),
				"unterminated character literal")
			return token.Tree{}
		}
		b := lx.cursor.Bump()
		if b == '\'' {
			break
		}
		if b == '\\' {
			val.WriteString(lx.decodeEscape())
			continue
		}
		val.WriteByte(b)
	}

	return token.Tree{
		Kind:  token.Literal,
		Span:  lx.cursor.SpanFrom(m),
		Text:  lx.cursor.Text(m),
		Value: val.String(),
		Lit:   lit,
	}
}

// decodeEscape decodes the character after a backslash. Unknown escapes keep
// the escaped character verbatim.
func (lx *Lexer) decodeEscape() string {
	if lx.cursor.EOF() {
		return ""
	}
	b := lx.cursor.Bump()
	switch b {
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	case '0':
		return "\x00"
	case 'x':
		hi, lo := lx.cursor.Peek(), lx.cursor.PeekAt(1)
		if isHex(hi) && isHex(lo) {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return string([]byte{hexVal(hi)<<4 | hexVal(lo)})
		}
		return "x"
	default:
		return string(b)
	}
}

func hexVal(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}
