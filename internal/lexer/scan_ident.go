package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/BonnyAD9/place-macro/internal/diag"
	"github.com/BonnyAD9/place-macro/internal/token"
)

// scanIdentOrLiteral scans an identifier, or a raw-string/byte literal when
// the ident prefix turns out to be r"..." / b'...' / b"...".
func (lx *Lexer) scanIdentOrLiteral() token.Tree {
	m := lx.cursor.Mark()
	ch := lx.cursor.Peek()

	switch {
	case ch == 'r' && lx.cursor.PeekAt(1) == '"':
		lx.cursor.Bump()
		return lx.scanString(m, token.LitRawString)
	case ch == 'b' && lx.cursor.PeekAt(1) == '\'':
		lx.cursor.Bump()
		return lx.scanChar(m, token.LitByte)
	case ch == 'b' && lx.cursor.PeekAt(1) == '"':
		lx.cursor.Bump()
		return lx.scanString(m, token.LitString)
	}

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isIdentContinueByte(b) {
			lx.cursor.Bump()
			continue
		}
		if b >= utf8RuneSelf {
			r, size := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
			if r != utf8.RuneError && unicode.IsLetter(r) {
				for i := 0; i < size; i++ {
					lx.cursor.Bump()
				}
				continue
			}
		}
		break
	}

	sp := lx.cursor.SpanFrom(m)
	if sp.Empty() {
		// First byte was a non-letter rune; drop it.
		b := lx.cursor.Bump()
		lx.fail(diag.LexUnknownChar, lx.cursor.SpanFrom(m),
			fmt.Sprintf("unknown character 0x%02x", b))
		return token.Tree{}
	}
	return token.NewIdent(lx.cursor.Text(m), sp)
}
