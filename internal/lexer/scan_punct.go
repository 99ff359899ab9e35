package lexer

import (
	"fmt"

	"github.com/BonnyAD9/place-macro/internal/diag"
	"github.com/BonnyAD9/place-macro/internal/token"
)

// scanPunct scans a single punctuation character. Multi-character operators
// are represented as runs of Joint puncts, so `->` is '-' (Joint) then '>'.
func (lx *Lexer) scanPunct() token.Tree {
	m := lx.cursor.Mark()
	ch := lx.cursor.Bump()
	if !isOpByte(ch) {
		lx.fail(diag.LexUnknownChar, lx.cursor.SpanFrom(m),
			fmt.Sprintf("unknown character 0x%02x", ch))
		return token.Tree{}
	}

	spacing := token.Alone
	if isOpByte(lx.cursor.Peek()) {
		spacing = token.Joint
	}
	return token.NewPunct(ch, spacing, lx.cursor.SpanFrom(m))
}
