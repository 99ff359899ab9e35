package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BonnyAD9/place-macro/internal/diag"
	"github.com/BonnyAD9/place-macro/internal/token"
)

// scanNumber scans integer literals in any base and decimal floats. The
// decoded Value is the canonical decimal form, which is what concatenation
// operations splice into strings.
func (lx *Lexer) scanNumber() token.Tree {
	m := lx.cursor.Mark()

	base := 10
	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 10 {
			lx.cursor.Bump()
			lx.cursor.Bump()
		}
	}

	digits := func(pred func(byte) bool) {
		for !lx.cursor.EOF() {
			b := lx.cursor.Peek()
			if pred(b) || b == '_' {
				lx.cursor.Bump()
				continue
			}
			break
		}
	}

	isFloat := false
	if base == 10 {
		digits(isDec)
		if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
			isFloat = true
			lx.cursor.Bump()
			digits(isDec)
		}
		if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
			next := lx.cursor.PeekAt(1)
			if isDec(next) || ((next == '+' || next == '-') && isDec(lx.cursor.PeekAt(2))) {
				isFloat = true
				lx.cursor.Bump()
				lx.cursor.Bump()
				digits(isDec)
			}
		}
	} else {
		digits(isHex)
	}

	sp := lx.cursor.SpanFrom(m)
	text := lx.cursor.Text(m)
	clean := strings.ReplaceAll(text, "_", "")

	if isFloat {
		v, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			lx.fail(diag.LexBadNumber, sp, fmt.Sprintf("bad float literal %q", text))
			return token.Tree{}
		}
		return token.Tree{
			Kind:  token.Literal,
			Span:  sp,
			Text:  text,
			Value: strconv.FormatFloat(v, 'g', -1, 64),
			Lit:   token.LitFloat,
		}
	}

	numPart := clean
	if base != 10 {
		numPart = clean[2:]
	}
	v, err := strconv.ParseUint(numPart, base, 64)
	if err != nil {
		lx.fail(diag.LexBadNumber, sp, fmt.Sprintf("bad integer literal %q", text))
		return token.Tree{}
	}
	return token.Tree{
		Kind:  token.Literal,
		Span:  sp,
		Text:  text,
		Value: strconv.FormatUint(v, 10),
		Lit:   token.LitInt,
	}
}
