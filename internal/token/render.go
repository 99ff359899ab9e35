package token

import (
	"strings"
)

// Render writes a stream back to source-like text. Tokens are separated by a
// single space, except that a Joint punct glues itself to the next token,
// group delimiters hug their contents, and a paren group hugs an immediately
// preceding identifier so calls keep their shape.
func Render(ts []Tree) string {
	var b strings.Builder
	renderStream(&b, ts)
	return b.String()
}

func renderStream(b *strings.Builder, ts []Tree) {
	glue := true // suppress the separator before the first token
	prev := Invalid
	for _, t := range ts {
		if t.Kind == Group && t.Delim == DelimParen && prev == Ident {
			glue = true
		}
		if !glue {
			b.WriteByte(' ')
		}
		glue = false
		switch t.Kind {
		case Group:
			b.WriteString(t.Delim.Open())
			renderStream(b, t.Stream)
			b.WriteString(t.Delim.Close())
		case Punct:
			b.WriteString(t.Text)
			if t.Spacing == Joint {
				glue = true
			}
		default:
			b.WriteString(t.Text)
		}
		prev = t.Kind
	}
}

func (t Tree) String() string {
	return Render([]Tree{t})
}
