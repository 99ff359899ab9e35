package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BonnyAD9/place-macro/internal/source"
	"github.com/BonnyAD9/place-macro/internal/token"
)

// TreeOutput is the serialization shape of one token tree node.
type TreeOutput struct {
	Kind    string       `json:"kind"`
	Text    string       `json:"text,omitempty"`
	Value   string       `json:"value,omitempty"`
	Lit     string       `json:"lit,omitempty"`
	Spacing string       `json:"spacing,omitempty"`
	Delim   string       `json:"delim,omitempty"`
	Span    source.Span  `json:"span"`
	Stream  []TreeOutput `json:"stream,omitempty"`
}

// ToOutput converts a stream into its serialization shape.
func ToOutput(ts []token.Tree) []TreeOutput {
	out := make([]TreeOutput, 0, len(ts))
	for _, t := range ts {
		o := TreeOutput{
			Kind: t.Kind.String(),
			Text: t.Text,
			Span: t.Span,
		}
		switch t.Kind {
		case token.Literal:
			o.Value = t.Value
			o.Lit = t.Lit.String()
		case token.Punct:
			if t.Spacing == token.Joint {
				o.Spacing = "joint"
			}
		case token.Group:
			o.Delim = t.Delim.Open() + t.Delim.Close()
			o.Stream = ToOutput(t.Stream)
		}
		out = append(out, o)
	}
	return out
}

// FormatTreesPretty writes an indented, human-readable tree listing.
func FormatTreesPretty(w io.Writer, ts []token.Tree) error {
	return writeTrees(w, ts, 0)
}

func writeTrees(w io.Writer, ts []token.Tree, depth int) error {
	indent := strings.Repeat("  ", depth)
	for _, t := range ts {
		switch t.Kind {
		case token.Group:
			if _, err := fmt.Fprintf(w, "%sGroup %s%s at %s\n",
				indent, t.Delim.Open(), t.Delim.Close(), t.Span); err != nil {
				return err
			}
			if err := writeTrees(w, t.Stream, depth+1); err != nil {
				return err
			}
		case token.Literal:
			if _, err := fmt.Fprintf(w, "%s%s(%s) %s at %s\n",
				indent, t.Kind, t.Lit, t.Text, t.Span); err != nil {
				return err
			}
		default:
			if _, err := fmt.Fprintf(w, "%s%s %q at %s\n",
				indent, t.Kind, t.Text, t.Span); err != nil {
				return err
			}
		}
	}
	return nil
}

// FormatTreesJSON writes the stream as indented JSON.
func FormatTreesJSON(w io.Writer, ts []token.Tree) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToOutput(ts))
}
