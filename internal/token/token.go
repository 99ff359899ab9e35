package token

import (
	"strconv"

	"github.com/BonnyAD9/place-macro/internal/source"
)

// Tree is one node of a token stream: an identifier, a literal, a single
// punctuation character, or a delimited group owning a nested stream.
type Tree struct {
	Kind Kind
	Span source.Span

	// Text is the source spelling: the identifier name, the literal as
	// written (quotes and escapes included), or the punct character.
	Text string

	// Value is the decoded text of a Literal: string contents without
	// quote/escape syntax, integers in decimal, the char itself.
	Value string

	Lit     LitKind
	Spacing Spacing
	Delim   Delim
	Stream  []Tree
}

// NewIdent builds an identifier tree.
func NewIdent(name string, sp source.Span) Tree {
	return Tree{Kind: Ident, Span: sp, Text: name}
}

// NewStringLit builds a string literal tree from decoded text. The source
// spelling is the quoted/escaped form.
func NewStringLit(value string, sp source.Span) Tree {
	return Tree{
		Kind:  Literal,
		Span:  sp,
		Text:  strconv.Quote(value),
		Value: value,
		Lit:   LitString,
	}
}

// NewPunct builds a punctuation tree from a single character.
func NewPunct(ch byte, spacing Spacing, sp source.Span) Tree {
	return Tree{Kind: Punct, Span: sp, Text: string(ch), Spacing: spacing}
}

// NewGroup builds a group tree owning stream.
func NewGroup(delim Delim, stream []Tree, sp source.Span) Tree {
	return Tree{Kind: Group, Span: sp, Delim: delim, Stream: stream}
}

// IsIdent reports whether the tree is the given identifier.
func (t Tree) IsIdent(name string) bool {
	return t.Kind == Ident && t.Text == name
}

// IsPunct reports whether the tree is the given punctuation character.
func (t Tree) IsPunct(ch byte) bool {
	return t.Kind == Punct && len(t.Text) == 1 && t.Text[0] == ch
}

// IsStringLit reports whether the tree is a string or raw string literal.
func (t Tree) IsStringLit() bool {
	return t.Kind == Literal && (t.Lit == LitString || t.Lit == LitRawString)
}

// Clone returns a deep copy of the tree.
func (t Tree) Clone() Tree {
	out := t
	if len(t.Stream) > 0 {
		out.Stream = CloneStream(t.Stream)
	}
	return out
}

// CloneStream returns a deep copy of a stream.
func CloneStream(ts []Tree) []Tree {
	out := make([]Tree, len(ts))
	for i, t := range ts {
		out[i] = t.Clone()
	}
	return out
}

// SpanOf returns a span covering the whole stream, or an empty span for an
// empty stream.
func SpanOf(ts []Tree) source.Span {
	if len(ts) == 0 {
		return source.Span{}
	}
	sp := ts[0].Span
	for _, t := range ts[1:] {
		sp = sp.Cover(t.Span)
	}
	return sp
}
