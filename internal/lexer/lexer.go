// Package lexer turns raw source bytes into the nested token trees the
// expansion engine consumes. Delimiters are matched here, so a Group arrives
// at the engine already well-formed.
package lexer

import (
	"fmt"

	"github.com/BonnyAD9/place-macro/internal/diag"
	"github.com/BonnyAD9/place-macro/internal/source"
	"github.com/BonnyAD9/place-macro/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	count  int
	failed bool
}

// New creates a lexer over the given file.
func New(file *source.File, opts Options) *Lexer {
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

type frame struct {
	delim token.Delim
	open  source.Span
	items []token.Tree
}

// Lex consumes the whole file and returns the top-level stream. The second
// result is false when any diagnostic was reported; the stream still holds
// whatever could be recovered.
func (lx *Lexer) Lex() ([]token.Tree, bool) {
	stack := []frame{{delim: token.DelimNone}}

	for {
		lx.skipTrivia()
		if lx.cursor.EOF() {
			break
		}

		ch := lx.cursor.Peek()
		if d, ok := openDelim(ch); ok {
			m := lx.cursor.Mark()
			lx.cursor.Bump()
			stack = append(stack, frame{delim: d, open: lx.cursor.SpanFrom(m)})
			continue
		}
		if d, ok := closeDelim(ch); ok {
			m := lx.cursor.Mark()
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(m)
			if len(stack) == 1 {
				lx.fail(diag.LexStrayCloseDelimiter, sp,
					fmt.Sprintf("unexpected closing %q", string(ch)))
				continue
			}
			top := stack[len(stack)-1]
			if top.delim != d {
				lx.fail(diag.LexMismatchedDelimiter, sp,
					fmt.Sprintf("expected %q to close group opened here", top.delim.Close()))
			}
			stack = stack[:len(stack)-1]
			g := token.NewGroup(top.delim, top.items, top.open.Cover(sp))
			lx.push(&stack[len(stack)-1], g)
			continue
		}

		var tok token.Tree
		switch {
		case isIdentStartByte(ch) || ch >= utf8RuneSelf:
			tok = lx.scanIdentOrLiteral()
		case isDec(ch):
			tok = lx.scanNumber()
		case ch == '"':
			tok = lx.scanString(lx.cursor.Mark(), token.LitString)
		case ch == '\'':
			tok = lx.scanChar(lx.cursor.Mark(), token.LitChar)
		default:
			tok = lx.scanPunct()
		}
		if tok.Kind == token.Invalid {
			continue
		}
		lx.push(&stack[len(stack)-1], tok)

		if lx.count > lx.opts.MaxTokens {
			lx.fail(diag.LexTokenLimit, tok.Span,
				fmt.Sprintf("token limit of %d exceeded", lx.opts.MaxTokens))
			break
		}
	}

	// Unwind unclosed groups so the caller still sees their contents.
	for len(stack) > 1 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		lx.fail(diag.LexUnclosedDelimiter, top.open,
			fmt.Sprintf("unclosed %q", top.delim.Open()))
		g := token.NewGroup(top.delim, top.items, top.open)
		lx.push(&stack[len(stack)-1], g)
	}

	return stack[0].items, !lx.failed
}

func (lx *Lexer) push(f *frame, t token.Tree) {
	f.items = append(f.items, t)
	lx.count++
}

func (lx *Lexer) fail(code diag.Code, sp source.Span, msg string) {
	lx.report(code, sp, msg)
	lx.failed = true
}

// skipTrivia consumes whitespace and comments.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			lx.cursor.Bump()
		case ch == '/' && lx.cursor.PeekAt(1) == '/':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		case ch == '/' && lx.cursor.PeekAt(1) == '*':
			lx.cursor.Bump()
			lx.cursor.Bump()
			for !lx.cursor.EOF() {
				if lx.cursor.Peek() == '*' && lx.cursor.PeekAt(1) == '/' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					break
				}
				lx.cursor.Bump()
			}
		default:
			return
		}
	}
}

func openDelim(ch byte) (token.Delim, bool) {
	switch ch {
	case '(':
		return token.DelimParen, true
	case '[':
		return token.DelimBracket, true
	case '{':
		return token.DelimBrace, true
	}
	return token.DelimNone, false
}

func closeDelim(ch byte) (token.Delim, bool) {
	switch ch {
	case ')':
		return token.DelimParen, true
	case ']':
		return token.DelimBracket, true
	case '}':
		return token.DelimBrace, true
	}
	return token.DelimNone, false
}
