package lexer

import (
	"github.com/BonnyAD9/place-macro/internal/diag"
	"github.com/BonnyAD9/place-macro/internal/source"
)

// DefaultMaxTokens bounds how many trees a single Lex call may produce.
const DefaultMaxTokens = 1 << 20

// Options configure a Lexer.
type Options struct {
	// Reporter receives diagnostics; nil drops them (lexing still continues).
	Reporter diag.Reporter
	// MaxTokens bounds the total number of trees; 0 means DefaultMaxTokens.
	MaxTokens int
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg)
	}
}
