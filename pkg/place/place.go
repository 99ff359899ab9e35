// Package place is the embedding boundary of the directive engine: a host
// macro system hands in an already-lexed token stream (or source text) and
// receives the rewritten stream with zero remaining directive calls.
package place

import (
	"github.com/BonnyAD9/place-macro/internal/diag"
	"github.com/BonnyAD9/place-macro/internal/expand"
	"github.com/BonnyAD9/place-macro/internal/lexer"
	"github.com/BonnyAD9/place-macro/internal/source"
	"github.com/BonnyAD9/place-macro/internal/token"
)

// Result carries the rewritten stream and per-pass metadata.
type Result struct {
	Stream []token.Tree
	// Steps is the total number of directive evaluations across all passes.
	Steps int
	// Trace is the evaluation-order trace, populated when Options.Trace.
	Trace []expand.TraceEntry
}

// Expand runs the requested number of passes over an already-lexed stream.
// Each pass rewrites to its fixed point; Identity-shielded regions expand in
// later passes. Expansion is pure: the input stream is never mutated.
func Expand(stream []token.Tree, opts Options) (Result, error) {
	opts = opts.withDefaults()

	res := Result{Stream: stream}
	for i := 0; i < opts.Passes; i++ {
		e := expand.New(expand.Options{MaxSteps: opts.MaxSteps, Trace: opts.Trace})
		out, err := e.Expand(res.Stream)
		res.Steps += e.Steps()
		res.Trace = append(res.Trace, e.Trace()...)
		if err != nil {
			return res, err
		}
		res.Stream = out
	}
	return res, nil
}

// ExpandSource lexes src and expands it, returning the rendered output text.
// name labels the virtual file in diagnostics.
func ExpandSource(name, src string, opts Options) (string, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(src))

	bag := diag.NewBag(16)
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	stream, ok := lx.Lex()
	if !ok {
		return "", diag.AsError(bag.Items()[0])
	}

	res, err := Expand(stream, opts)
	if err != nil {
		return "", err
	}
	return token.Render(res.Stream), nil
}
