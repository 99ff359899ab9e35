// Package expand implements the directive rewriting engine: it recognizes
// directive calls inside a token stream and replaces them with derived
// streams until none remain.
//
// Evaluation follows reverse expansion order: the innermost call first, and
// among siblings at the same depth the rightmost first. Directive results are
// inert within a pass; only a later pass can expand calls that Identity
// shielded from the current one.
package expand

import (
	"fmt"

	"github.com/BonnyAD9/place-macro/internal/diag"
	"github.com/BonnyAD9/place-macro/internal/source"
	"github.com/BonnyAD9/place-macro/internal/token"
)

// DefaultMaxSteps bounds directive evaluations per pass. Structural recursion
// terminates on its own; the bound exists so misconfigured multi-pass drivers
// fail loudly instead of spinning.
const DefaultMaxSteps = 10000

// Options configure a single pass.
type Options struct {
	// MaxSteps bounds directive evaluations; 0 means DefaultMaxSteps.
	MaxSteps int
	// Trace records every evaluated call site in evaluation order.
	Trace bool
}

// TraceEntry is one evaluated directive call.
type TraceEntry struct {
	Name string
	Span source.Span
}

// Expander runs one pass over a stream. It is single-use: create a new
// Expander per pass.
type Expander struct {
	opts  Options
	steps int
	trace []TraceEntry
}

// New creates an expander for one pass.
func New(opts Options) *Expander {
	if opts.MaxSteps <= 0 {
		opts.MaxSteps = DefaultMaxSteps
	}
	return &Expander{opts: opts}
}

// Steps returns the number of directive evaluations performed.
func (e *Expander) Steps() int { return e.steps }

// Trace returns the evaluation-order trace; empty unless Options.Trace.
func (e *Expander) Trace() []TraceEntry { return e.trace }

// Expand rewrites the stream until no directive call remains. The first
// failing directive aborts the whole pass; no partial result is returned.
func (e *Expander) Expand(stream []token.Tree) ([]token.Tree, error) {
	return e.expandStream(stream)
}

// call is a recognized directive call site, discovered transiently during
// scanning and consumed immediately on evaluation.
type call struct {
	kind     Kind
	name     string
	caseSpec string
	span     source.Span // directive name through argument group
	args     []token.Tree
}

// item is one slot of a scanned stream: either a plain tree or a call
// spanning two trees (name + argument group).
type item struct {
	tree token.Tree
	call *call
}

// scan pairs directive names with their argument groups, left to right.
// Group interiors are not entered here; expandStream recurses into them.
func (e *Expander) scan(ts []token.Tree) ([]item, error) {
	items := make([]item, 0, len(ts))
	for i := 0; i < len(ts); i++ {
		t := ts[i]
		if t.Kind != token.Ident {
			items = append(items, item{tree: t})
			continue
		}
		kind, caseSpec, ok := Lookup(t.Text)
		if !ok {
			items = append(items, item{tree: t})
			continue
		}
		if kind == KindDollar {
			// Bare marker: a following group belongs to the surrounding
			// stream, not to the marker.
			items = append(items, item{call: &call{kind: kind, name: t.Text, span: t.Span}})
			continue
		}
		if i+1 >= len(ts) || ts[i+1].Kind != token.Group {
			return nil, errAt(diag.ExpUnmatchedGroup, t.Span,
				"expected '(' after directive %s", t.Text)
		}
		g := ts[i+1]
		items = append(items, item{call: &call{
			kind:     kind,
			name:     t.Text,
			caseSpec: caseSpec,
			span:     t.Span.Cover(g.Span),
			args:     g.Stream,
		}})
		i++
	}
	return items, nil
}

// expandStream rewrites one stream. Siblings are evaluated right to left;
// argument streams are expanded before the call that owns them, which makes
// the whole order innermost-first.
func (e *Expander) expandStream(ts []token.Tree) ([]token.Tree, error) {
	items, err := e.scan(ts)
	if err != nil {
		return nil, err
	}

	repl := make([][]token.Tree, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		it := items[i]
		if it.call == nil {
			t := it.tree
			if t.Kind == token.Group {
				inner, err := e.expandStream(t.Stream)
				if err != nil {
					return nil, err
				}
				t.Stream = inner
			}
			repl[i] = []token.Tree{t}
			continue
		}
		out, err := e.evalCall(it.call)
		if err != nil {
			return nil, err
		}
		repl[i] = out
	}

	out := make([]token.Tree, 0, len(ts))
	for _, r := range repl {
		out = append(out, r...)
	}
	return out, nil
}

func (e *Expander) evalCall(c *call) ([]token.Tree, error) {
	switch c.kind {
	case KindDollar:
		if err := e.step(c); err != nil {
			return nil, err
		}
		return []token.Tree{token.NewPunct('$', token.Alone, c.span)}, nil
	case KindIdentity:
		// The argument is returned untouched: recursion is suppressed so a
		// later pass, not this one, expands whatever is inside.
		if err := e.step(c); err != nil {
			return nil, err
		}
		return token.CloneStream(c.args), nil
	}

	args, err := e.expandStream(c.args)
	if err != nil {
		return nil, err
	}
	if err := e.step(c); err != nil {
		return nil, err
	}

	switch c.kind {
	case KindIgnore:
		return nil, nil
	case KindString:
		return []token.Tree{token.NewStringLit(tokenConcat(args), c.span)}, nil
	case KindIdentifier:
		return buildIdent(args, c.span)
	case KindHead:
		return opHead(args, c.span)
	case KindTail:
		return opTail(args, c.span)
	case KindStart:
		return opStart(args, c.span)
	case KindLast:
		return opLast(args, c.span)
	case KindReverse:
		return opReverse(args), nil
	case KindStringify:
		return []token.Tree{token.NewStringLit(token.Render(args), c.span)}, nil
	case KindReplaceNewline:
		return opReplaceNewline(args, c.span)
	case KindStrReplace:
		return opStrReplace(args, c.span)
	case KindToCase:
		return opToCase(c.caseSpec, args, c.span)
	}
	return nil, errAt(diag.UnknownCode, c.span, "unhandled directive %s", c.name)
}

func (e *Expander) step(c *call) error {
	e.steps++
	if e.opts.Trace {
		e.trace = append(e.trace, TraceEntry{Name: c.name, Span: c.span})
	}
	if e.steps > e.opts.MaxSteps {
		return errAt(diag.ExpLimitExceeded, c.span,
			"expansion exceeded %d steps", e.opts.MaxSteps)
	}
	return nil
}

func errAt(code diag.Code, sp source.Span, format string, args ...any) error {
	return diag.AsError(diag.NewError(code, sp, fmt.Sprintf(format, args...)))
}
