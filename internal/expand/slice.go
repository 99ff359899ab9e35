package expand

import (
	"github.com/BonnyAD9/place-macro/internal/diag"
	"github.com/BonnyAD9/place-macro/internal/source"
	"github.com/BonnyAD9/place-macro/internal/token"
)

// Slice operations over an argument stream. All of them fail loudly on an
// empty sequence instead of silently producing nothing.

func opHead(args []token.Tree, sp source.Span) ([]token.Tree, error) {
	if len(args) == 0 {
		return nil, errAt(diag.ExpEmptySequence, sp, "head of empty sequence")
	}
	return args[:1], nil
}

func opTail(args []token.Tree, sp source.Span) ([]token.Tree, error) {
	if len(args) == 0 {
		return nil, errAt(diag.ExpEmptySequence, sp, "tail of empty sequence")
	}
	return args[1:], nil
}

func opStart(args []token.Tree, sp source.Span) ([]token.Tree, error) {
	if len(args) == 0 {
		return nil, errAt(diag.ExpEmptySequence, sp, "start of empty sequence")
	}
	return args[:len(args)-1], nil
}

func opLast(args []token.Tree, sp source.Span) ([]token.Tree, error) {
	if len(args) == 0 {
		return nil, errAt(diag.ExpEmptySequence, sp, "last of empty sequence")
	}
	return args[len(args)-1:], nil
}

// opReverse reverses top-level order only; group interiors keep their order.
func opReverse(args []token.Tree) []token.Tree {
	out := make([]token.Tree, len(args))
	for i, t := range args {
		out[len(args)-1-i] = t
	}
	return out
}
