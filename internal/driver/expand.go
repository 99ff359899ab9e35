// Package driver wires lexing and expansion into file-level operations for
// the CLI: single files, stdin, and parallel batches.
package driver

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/BonnyAD9/place-macro/internal/diag"
	"github.com/BonnyAD9/place-macro/internal/expand"
	"github.com/BonnyAD9/place-macro/internal/lexer"
	"github.com/BonnyAD9/place-macro/internal/source"
	"github.com/BonnyAD9/place-macro/internal/token"
	"github.com/BonnyAD9/place-macro/pkg/place"
)

// MaxDiagnostics caps how many problems a single run reports.
const MaxDiagnostics = 100

// Result is the outcome of expanding one input. FS is the set the result's
// spans resolve against; parallel workers each carry their own.
type Result struct {
	Path   string
	FileID source.FileID
	FS     *source.FileSet
	Stream []token.Tree
	Output string
	Trace  []expand.TraceEntry
	Bag    *diag.Bag
	// Cached is set when the output came from the disk cache.
	Cached bool
}

// Tokenize lexes one file without expanding it.
func Tokenize(fs *source.FileSet, path string) (*Result, error) {
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, path, id), nil
}

func tokenizeFile(fs *source.FileSet, path string, id source.FileID) *Result {
	bag := diag.NewBag(MaxDiagnostics)
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	stream, _ := lx.Lex()
	return &Result{Path: path, FileID: id, FS: fs, Stream: stream, Bag: bag}
}

// ExpandFile loads, lexes, and expands one file. Expansion failures land in
// the result's Bag; only I/O problems surface as an error.
func ExpandFile(fs *source.FileSet, path string, opts place.Options) (*Result, error) {
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return expandFile(fs, path, id, opts), nil
}

// ExpandVirtual expands in-memory content (stdin, -e expression).
func ExpandVirtual(fs *source.FileSet, name string, content []byte, opts place.Options) *Result {
	id := fs.AddVirtual(name, content)
	return expandFile(fs, name, id, opts)
}

func expandFile(fs *source.FileSet, path string, id source.FileID, opts place.Options) *Result {
	res := tokenizeFile(fs, path, id)
	if res.Bag.HasErrors() {
		return res
	}

	out, err := place.Expand(res.Stream, opts)
	if err != nil {
		var de *diag.Error
		if errors.As(err, &de) {
			res.Bag.Add(de.Diag)
		} else {
			res.Bag.Add(diag.NewError(diag.UnknownCode, source.Span{File: id}, err.Error()))
		}
		return res
	}

	res.Stream = out.Stream
	res.Output = token.Render(out.Stream)
	res.Trace = out.Trace
	return res
}

// ExpandFiles expands every path on its own worker. Each file gets its own
// FileSet, so workers share nothing; results come back in input order. A
// non-nil cache short-circuits files whose content and options match a
// previous run.
func ExpandFiles(ctx context.Context, paths []string, jobs int, opts place.Options, cache *DiskCache) ([]*Result, error) {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	results := make([]*Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := expandOne(path, opts, cache)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func expandOne(path string, opts place.Options, cache *DiskCache) (*Result, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}

	key := Key(fs.Get(id).Content, opts)
	var cached Payload
	if ok, err := cache.Get(key, &cached); err == nil && ok {
		return &Result{
			Path:   path,
			FileID: id,
			FS:     fs,
			Output: cached.Output,
			Bag:    diag.NewBag(MaxDiagnostics),
			Cached: true,
		}, nil
	}

	res := expandFile(fs, path, id, opts)
	if !res.Bag.HasErrors() {
		// Cache write failures are not worth failing the run for.
		_ = cache.Put(key, &Payload{Path: path, Output: res.Output})
	}
	return res, nil
}
