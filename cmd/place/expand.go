package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/BonnyAD9/place-macro/internal/diagfmt"
	"github.com/BonnyAD9/place-macro/internal/driver"
	"github.com/BonnyAD9/place-macro/internal/expand"
	"github.com/BonnyAD9/place-macro/internal/source"
	"github.com/BonnyAD9/place-macro/pkg/place"
)

var (
	expandExpr     string
	expandPasses   int
	expandMaxSteps int
	expandJobs     int
	expandCache    bool
	expandTrace    bool
)

var expandCmd = &cobra.Command{
	Use:   "expand [flags] [file.place ...]",
	Short: "Expand directive calls in token streams",
	Long: `Expand rewrites every directive call in its inputs and prints the
resulting token streams. Inputs come from files, from -e, or from stdin
when neither is given.`,
	RunE: runExpand,
}

func init() {
	expandCmd.Flags().StringVarP(&expandExpr, "expr", "e", "", "expand this expression instead of files")
	expandCmd.Flags().IntVar(&expandPasses, "passes", 0, "extra expansion passes for staged directives (default 1)")
	expandCmd.Flags().IntVar(&expandMaxSteps, "max-steps", 0, "directive evaluation limit per pass (default 10000)")
	expandCmd.Flags().IntVarP(&expandJobs, "jobs", "j", 0, "parallel workers for multiple files (default NumCPU)")
	expandCmd.Flags().BoolVar(&expandCache, "cache", false, "reuse cached outputs for unchanged files")
	expandCmd.Flags().BoolVar(&expandTrace, "trace", false, "print each evaluated call site to stderr")
}

func runExpand(cmd *cobra.Command, args []string) error {
	opts, err := expandOptions()
	if err != nil {
		return err
	}

	if expandExpr != "" {
		if len(args) > 0 {
			return fmt.Errorf("-e and file arguments are mutually exclusive")
		}
		fs := source.NewFileSet()
		res := driver.ExpandVirtual(fs, "<expr>", []byte(expandExpr), opts)
		return emitResult(cmd, res)
	}

	if len(args) == 0 {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		fs := source.NewFileSet()
		res := driver.ExpandVirtual(fs, "<stdin>", content, opts)
		return emitResult(cmd, res)
	}

	var cache *driver.DiskCache
	if expandCache {
		cache, err = driver.OpenDiskCache("place")
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
	}

	results, err := driver.ExpandFiles(cmd.Context(), args, expandJobs, opts, cache)
	if err != nil {
		return err
	}

	failed := false
	for _, res := range results {
		if err := emitResult(cmd, res); err != nil {
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("expansion failed")
	}
	return nil
}

// expandOptions merges manifest defaults with flags; flags win.
func expandOptions() (place.Options, error) {
	opts := place.Options{
		MaxSteps: expandMaxSteps,
		Passes:   expandPasses,
		Trace:    expandTrace,
	}

	m, ok, err := loadManifest(".")
	if err != nil {
		return opts, err
	}
	if ok {
		if opts.MaxSteps == 0 {
			opts.MaxSteps = m.Config.Expand.MaxSteps
		}
		if opts.Passes == 0 {
			opts.Passes = m.Config.Expand.Passes
		}
		if expandJobs == 0 {
			expandJobs = m.Config.Expand.Jobs
		}
		if !expandCache {
			expandCache = m.Config.Expand.Cache
		}
	}
	return opts, nil
}

func emitResult(cmd *cobra.Command, res *driver.Result) error {
	if res.Bag.HasErrors() {
		res.Bag.Dedup()
		res.Bag.Sort()
		diagfmt.Pretty(os.Stderr, res.Bag, res.FS, diagfmt.PrettyOpts{
			Color: useColor(cmd, os.Stderr),
		})
		return fmt.Errorf("%s: expansion failed", res.Path)
	}
	printTrace(os.Stderr, res.FS, res.Trace)
	fmt.Fprintln(cmd.OutOrStdout(), res.Output)
	return nil
}

func printTrace(w io.Writer, fs *source.FileSet, trace []expand.TraceEntry) {
	for _, e := range trace {
		f := fs.Get(e.Span.File)
		lc, _ := fs.Resolve(e.Span)
		fmt.Fprintf(w, "%s:%d:%d: %s\n", f.Path, lc.Line, lc.Col, e.Name)
	}
}
