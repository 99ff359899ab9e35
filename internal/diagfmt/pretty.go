// Package diagfmt renders diagnostics and token trees for humans and tools.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/BonnyAD9/place-macro/internal/diag"
	"github.com/BonnyAD9/place-macro/internal/source"
)

// PrettyOpts control human-readable diagnostic rendering.
type PrettyOpts struct {
	Color bool
}

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	spanColor = color.New(color.FgGreen)
)

func sevColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	}
	return infoColor
}

// Pretty writes every diagnostic in the bag as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a caret underline over the primary span,
// then any notes. Call bag.Sort() first for deterministic order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiag(w, d, fs, opts)
	}
}

func writeDiag(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)

	sev := d.Severity.String()
	code := d.Code.ID()
	if opts.Color {
		sev = sevColor(d.Severity).Sprint(sev)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		f.Path, start.Line, start.Col, sev, code, d.Message)

	writeUnderline(w, fs, d.Primary, start, end, opts)

	for _, n := range d.Notes {
		nStart, _ := fs.Resolve(n.Span)
		fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", f.Path, nStart.Line, nStart.Col, n.Msg)
	}
}

func writeUnderline(w io.Writer, fs *source.FileSet, sp source.Span, start, end source.LineCol, opts PrettyOpts) {
	line := fs.Line(sp.File, start.Line)
	if line == "" && start.Col == 1 && sp.Empty() {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	// The caret run covers the span on its first line; display width, not
	// byte count, decides how far it stretches.
	prefix := line
	if int(start.Col-1) <= len(line) {
		prefix = line[:start.Col-1]
	}
	pad := strings.Repeat(" ", runewidth.StringWidth(prefix))

	spanText := line
	if int(start.Col-1) <= len(line) {
		spanText = line[start.Col-1:]
		if start.Line == end.Line && int(end.Col-1) <= len(line) {
			spanText = line[start.Col-1 : end.Col-1]
		}
	}
	width := max(runewidth.StringWidth(spanText), 1)

	marks := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marks = spanColor.Sprint(marks)
	}
	fmt.Fprintf(w, "  %s%s\n", pad, marks)
}
