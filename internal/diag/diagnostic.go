package diag

import (
	"fmt"

	"github.com/BonnyAD9/place-macro/internal/source"
)

// Note attaches secondary context to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one reported problem with a primary source span.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// Error wraps a Diagnostic so phases can fail fast through the error chain
// without losing the span or code.
type Error struct {
	Diag Diagnostic
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Diag.Severity, e.Diag.Code.ID(), e.Diag.Message)
}

// AsError wraps d in an Error.
func AsError(d Diagnostic) *Error {
	return &Error{Diag: d}
}
