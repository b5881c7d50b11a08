package loader

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel kinds for load failures.
var (
	ErrOpen          = errors.New("cannot open file")
	ErrMalformed     = errors.New("malformed csv")
	ErrMissingColumn = errors.New("missing required column")
	ErrEmpty         = errors.New("missing header row")
)

// LoadError reports where loading a CSV file failed. Err wraps one of the
// sentinel kinds above; Line is 1-based and zero when unknown.
type LoadError struct {
	Path   string
	Line   int
	Column string
	Err    error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString("load ")
	b.WriteString(e.Path)
	if e.Line > 0 {
		fmt.Fprintf(&b, ":%d", e.Line)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, " column %q", e.Column)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *LoadError) Unwrap() error { return e.Err }

// Reason returns a short label for the failure kind, used as a metric label.
func (e *LoadError) Reason() string {
	switch {
	case errors.Is(e.Err, ErrOpen):
		return "open"
	case errors.Is(e.Err, ErrMissingColumn):
		return "missing_column"
	case errors.Is(e.Err, ErrEmpty):
		return "empty"
	case errors.Is(e.Err, ErrMalformed):
		return "malformed"
	default:
		return "other"
	}
}
