package timeline

import (
	"errors"
	"fmt"
)

var (
	ErrMissingHeader   = errors.New("timeline has no header row")
	ErrMalformedHeader = errors.New("timeline header is malformed")
)

// HeaderError reports the first header position that does not match the
// expected timeline layout.
type HeaderError struct {
	Position int    // 0-based column, or -1 when the column count is wrong
	Got      string // offending name, or the count as text
	Want     string
}

func (e *HeaderError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("%v: got %s columns, want %s", ErrMalformedHeader, e.Got, e.Want)
	}
	return fmt.Sprintf("%v: column %d is %q, want %q", ErrMalformedHeader, e.Position+1, e.Got, e.Want)
}

func (e *HeaderError) Unwrap() error { return ErrMalformedHeader }
