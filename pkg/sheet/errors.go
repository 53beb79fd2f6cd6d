package sheet

import (
	"errors"
	"fmt"
)

// ErrEmptyAlternatives is returned when a shortcut field contains no
// chords at all.
var ErrEmptyAlternatives = errors.New("shortcut field has no alternatives")

// MalformedRecordError reports a record with missing fields or the
// wrong arity. Line is 1-based within the source file when known.
type MalformedRecordError struct {
	Line   int
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed record at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("malformed record: %s", e.Reason)
}
