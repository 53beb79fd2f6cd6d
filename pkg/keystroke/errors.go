package keystroke

import (
	"errors"
	"fmt"
)

// ErrEmptyChord is returned when a chord string is empty or contains
// only whitespace. A Shortcut must have at least one group.
var ErrEmptyChord = errors.New("empty chord")

// UnrecognizedTokenError reports a substring that matches no vocabulary
// entry.
type UnrecognizedTokenError struct {
	Token string
}

func (e *UnrecognizedTokenError) Error() string {
	return fmt.Sprintf("unrecognized token %q", e.Token)
}

// GroupError reports a substring that could not be decoded as a single
// token, a range, or a set. Err holds the error from the single-token
// attempt, which is the most specific diagnostic available.
type GroupError struct {
	Text string
	Err  error
}

func (e *GroupError) Error() string {
	return fmt.Sprintf("unparseable keystroke group %q: %v", e.Text, e.Err)
}

func (e *GroupError) Unwrap() error { return e.Err }
