// Package sheet implements the record model around the keystroke
// notation: tasks (one documented action with alternative shortcuts),
// sheets (section-grouped ordered task collections) and the CSV record
// format they are persisted in.
package sheet

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/neatsheets/neatsheets/pkg/keystroke"
)

// Task is one documented action: a description, one or more alternative
// shortcuts (any one of which performs the action) and an importance
// flag. Section membership is record-layer metadata and is not part of
// Task identity.
type Task struct {
	Desc      string
	Shortcuts []keystroke.Shortcut
	Important bool
}

// Alternatives are separated by a comma with optional surrounding
// whitespace, e.g. "⌘ ←, ⌘ [".
var altSeparator = regexp.MustCompile(`\s*,\s*`)

// ParseTask builds a Task from the three raw record fields.
//
// The shortcut field is split into alternative chords and every chord
// must parse; the first failure propagates. The importance field is true
// exactly when it matches the literal "true" case-insensitively; any
// other value, including "yes", "1" and the empty string, is false.
// The description is stored verbatim.
func ParseTask(desc, shortcutField, importantField string) (Task, error) {
	if strings.TrimSpace(shortcutField) == "" {
		return Task{}, ErrEmptyAlternatives
	}

	parts := altSeparator.Split(shortcutField, -1)
	shortcuts := make([]keystroke.Shortcut, 0, len(parts))
	for _, p := range parts {
		s, err := keystroke.ParseShortcut(p)
		if err != nil {
			return Task{}, err
		}
		shortcuts = append(shortcuts, s)
	}

	return Task{
		Desc:      desc,
		Shortcuts: shortcuts,
		Important: strings.EqualFold(importantField, "true"),
	}, nil
}

// Fields is the inverse of ParseTask: the description verbatim, the
// alternatives serialized and joined with ", ", and "true"/"false".
func (t Task) Fields() (desc, shortcutField, importantField string) {
	alts := make([]string, len(t.Shortcuts))
	for i, s := range t.Shortcuts {
		alts[i] = s.String()
	}
	return t.Desc, strings.Join(alts, ", "), strconv.FormatBool(t.Important)
}
