package keystroke

import "strings"

// Shortcut is a non-empty ordered sequence of groups pressed together
// as one chord, e.g. [Ctrl, N]. Order is significant both for meaning
// (modifiers conventionally come first) and for the encoding, which
// joins group encodings with single spaces.
type Shortcut []Group

// ParseShortcut decodes one chord string. The string is split on single
// spaces and each substring is decoded via ParseGroup; the first failing
// substring's error propagates. An empty or whitespace-only string is
// rejected with ErrEmptyChord.
func ParseShortcut(text string) (Shortcut, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyChord
	}

	parts := strings.Split(text, " ")
	chord := make(Shortcut, 0, len(parts))
	for _, p := range parts {
		g, err := ParseGroup(p)
		if err != nil {
			return nil, err
		}
		chord = append(chord, g)
	}
	return chord, nil
}

// String is the inverse of ParseShortcut: group encodings joined with
// single spaces. Parse then String is the identity on canonical input.
func (s Shortcut) String() string {
	parts := make([]string, len(s))
	for i, g := range s {
		parts[i] = g.String()
	}
	return strings.Join(parts, " ")
}
