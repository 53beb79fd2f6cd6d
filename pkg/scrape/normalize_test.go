package scrape_test

import (
	"testing"

	"github.com/neatsheets/neatsheets/pkg/keystroke"
	"github.com/neatsheets/neatsheets/pkg/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"Ctrl+Shift+N":    "^+⇧+N",
		"COMMAND+W":       "⌘+W",
		"Up arrow key":    "↑",
		"Arrow keys":      "↑↓←→",
		"Alt+H, A, C":     "alt+H+A+C",
		"Ctrl+Spacebar":   "^+space",
		"Shift+Page down": "⇧+pgdn",
		"F10 alone":       "F10",
	}
	for in, want := range cases {
		assert.Equal(t, want, scrape.Normalize(in), "input %q", in)
	}
}

func TestParseShortcut(t *testing.T) {
	t.Run("Chord", func(t *testing.T) {
		s, err := scrape.ParseShortcut("Ctrl+Shift+N")
		require.NoError(t, err)
		assert.Equal(t, "^ ⇧ N", s.String())
	})

	t.Run("ArrowSet", func(t *testing.T) {
		s, err := scrape.ParseShortcut("Ctrl+Arrow keys")
		require.NoError(t, err)
		assert.Equal(t, keystroke.Shortcut{
			keystroke.Ctrl,
			keystroke.Set{Keys: []keystroke.Keystroke{
				keystroke.Up, keystroke.Down, keystroke.Left, keystroke.Right,
			}},
		}, s)
	})

	t.Run("Sequential", func(t *testing.T) {
		s, err := scrape.ParseShortcut("Alt+H, A, C")
		require.NoError(t, err)
		assert.Equal(t, "alt H A C", s.String())
	})

	t.Run("Unrecognized", func(t *testing.T) {
		_, err := scrape.ParseShortcut("Ctrl+Insert")
		require.Error(t, err)
		var ge *keystroke.GroupError
		assert.ErrorAs(t, err, &ge)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := scrape.ParseShortcut("   ")
		assert.ErrorIs(t, err, keystroke.ErrEmptyChord)
	})
}
