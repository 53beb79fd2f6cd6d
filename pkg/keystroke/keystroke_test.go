package keystroke_test

import (
	"testing"

	"github.com/neatsheets/neatsheets/pkg/keystroke"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("CanonicalTokens", func(t *testing.T) {
		for _, k := range keystroke.All() {
			got, err := keystroke.Parse(k.String())
			require.NoError(t, err, "token %q", k)
			assert.Equal(t, k, got)
		}
	})

	t.Run("Bijection", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, k := range keystroke.All() {
			assert.False(t, seen[k.String()], "duplicate canonical string %q", k)
			seen[k.String()] = true
		}
	})

	t.Run("Unrecognized", func(t *testing.T) {
		for _, s := range []string{"", "ctrl", "a", "⌘⌘", "F13", "TRUE", " "} {
			_, err := keystroke.Parse(s)
			var ute *keystroke.UnrecognizedTokenError
			require.ErrorAs(t, err, &ute, "input %q", s)
			assert.Equal(t, s, ute.Token)
		}
	})

	t.Run("CaseSensitive", func(t *testing.T) {
		// Letters are upper-case only; named keys are lower-case only.
		_, err := keystroke.Parse("q")
		assert.Error(t, err)
		_, err = keystroke.Parse("ESC")
		assert.Error(t, err)
	})
}

func TestGlyph(t *testing.T) {
	assert.True(t, keystroke.Cmd.Glyph())
	assert.True(t, keystroke.Up.Glyph())
	assert.True(t, keystroke.Zero.Glyph())
	assert.False(t, keystroke.Esc.Glyph())
	assert.False(t, keystroke.F1.Glyph())
	assert.False(t, keystroke.ScrollLock.Glyph())
}

func TestParseGroup(t *testing.T) {
	t.Run("SingleToken", func(t *testing.T) {
		g, err := keystroke.ParseGroup("⌘")
		require.NoError(t, err)
		assert.Equal(t, keystroke.Cmd, g)
	})

	t.Run("SingleBeatsSet", func(t *testing.T) {
		// A bare letter is a Keystroke, never a one-element Set.
		g, err := keystroke.ParseGroup("A")
		require.NoError(t, err)
		assert.Equal(t, keystroke.A, g)
	})

	t.Run("Range", func(t *testing.T) {
		g, err := keystroke.ParseGroup("0-9")
		require.NoError(t, err)
		assert.Equal(t, keystroke.Range{Start: keystroke.Zero, End: keystroke.Nine}, g)
	})

	t.Run("MultiCharRangeEndpoints", func(t *testing.T) {
		g, err := keystroke.ParseGroup("F1-F12")
		require.NoError(t, err)
		assert.Equal(t, keystroke.Range{Start: keystroke.F1, End: keystroke.F12}, g)
	})

	t.Run("MinusKeyBeatsRange", func(t *testing.T) {
		// The literal hyphen is a vocabulary token and must win over the
		// range grammar.
		g, err := keystroke.ParseGroup("-")
		require.NoError(t, err)
		assert.Equal(t, keystroke.Minus, g)
	})

	t.Run("Set", func(t *testing.T) {
		g, err := keystroke.ParseGroup("↑↓←→")
		require.NoError(t, err)
		assert.Equal(t, keystroke.Set{Keys: []keystroke.Keystroke{
			keystroke.Up, keystroke.Down, keystroke.Left, keystroke.Right,
		}}, g)
	})

	t.Run("SetOfLetters", func(t *testing.T) {
		g, err := keystroke.ParseGroup("WASD")
		require.NoError(t, err)
		assert.Equal(t, keystroke.Set{Keys: []keystroke.Keystroke{
			keystroke.W, keystroke.A, keystroke.S, keystroke.D,
		}}, g)
	})

	t.Run("Unparseable", func(t *testing.T) {
		_, err := keystroke.ParseGroup("xyz123")
		var ge *keystroke.GroupError
		require.ErrorAs(t, err, &ge)
		assert.Equal(t, "xyz123", ge.Text)
		// The wrapped error is the single-token diagnostic.
		var ute *keystroke.UnrecognizedTokenError
		require.ErrorAs(t, err, &ute)
		assert.Equal(t, "xyz123", ute.Token)
	})

	t.Run("HalfValidRange", func(t *testing.T) {
		_, err := keystroke.ParseGroup("0-x")
		var ge *keystroke.GroupError
		require.ErrorAs(t, err, &ge)
	})
}

func TestParseShortcut(t *testing.T) {
	t.Run("Chord", func(t *testing.T) {
		s, err := keystroke.ParseShortcut("⌘ S")
		require.NoError(t, err)
		assert.Equal(t, keystroke.Shortcut{keystroke.Cmd, keystroke.S}, s)
	})

	t.Run("ChordWithRange", func(t *testing.T) {
		s, err := keystroke.ParseShortcut("^ 0-8")
		require.NoError(t, err)
		assert.Equal(t, keystroke.Shortcut{
			keystroke.Ctrl,
			keystroke.Range{Start: keystroke.Zero, End: keystroke.Eight},
		}, s)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := keystroke.ParseShortcut("")
		assert.ErrorIs(t, err, keystroke.ErrEmptyChord)
		_, err = keystroke.ParseShortcut("   ")
		assert.ErrorIs(t, err, keystroke.ErrEmptyChord)
	})

	t.Run("BadGroupPropagates", func(t *testing.T) {
		_, err := keystroke.ParseShortcut("⌘ bogus")
		var ge *keystroke.GroupError
		require.ErrorAs(t, err, &ge)
		assert.Equal(t, "bogus", ge.Text)
	})
}

func TestRoundTrip(t *testing.T) {
	// Canonical chord strings must survive parse -> serialize unchanged.
	canonical := []string{
		"⌘ S",
		"^ ⇧ N",
		"⌘ ←",
		"^ 0-9",
		"↑↓←→",
		"⌥ F5",
		"-",
		"⇧ scroll_lock",
		"alt Q",
		"⊞ E",
		"fn ⌫",
	}
	for _, text := range canonical {
		s, err := keystroke.ParseShortcut(text)
		require.NoError(t, err, "parse %q", text)
		assert.Equal(t, text, s.String(), "round trip %q", text)

		again, err := keystroke.ParseShortcut(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, again, "reparse %q", text)
	}
}
