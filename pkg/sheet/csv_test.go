package sheet_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/neatsheets/neatsheets/pkg/sheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	t.Run("UTF8", func(t *testing.T) {
		in := strings.Join([]string{
			"section,desc,shortcut,important",
			"Navigation,Back,\"⌘ ←, ⌘ [\",true",
			"Navigation,Forward,⌘ →,false",
		}, "\n")

		s, err := sheet.ReadCSV(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, []string{"Navigation"}, s.Sections())
		tasks := s.Tasks("Navigation")
		require.Len(t, tasks, 2)
		assert.Equal(t, "Back", tasks[0].Desc)
		assert.True(t, tasks[0].Important)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		_, err := sheet.ReadCSV(strings.NewReader(""))
		var mre *sheet.MalformedRecordError
		require.ErrorAs(t, err, &mre)
	})

	t.Run("WrongHeader", func(t *testing.T) {
		_, err := sheet.ReadCSV(strings.NewReader("a,b,c,d\n"))
		var mre *sheet.MalformedRecordError
		require.ErrorAs(t, err, &mre)
		assert.Equal(t, 1, mre.Line)
	})

	t.Run("WrongArity", func(t *testing.T) {
		in := "section,desc,shortcut,important\nNavigation,Back,⌘ ←\n"
		_, err := sheet.ReadCSV(strings.NewReader(in))
		var mre *sheet.MalformedRecordError
		require.ErrorAs(t, err, &mre)
		assert.Equal(t, 2, mre.Line)
	})

	t.Run("BadShortcutAborts", func(t *testing.T) {
		in := "section,desc,shortcut,important\nNavigation,Back,bogus1,true\n"
		_, err := sheet.ReadCSV(strings.NewReader(in))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bogus1")
	})
}

func TestWriteReadCSV(t *testing.T) {
	s, err := sheet.Assemble([]sheet.Record{
		{Section: "Navigation", Desc: "Back", Shortcut: "⌘ ←, ⌘ [", Important: "true"},
		{Section: "Editing", Desc: "Delete word", Shortcut: "⌥ ⌫", Important: "false"},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, sheet.WriteCSV(&buf, s))

	// Output is UTF-16LE with a BOM so the glyph vocabulary survives.
	raw := buf.Bytes()
	require.True(t, len(raw) >= 2)
	assert.Equal(t, []byte{0xff, 0xfe}, raw[:2])

	again, err := sheet.ReadCSV(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, s, again)
}
