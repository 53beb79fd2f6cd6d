package analysis_test

import (
	"testing"

	"github.com/neatsheets/neatsheets/pkg/analysis"
	"github.com/neatsheets/neatsheets/pkg/sheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAssemble(t *testing.T, records []sheet.Record) *sheet.Sheet {
	t.Helper()
	s, err := sheet.Assemble(records)
	require.NoError(t, err)
	return s
}

func TestDetectConflicts(t *testing.T) {
	t.Run("DuplicateBinding", func(t *testing.T) {
		s := mustAssemble(t, []sheet.Record{
			{Section: "File", Desc: "Save", Shortcut: "⌘ S"},
			{Section: "File", Desc: "Open", Shortcut: "⌘ O"},
			{Section: "Search", Desc: "Save as", Shortcut: "⌘ S"},
		})
		conflicts := analysis.DetectConflicts(s)
		require.Len(t, conflicts, 1)
		assert.Equal(t, "⌘ S", conflicts[0].Chord)
		assert.Equal(t, []string{"Save", "Save as"}, conflicts[0].Descs)
	})

	t.Run("SameTaskTwiceIsNotAConflict", func(t *testing.T) {
		s := mustAssemble(t, []sheet.Record{
			{Section: "File", Desc: "Save", Shortcut: "⌘ S, ⌘ S"},
		})
		assert.Empty(t, analysis.DetectConflicts(s))
	})

	t.Run("SortedByChord", func(t *testing.T) {
		s := mustAssemble(t, []sheet.Record{
			{Section: "A", Desc: "one", Shortcut: "⌘ Z"},
			{Section: "A", Desc: "two", Shortcut: "⌘ Z"},
			{Section: "A", Desc: "three", Shortcut: "⌘ A"},
			{Section: "A", Desc: "four", Shortcut: "⌘ A"},
		})
		conflicts := analysis.DetectConflicts(s)
		require.Len(t, conflicts, 2)
		assert.Equal(t, "⌘ A", conflicts[0].Chord)
		assert.Equal(t, "⌘ Z", conflicts[1].Chord)
	})
}

func TestBuildMatrix(t *testing.T) {
	mac := mustAssemble(t, []sheet.Record{
		{Section: "File", Desc: "Save", Shortcut: "⌘ S"},
		{Section: "File", Desc: "Quit", Shortcut: "⌘ Q"},
	})
	pc := mustAssemble(t, []sheet.Record{
		{Section: "File", Desc: "Save", Shortcut: "^ S"},
		{Section: "File", Desc: "Quit", Shortcut: "⌘ Q"},
	})

	report := analysis.BuildMatrix(map[string]*sheet.Sheet{"mac": mac, "pc": pc})
	assert.Equal(t, []string{"mac", "pc"}, report.Platforms)
	require.Len(t, report.Rows, 3)

	// Rows sorted by chord: "^ S", "⌘ Q", "⌘ S".
	assert.Equal(t, "^ S", report.Rows[0].Chord)
	assert.Equal(t, map[string]string{"pc": "Save"}, report.Rows[0].Platforms)
	assert.True(t, report.Rows[0].Consistent)

	assert.Equal(t, "⌘ Q", report.Rows[1].Chord)
	assert.Equal(t, map[string]string{"mac": "Quit", "pc": "Quit"}, report.Rows[1].Platforms)
	assert.True(t, report.Rows[1].Consistent)
}
