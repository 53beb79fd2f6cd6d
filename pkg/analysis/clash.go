// Package analysis provides consistency checks over assembled sheets:
// duplicate chord detection within a sheet and cross-platform matrix
// reports for one application.
package analysis

import (
	"sort"

	"github.com/neatsheets/neatsheets/pkg/sheet"
)

// Conflict is a chord bound to more than one distinct task within the
// same sheet. Cross-platform duplicates are NOT conflicts; each
// platform sheet is its own scope.
type Conflict struct {
	Chord string   `json:"chord"`
	Descs []string `json:"descs"`
}

// DetectConflicts finds chords that appear under several different task
// descriptions in one sheet. Output is sorted by chord for stable
// reports.
func DetectConflicts(s *sheet.Sheet) []Conflict {
	usage := make(map[string][]string)
	for _, section := range s.Sections() {
		for _, task := range s.Tasks(section) {
			for _, chord := range task.Shortcuts {
				usage[chord.String()] = append(usage[chord.String()], task.Desc)
			}
		}
	}

	var conflicts []Conflict
	for chord, descs := range usage {
		if len(descs) < 2 {
			continue
		}
		// The same task may list a chord twice; only distinct
		// descriptions clash.
		seen := make(map[string]bool)
		var unique []string
		for _, d := range descs {
			if !seen[d] {
				seen[d] = true
				unique = append(unique, d)
			}
		}
		if len(unique) > 1 {
			conflicts = append(conflicts, Conflict{Chord: chord, Descs: unique})
		}
	}

	sort.Slice(conflicts, func(i, j int) bool {
		return conflicts[i].Chord < conflicts[j].Chord
	})
	return conflicts
}
