package analysis

import (
	"sort"

	"github.com/neatsheets/neatsheets/pkg/sheet"
)

// MatrixRow shows what a single chord does on each platform.
type MatrixRow struct {
	Chord      string            `json:"chord"`
	Platforms  map[string]string `json:"platforms"`
	Consistent bool              `json:"consistent"`
}

// MatrixReport is the chord-by-platform view for one application.
type MatrixReport struct {
	Platforms []string    `json:"platforms"`
	Rows      []MatrixRow `json:"rows"`
}

// BuildMatrix maps every chord to its task description per platform and
// flags chords whose meaning differs between platforms. Rows are sorted
// by chord.
func BuildMatrix(sheets map[string]*sheet.Sheet) MatrixReport {
	rowMap := make(map[string]*MatrixRow)

	var platforms []string
	for platform := range sheets {
		platforms = append(platforms, platform)
	}
	sort.Strings(platforms)

	for _, platform := range platforms {
		s := sheets[platform]
		for _, section := range s.Sections() {
			for _, task := range s.Tasks(section) {
				for _, chord := range task.Shortcuts {
					key := chord.String()
					if rowMap[key] == nil {
						rowMap[key] = &MatrixRow{
							Chord:     key,
							Platforms: make(map[string]string),
						}
					}
					rowMap[key].Platforms[platform] = task.Desc
				}
			}
		}
	}

	report := MatrixReport{Platforms: platforms}
	for _, row := range rowMap {
		first := ""
		row.Consistent = true
		for _, desc := range row.Platforms {
			if first == "" {
				first = desc
			} else if desc != first {
				row.Consistent = false
				break
			}
		}
		report.Rows = append(report.Rows, *row)
	}

	sort.Slice(report.Rows, func(i, j int) bool {
		return report.Rows[i].Chord < report.Rows[j].Chord
	})
	return report
}
