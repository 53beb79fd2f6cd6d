package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/neatsheets/neatsheets/pkg/sheet"
)

// Terminal styles, in the palette the CLI uses elsewhere.
var (
	sectionStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#BD93F9"))
	keyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("237")).Padding(0, 1)
	joinStyle      = lipgloss.NewStyle().Faint(true)
	importantStyle = lipgloss.NewStyle().Bold(true)
)

// styler renders a string through a lipgloss style, or passes it
// through untouched when color output is off.
type styler func(lipgloss.Style, string) string

func styled(s lipgloss.Style, text string) string { return s.Render(text) }
func plain(_ lipgloss.Style, text string) string  { return text }

// WriteSheetTerm renders the sheet as styled terminal text. When color
// is false every style is stripped, for pipes and dumb terminals.
func WriteSheetTerm(w io.Writer, s *sheet.Sheet, color bool) error {
	st := styled
	if !color {
		st = plain
	}

	for i, section := range SheetView(s) {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, st(sectionStyle, section.Name)); err != nil {
			return err
		}
		width := 0
		for _, task := range section.Tasks {
			if n := len([]rune(task.Desc)); n > width {
				width = n
			}
		}
		for _, task := range section.Tasks {
			desc := fmt.Sprintf("%-*s", width, task.Desc)
			if task.Important {
				desc = st(importantStyle, desc)
			}
			line := "  " + desc + "  " + renderShortcuts(st, task.Shortcuts)
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderShortcuts(st styler, shortcuts []ShortcutView) string {
	alts := make([]string, len(shortcuts))
	for i, chord := range shortcuts {
		groups := make([]string, len(chord.Groups))
		for j, g := range chord.Groups {
			groups[j] = renderGroup(st, g)
		}
		alts[i] = strings.Join(groups, st(joinStyle, " + "))
	}
	return strings.Join(alts, st(joinStyle, "  or  "))
}

func renderGroup(st styler, g GroupView) string {
	if g.Kind == "range" {
		return st(keyStyle, g.Start) + st(joinStyle, " to ") + st(keyStyle, g.End)
	}
	caps := make([]string, len(g.Keys))
	for i, k := range g.Keys {
		caps[i] = st(keyStyle, k)
	}
	return strings.Join(caps, "")
}
