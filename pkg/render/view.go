// Package render turns assembled sheets into presentation formats:
// HTML pages via embedded templates and styled terminal output.
// It consumes the structured model only, never raw record text.
package render

import (
	"github.com/neatsheets/neatsheets/pkg/keystroke"
	"github.com/neatsheets/neatsheets/pkg/sheet"
)

// GroupView is the presentation shape of one keystroke group. Kind is
// "keys" for a single token or a set (rendered as adjacent key caps)
// and "range" for a start-to-end span.
type GroupView struct {
	Kind  string
	Keys  []string
	Start string
	End   string
}

// ShortcutView is one chord: its groups in press order.
type ShortcutView struct {
	Groups []GroupView
}

// TaskView is one row of a rendered sheet.
type TaskView struct {
	Desc      string
	Important bool
	Shortcuts []ShortcutView
}

// SectionView is one titled block of rows.
type SectionView struct {
	Name  string
	Tasks []TaskView
}

// SheetView builds the presentation model for a sheet, preserving the
// sheet's section and task order.
func SheetView(s *sheet.Sheet) []SectionView {
	var sections []SectionView
	for _, name := range s.Sections() {
		sv := SectionView{Name: name}
		for _, task := range s.Tasks(name) {
			tv := TaskView{Desc: task.Desc, Important: task.Important}
			for _, chord := range task.Shortcuts {
				tv.Shortcuts = append(tv.Shortcuts, ShortcutView{Groups: groupViews(chord)})
			}
			sv.Tasks = append(sv.Tasks, tv)
		}
		sections = append(sections, sv)
	}
	return sections
}

func groupViews(chord keystroke.Shortcut) []GroupView {
	views := make([]GroupView, 0, len(chord))
	for _, g := range chord {
		switch g := g.(type) {
		case keystroke.Keystroke:
			views = append(views, GroupView{Kind: "keys", Keys: []string{g.String()}})
		case keystroke.Range:
			views = append(views, GroupView{Kind: "range", Start: g.Start.String(), End: g.End.String()})
		case keystroke.Set:
			keys := make([]string, len(g.Keys))
			for i, k := range g.Keys {
				keys[i] = k.String()
			}
			views = append(views, GroupView{Kind: "keys", Keys: keys})
		}
	}
	return views
}
