package sheet

import "fmt"

// Record is one raw data-file row. Section is optional grouping
// metadata attached by the loading layer; the remaining fields are the
// Task fields in their textual form.
type Record struct {
	Section   string
	Desc      string
	Shortcut  string
	Important string
}

// Sheet is an ordered, section-grouped collection of tasks. Sections
// appear in first-seen order and tasks keep their original relative
// order within a section; presentation renders sections in discovery
// order, so the grouping must be deterministic.
type Sheet struct {
	sections []string
	tasks    map[string][]Task
}

// Assemble parses every record and groups the resulting tasks by
// section. A record that fails to parse aborts the whole assembly: the
// caller sees the sheet as entirely valid or entirely rejected, never
// with silently dropped entries.
func Assemble(records []Record) (*Sheet, error) {
	s := &Sheet{tasks: make(map[string][]Task)}
	for i, r := range records {
		task, err := ParseTask(r.Desc, r.Shortcut, r.Important)
		if err != nil {
			return nil, fmt.Errorf("record %d (%q): %w", i+1, r.Desc, err)
		}
		if _, seen := s.tasks[r.Section]; !seen {
			s.sections = append(s.sections, r.Section)
		}
		s.tasks[r.Section] = append(s.tasks[r.Section], task)
	}
	return s, nil
}

// Sections returns the section labels in first-seen order.
func (s *Sheet) Sections() []string {
	out := make([]string, len(s.sections))
	copy(out, s.sections)
	return out
}

// Tasks returns the tasks of one section in original order.
func (s *Sheet) Tasks(section string) []Task {
	tasks := s.tasks[section]
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}

// Len returns the total number of tasks across all sections.
func (s *Sheet) Len() int {
	n := 0
	for _, tasks := range s.tasks {
		n += len(tasks)
	}
	return n
}

// Records re-serializes the sheet into raw rows, in section order. The
// output is canonical: assembling it again yields an equal sheet.
func (s *Sheet) Records() []Record {
	var out []Record
	for _, section := range s.sections {
		for _, task := range s.tasks[section] {
			desc, shortcut, important := task.Fields()
			out = append(out, Record{
				Section:   section,
				Desc:      desc,
				Shortcut:  shortcut,
				Important: important,
			})
		}
	}
	return out
}
