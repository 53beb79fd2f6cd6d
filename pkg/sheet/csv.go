package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Data files carry the full token vocabulary (arrows, ⌘, ⌥), so they
// must be stored in a Unicode encoding. Historically sheets were
// written as UTF-16; ReadCSV detects UTF-16 by BOM and otherwise reads
// UTF-8, WriteCSV emits UTF-16LE with a BOM.
var csvHeader = []string{"section", "desc", "shortcut", "important"}

// ReadCSV reads sheet records from r and assembles them.
func ReadCSV(r io.Reader) (*Sheet, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	cr := csv.NewReader(transform.NewReader(r, dec))
	cr.FieldsPerRecord = len(csvHeader)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &MalformedRecordError{Reason: "missing header row"}
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i, name := range csvHeader {
		if header[i] != name {
			return nil, &MalformedRecordError{
				Line:   1,
				Reason: fmt.Sprintf("header column %d is %q, want %q", i+1, header[i], name),
			}
		}
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &MalformedRecordError{Line: line, Reason: err.Error()}
		}
		records = append(records, Record{
			Section:   row[0],
			Desc:      row[1],
			Shortcut:  row[2],
			Important: row[3],
		})
	}

	return Assemble(records)
}

// WriteCSV writes the sheet to w as UTF-16LE CSV with a BOM.
func WriteCSV(w io.Writer, s *Sheet) error {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	tw := transform.NewWriter(w, enc)
	cw := csv.NewWriter(tw)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range s.Records() {
		if err := cw.Write([]string{r.Section, r.Desc, r.Shortcut, r.Important}); err != nil {
			return fmt.Errorf("write csv record %q: %w", r.Desc, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return tw.Close()
}
