package scrape

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"github.com/neatsheets/neatsheets/pkg/catalog"
	"github.com/neatsheets/neatsheets/pkg/sheet"
)

// ExcelURL is the Microsoft support page listing Excel keyboard
// shortcuts for every platform.
const ExcelURL = "https://support.microsoft.com/en-us/office/keyboard-shortcuts-in-excel-1798d9d5-842a-42b8-9c99-9b7213f0040f"

// The PC and Mac shortcut lists live in separate pick-tab containers.
var excelTabs = map[catalog.Platform]int{
	catalog.PlatformPC:  1,
	catalog.PlatformMac: 2,
}

// excelOverrides replaces shortcut text for descriptions whose page
// markup resists normalization.
var excelOverrides = map[string]string{
	"Move Selected Rows, Columns, Or Cells": "⇧",
	"Open A Context Menu":                   "⇧+F10 or ⊞",
	"Insert A Note":                         "⇧+F2",
	"Insert A Threaded Comment":             "^+⇧+F2",
}

// Alternatives on the page are phrased "X or Y" (and occasionally
// "X On a MacBook, Y").
var altPhrase = regexp.MustCompile(`\s+(?:or|On\sa\sMacBook,)\s+`)

// Excel scrapes the Excel support page into per-platform sheets.
type Excel struct {
	URL    string
	Client *http.Client
}

// NewExcel returns a scraper for the live support page.
func NewExcel() *Excel {
	return &Excel{
		URL:    ExcelURL,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Scrape fetches and parses the page. Rows whose shortcut text cannot
// be normalized into the vocabulary are logged and skipped; the scrape
// only fails on transport or page-structure errors.
func (e *Excel) Scrape(ctx context.Context) (map[catalog.Platform]*sheet.Sheet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := e.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", e.URL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", e.URL, resp.Status)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", e.URL, err)
	}
	return e.parse(doc)
}

func (e *Excel) parse(doc *html.Node) (map[catalog.Platform]*sheet.Sheet, error) {
	sheets := make(map[catalog.Platform]*sheet.Sheet)
	for platform, tab := range excelTabs {
		records, err := parseTab(doc, tab)
		if err != nil {
			return nil, fmt.Errorf("%s sheet: %w", platform, err)
		}
		s, err := sheet.Assemble(records)
		if err != nil {
			// Records hold canonical re-serialized chords, so this
			// indicates a scraper bug rather than bad page data.
			return nil, fmt.Errorf("%s sheet: %w", platform, err)
		}
		logrus.WithFields(logrus.Fields{
			"platform": platform,
			"tasks":    s.Len(),
		}).Info("scraped sheet")
		sheets[platform] = s
	}
	return sheets, nil
}

// parseTab walks one platform's tab container: headings name sections,
// each table contributes one record per row.
func parseTab(doc *html.Node, tab int) ([]sheet.Record, error) {
	container := findByID(doc, fmt.Sprintf("PickTab-supTabControlContent-%d", tab))
	if container == nil {
		return nil, fmt.Errorf("tab container %d not found in page", tab)
	}

	var records []sheet.Record
	section := ""
	walk(container, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		switch n.Data {
		case "h2", "h3":
			section = titlecase(nodeText(n))
			return false
		case "table":
			for _, row := range findAll(n, "tr") {
				if rec, ok := parseRow(row, section); ok {
					records = append(records, rec)
				}
			}
			return false
		}
		return true
	})
	return records, nil
}

func parseRow(row *html.Node, section string) (sheet.Record, bool) {
	cells := findAll(row, "td")
	if len(cells) < 2 {
		return sheet.Record{}, false
	}

	desc := titlecase(strings.TrimSuffix(strings.TrimSpace(nodeText(cells[0])), "."))
	if desc == "" {
		return sheet.Record{}, false
	}

	shortcutText := strings.TrimSpace(nodeText(cells[1]))
	if ov, ok := excelOverrides[desc]; ok {
		shortcutText = ov
	}

	var chords []string
	for _, alt := range altPhrase.Split(shortcutText, -1) {
		chord, err := ParseShortcut(alt)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"desc":     desc,
				"shortcut": alt,
			}).WithError(err).Warn("skipping unparseable shortcut")
			continue
		}
		chords = append(chords, chord.String())
	}
	if len(chords) == 0 {
		return sheet.Record{}, false
	}

	return sheet.Record{
		Section:  section,
		Desc:     desc,
		Shortcut: strings.Join(chords, ", "),
	}, true
}
