package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/neatsheets/neatsheets/pkg/catalog"
	"github.com/neatsheets/neatsheets/pkg/sheet"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

//go:embed static/style.css
var styleCSS []byte

var pageTemplates = template.Must(template.ParseFS(templatesFS, "templates/*.tmpl"))

// StyleCSS returns the stylesheet the HTML templates link against.
func StyleCSS() []byte { return styleCSS }

// appPage is the data handed to the app page template.
type appPage struct {
	App      *catalog.App
	Platform catalog.Platform
	Sections []SectionView
}

// WriteSheetHTML renders just the sheet fragment (section headings and
// tables) to w.
func WriteSheetHTML(w io.Writer, s *sheet.Sheet) error {
	if err := pageTemplates.ExecuteTemplate(w, "sheet.html.tmpl", SheetView(s)); err != nil {
		return fmt.Errorf("render sheet: %w", err)
	}
	return nil
}

// WriteAppHTML renders the full cheat-sheet page for one app and
// platform.
func WriteAppHTML(w io.Writer, app *catalog.App, platform catalog.Platform) error {
	s := app.Sheet(platform)
	if s == nil {
		return fmt.Errorf("app %s has no %s sheet", app.Name, platform)
	}
	data := appPage{App: app, Platform: platform, Sections: SheetView(s)}
	if err := pageTemplates.ExecuteTemplate(w, "app.html.tmpl", data); err != nil {
		return fmt.Errorf("render app page: %w", err)
	}
	return nil
}
