// Package scrape builds sheets from vendor documentation pages. It
// normalizes the vendors' English key names into the token vocabulary
// with a best-effort substitution pass and feeds the result to the
// exact notation parser; rows that still fail to parse are logged and
// skipped rather than failing the whole scrape.
package scrape

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/neatsheets/neatsheets/pkg/keystroke"
)

// substitution rewrites one vendor phrase into vocabulary notation.
// Order matters: longer phrases must be rewritten before their
// substrings ("Tab key" before "Tab").
type substitution struct {
	old string
	new string
}

var keystrokeSubs = []substitution{
	{"\u00a0", " "},
	{"COMMAND", "⌘"},
	{"Windows Menu key", "⊞"},
	{"Control", "^"},
	{"Ctrl", "^"},
	{"The Mac Delete button with a cross symbol on it.", "⌫"},
	{"Backspace", "⌫"},
	{"Delete (not the forward delete key)", "del"},
	{"Delete", "del"},
	{"Alt", "alt"},
	{"Option", "⌥"},
	{"Shift", "⇧"},
	{"Hyphen (-)", "-"},
	{"Hyphen", "-"},
	{"Minus sign (-)", "-"},
	{"Underscore (_)", "-"},
	{"Equal sign ( = )", "="},
	{"Plus sign (+)", "="},
	{"Forward slash (/)", "/"},
	{"Backward slash (\\)", "/"},
	{"Spacebar", "space"},
	{"Return", "⏎"},
	{"Enter", "⏎"},
	{"Tab key", "tab"},
	{"Tab", "tab"},
	{"Esc", "esc"},
	{"Scroll lock", "scroll_lock"},
	{"Up arrow key", "↑"},
	{"Down arrow key", "↓"},
	{"Left arrow key", "←"},
	{"Right arrow key", "→"},
	{"Arrow keys", "↑↓←→"},
	{"Arrow key", "↑↓←→"},
	{"Home", "home"},
	{"Fn", "fn"},
	{"End", "end"},
	{"Page down", "pgdn"},
	{"Page up", "pgup"},
	{"Semicolon (;)", ";"},
	{"Colon (:)", ";"},
	{`Inch mark/Straight double quote (")`, "'"},
	{`Straight quotation mark (")`, "'"},
	{"Grave accent (`)", "`"},
	{"Period (.)", "."},
	{"Apostrophe (')", "'"},
	{"Left bracket ([)", "["},
	{"Right bracket (])", "]"},
	{"Left brace ({)", "["},
	{"Right brace (})", "]"},
	{"Tilde sign (~)", "`"},
	{"Tilde (~)", "`"},
	{"Exclamation point (!)", "1"},
	{"At sign (@)", "2"},
	{"At symbol (@)", "2"},
	{"Number sign (#)", "3"},
	{"Dollar sign ($)", "4"},
	{"Percent sign (%)", "5"},
	{"Caret sign (^)", "6"},
	{"Caret (^)", "6"},
	{"Ampersand sign (&)", "7"},
	{"Asterisk sign (*)", "8"},
	{"Asterisk (*)", "8"},
	{"Left parenthesis (()", "9"},
	{"Right parenthesis ())", "0"},
	{"Zero (0)", "0"},
	// Sequential combinations, e.g. Alt+H, A, C.
	{", ", "+"},
	{" alone", ""},
}

// Normalize collapses vendor key names in text into vocabulary tokens.
func Normalize(text string) string {
	for _, sub := range keystrokeSubs {
		text = strings.ReplaceAll(text, sub.old, sub.new)
	}
	return text
}

// ParseShortcut normalizes one scraped shortcut phrase and decodes it.
// Scraped chords separate keystrokes with "+"; each segment is decoded
// as one keystroke group, so phrases like "Ctrl+Arrow keys" become a
// control modifier plus an arrow-key set.
func ParseShortcut(text string) (keystroke.Shortcut, error) {
	text = strings.TrimSpace(Normalize(text))
	if text == "" {
		return nil, keystroke.ErrEmptyChord
	}

	var chord keystroke.Shortcut
	for _, part := range strings.Split(text, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		g, err := keystroke.ParseGroup(part)
		if err != nil {
			return nil, fmt.Errorf("scraped shortcut %q: %w", text, err)
		}
		chord = append(chord, g)
	}
	if len(chord) == 0 {
		return nil, keystroke.ErrEmptyChord
	}
	return chord, nil
}

var titleCaser = cases.Title(language.English)

// titlecase normalizes scraped task descriptions the way the sheet
// data files store them.
func titlecase(s string) string {
	return titleCaser.String(strings.TrimSpace(s))
}
