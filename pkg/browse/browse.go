// Package browse is the interactive sheet browser: a list of catalog
// apps, and a scrollable view of the selected app's sheet.
package browse

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/neatsheets/neatsheets/pkg/catalog"
	"github.com/neatsheets/neatsheets/pkg/render"
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#BD93F9"))

type state int

const (
	stateList state = iota
	stateSheet
)

type appItem struct {
	name string
}

func (i appItem) Title() string       { return i.name }
func (i appItem) Description() string { return "" }
func (i appItem) FilterValue() string { return i.name }

type appLoadedMsg struct {
	app *catalog.App
	err error
}

// Model is the bubbletea model for the browser.
type Model struct {
	catalog  *catalog.Catalog
	lang     catalog.Language
	keys     KeyMap
	list     list.Model
	viewport viewport.Model
	help     help.Model

	state    state
	app      *catalog.App
	platform catalog.Platform
	err      error
	width    int
	height   int
}

// New builds the browser over one catalog language.
func New(cat *catalog.Catalog, lang catalog.Language) (Model, error) {
	names, err := cat.Apps(lang)
	if err != nil {
		return Model{}, err
	}
	items := make([]list.Item, len(names))
	for i, n := range names {
		items[i] = appItem{name: n}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	l := list.New(items, delegate, 0, 0)
	l.Title = fmt.Sprintf("Cheat sheets (%s)", lang)
	l.SetShowHelp(false)

	return Model{
		catalog:  cat,
		lang:     lang,
		keys:     DefaultKeyMap(),
		list:     l,
		help:     help.New(),
		platform: catalog.PlatformMac,
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

func (m Model) loadApp(name string) tea.Cmd {
	return func() tea.Msg {
		app, err := m.catalog.Load(m.lang, name)
		return appLoadedMsg{app: app, err: err}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)
		m.viewport = viewport.New(msg.Width, msg.Height-3)
		if m.app != nil {
			m.setSheetContent()
		}
		return m, nil

	case appLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.app = msg.app
			if msg.app.Sheet(m.platform) == nil {
				platforms := msg.app.Platforms()
				m.platform = platforms[0]
			}
			m.state = stateSheet
			m.setSheetContent()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		if m.state == stateList {
			if key.Matches(msg, m.keys.Open) {
				if item, ok := m.list.SelectedItem().(appItem); ok {
					return m, m.loadApp(item.name)
				}
				return m, nil
			}
		} else {
			switch {
			case key.Matches(msg, m.keys.Back):
				m.state = stateList
				m.err = nil
				return m, nil
			case key.Matches(msg, m.keys.Platform):
				if m.app != nil {
					m.platform = nextPlatform(m.app, m.platform)
					m.setSheetContent()
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	if m.state == stateList {
		m.list, cmd = m.list.Update(msg)
	} else {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

// nextPlatform cycles through the platforms the app actually has.
func nextPlatform(app *catalog.App, current catalog.Platform) catalog.Platform {
	platforms := app.Platforms()
	for i, p := range platforms {
		if p == current {
			return platforms[(i+1)%len(platforms)]
		}
	}
	return platforms[0]
}

func (m *Model) setSheetContent() {
	var buf bytes.Buffer
	if err := render.WriteSheetTerm(&buf, m.app.Sheet(m.platform), true); err != nil {
		m.err = err
		return
	}
	m.viewport.SetContent(buf.String())
	m.viewport.GotoTop()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("error: %v\n\n%s", m.err, m.help.View(m.keys))
	}
	if m.state == stateList {
		return m.list.View() + "\n" + m.help.View(m.keys)
	}
	title := titleStyle.Render(fmt.Sprintf("%s — %s", m.app.DisplayNameFull, m.platform))
	return title + "\n" + m.viewport.View() + "\n" + m.help.View(m.keys)
}

// Run starts the interactive browser.
func Run(cat *catalog.Catalog, lang catalog.Language) error {
	m, err := New(cat, lang)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
