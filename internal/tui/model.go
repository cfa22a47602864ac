package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/wonderland-desktop/wonderctl/internal/theme"
)

// Source lists and loads themes.
type Source interface {
	ListThemes() ([]string, error)
	CurrentName() (string, error)
	Load(name string) (theme.Theme, error)
}

// Applier pushes a theme to the compositor.
type Applier interface {
	Apply(t theme.Theme) error
}

// ThemeInfo holds display information about a theme.
type ThemeInfo struct {
	Name  string
	Theme theme.Theme
	Err   error // set when the theme failed to load
}

// Model is the bubbletea model for the theme browser.
type Model struct {
	themes      []ThemeInfo
	current     string
	cursor      int
	filterInput textinput.Model
	filterMode  bool
	showHelp    bool
	width       int
	height      int
	err         error
	status      string
	quitting    bool
	source      Source
	applier     Applier // nil when no compositor is reachable
}

// New creates a new TUI model. applier may be nil.
func New(source Source, applier Applier) Model {
	ti := textinput.New()
	ti.Placeholder = "filter..."
	ti.CharLimit = 50

	return Model{
		filterInput: ti,
		source:      source,
		applier:     applier,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.source == nil {
		return nil
	}
	return m.loadThemes
}

// loadThemes loads every theme; a theme that fails to load is kept with its error.
func (m Model) loadThemes() tea.Msg {
	names, err := m.source.ListThemes()
	if err != nil {
		return errMsg{err}
	}

	current, _ := m.source.CurrentName() // no current theme is fine

	themes := make([]ThemeInfo, 0, len(names))
	for _, name := range names {
		t, err := m.source.Load(name)
		themes = append(themes, ThemeInfo{Name: name, Theme: t, Err: err})
	}

	return themesLoadedMsg{themes: themes, current: current}
}

func (m Model) applyTheme(info ThemeInfo) tea.Cmd {
	applier := m.applier
	return func() tea.Msg {
		return appliedMsg{name: info.Name, err: applier.Apply(info.Theme)}
	}
}

// Message types
type themesLoadedMsg struct {
	themes  []ThemeInfo
	current string
}
type appliedMsg struct {
	name string
	err  error
}
type errMsg struct{ err error }

// visible returns the themes matching the filter.
func (m Model) visible() []ThemeInfo {
	filter := strings.ToLower(strings.TrimSpace(m.filterInput.Value()))
	if filter == "" {
		return m.themes
	}
	var out []ThemeInfo
	for _, t := range m.themes {
		if strings.Contains(strings.ToLower(t.Name), filter) {
			out = append(out, t)
		}
	}
	return out
}

// SelectedTheme returns the currently selected theme name, or empty if none.
func (m Model) SelectedTheme() string {
	v := m.visible()
	if len(v) == 0 || m.cursor >= len(v) {
		return ""
	}
	return v[m.cursor].Name
}
