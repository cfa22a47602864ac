package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/wonderland-desktop/wonderctl/internal/color"
	"github.com/wonderland-desktop/wonderctl/internal/theme"
)

type fakeSource struct {
	names   []string
	current string
}

func (f *fakeSource) ListThemes() ([]string, error) { return f.names, nil }
func (f *fakeSource) CurrentName() (string, error)  { return f.current, nil }
func (f *fakeSource) Load(name string) (theme.Theme, error) {
	if name == "broken" {
		return theme.Theme{}, &theme.MissingColorError{Name: "foreground"}
	}
	t := theme.Derive(color.MustHex("#cdd6f4"), color.MustHex("#1e1e2e"))
	t.Name = name
	return t, nil
}

type fakeApplier struct {
	applied []string
	err     error
}

func (f *fakeApplier) Apply(t theme.Theme) error {
	f.applied = append(f.applied, t.Name)
	return f.err
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func withThemes(m Model, names ...string) Model {
	for _, n := range names {
		m.themes = append(m.themes, ThemeInfo{Name: n})
	}
	return m
}

func TestModel_Navigation(t *testing.T) {
	m := withThemes(New(nil, nil), "theme1", "theme2", "theme3")

	// Initial cursor at 0
	if m.cursor != 0 {
		t.Errorf("expected cursor 0, got %d", m.cursor)
	}

	updated, _ := m.Update(key("j"))
	m = updated.(Model)
	if m.cursor != 1 {
		t.Errorf("expected cursor 1 after j, got %d", m.cursor)
	}

	updated, _ = m.Update(key("j"))
	m = updated.(Model)
	updated, _ = m.Update(key("j"))
	m = updated.(Model)
	if m.cursor != 2 {
		t.Errorf("expected cursor 2 at boundary, got %d", m.cursor)
	}

	updated, _ = m.Update(key("k"))
	m = updated.(Model)
	if m.cursor != 1 {
		t.Errorf("expected cursor 1 after k, got %d", m.cursor)
	}
}

func TestModel_SelectedTheme(t *testing.T) {
	m := withThemes(New(nil, nil), "first", "second")
	m.cursor = 1

	if got := m.SelectedTheme(); got != "second" {
		t.Errorf("expected 'second', got %q", got)
	}
}

func TestModel_SelectedTheme_Empty(t *testing.T) {
	m := New(nil, nil)
	if got := m.SelectedTheme(); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m := New(nil, nil)

	updated, _ := m.Update(key("?"))
	m = updated.(Model)
	if !m.showHelp {
		t.Error("expected showHelp true after ?")
	}

	updated, _ = m.Update(key("x"))
	m = updated.(Model)
	if m.showHelp {
		t.Error("expected any key to close help")
	}
}

func TestModel_Filter(t *testing.T) {
	m := withThemes(New(nil, nil), "catppuccin", "nord", "tokyo-night")

	updated, _ := m.Update(key("/"))
	m = updated.(Model)
	if !m.filterMode {
		t.Fatal("expected filter mode after /")
	}

	for _, r := range "NO" {
		updated, _ = m.Update(key(string(r)))
		m = updated.(Model)
	}

	v := m.visible()
	if len(v) != 1 || v[0].Name != "nord" {
		t.Errorf("visible = %+v, want only nord", v)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if m.filterMode || len(m.visible()) != 3 {
		t.Error("esc should clear the filter")
	}
}

func TestModel_LoadThemes(t *testing.T) {
	m := New(&fakeSource{names: []string{"broken", "nord", "rose-pine"}, current: "rose-pine"}, nil)

	msg := m.Init()()
	updated, _ := m.Update(msg)
	m = updated.(Model)

	if len(m.themes) != 3 {
		t.Fatalf("got %d themes, want 3", len(m.themes))
	}
	if m.themes[0].Err == nil {
		t.Error("broken theme should carry its load error")
	}
	if m.SelectedTheme() != "rose-pine" {
		t.Errorf("cursor should start on the current theme, got %q", m.SelectedTheme())
	}
}

func TestModel_ApplyTheme(t *testing.T) {
	applier := &fakeApplier{}
	m := New(nil, applier)
	m.themes = []ThemeInfo{{Name: "nord", Theme: theme.Theme{Name: "nord"}}}

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("expected apply command")
	}

	updated, _ = m.Update(cmd())
	m = updated.(Model)
	if len(applier.applied) != 1 || applier.applied[0] != "nord" {
		t.Errorf("applied = %v", applier.applied)
	}
	if m.status != "applied nord" {
		t.Errorf("status = %q", m.status)
	}
}

func TestModel_ApplyError(t *testing.T) {
	m := New(nil, &fakeApplier{err: errors.New("socket gone")})
	m.themes = []ThemeInfo{{Name: "nord", Theme: theme.Theme{Name: "nord"}}}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	updated, _ := m.Update(cmd())
	m = updated.(Model)

	if !strings.Contains(m.status, "socket gone") {
		t.Errorf("status = %q", m.status)
	}
}

func TestModel_ApplyWithoutCompositor(t *testing.T) {
	m := withThemes(New(nil, nil), "nord")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if cmd != nil {
		t.Error("expected no command without an applier")
	}
	if m.status != "compositor not connected" {
		t.Errorf("status = %q", m.status)
	}
}

func TestModel_Quit(t *testing.T) {
	m := New(nil, nil)

	updated, cmd := m.Update(key("q"))
	m = updated.(Model)
	if !m.quitting {
		t.Error("expected quitting true")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
	if m.View() != "" {
		t.Error("expected empty view after quit")
	}
}

func TestView_Preview(t *testing.T) {
	m := New(&fakeSource{names: []string{"nord"}, current: "nord"}, nil)
	updated, _ := m.Update(m.Init()())
	updated, _ = updated.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	view := updated.View()
	for _, want := range []string{"wonderctl", "nord", "dark", "#cdd6f4"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
