package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case themesLoadedMsg:
		m.themes = msg.themes
		m.current = msg.current
		m.cursor = 0
		for i, t := range m.themes {
			if t.Name == m.current {
				m.cursor = i
				break
			}
		}
		return m, nil

	case appliedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("apply %s: %v", msg.name, msg.err)
		} else {
			m.status = "applied " + msg.name
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.filterMode {
			return m.updateFilter(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filterMode = false
		m.filterInput.SetValue("")
		m.filterInput.Blur()
		m.cursor = 0
		return m, nil
	case "enter":
		m.filterMode = false
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.cursor = 0
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.showHelp = true

	case "j", "down":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "/":
		m.filterMode = true
		m.filterInput.Focus()
		return m, textinput.Blink

	case "enter":
		v := m.visible()
		if len(v) == 0 || m.cursor >= len(v) {
			return m, nil
		}
		info := v[m.cursor]
		switch {
		case info.Err != nil:
			m.status = fmt.Sprintf("%s: %v", info.Name, info.Err)
		case m.applier == nil:
			m.status = "compositor not connected"
		default:
			m.status = "applying " + info.Name + "..."
			return m, m.applyTheme(info)
		}
	}

	return m, nil
}
