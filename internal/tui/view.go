package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err)
	}

	if m.showHelp {
		return m.viewHelp()
	}

	listWidth := m.width/3 - 2
	if listWidth < 20 {
		listWidth = 20
	}
	previewWidth := m.width - listWidth - 4
	if previewWidth < 30 {
		previewWidth = 30
	}
	contentHeight := m.height - 4 // borders and help bar

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewThemeList(listWidth, contentHeight),
		m.viewPreview(previewWidth, contentHeight),
	)

	title := titleStyle.Render("wonderctl")
	return lipgloss.JoinVertical(lipgloss.Left, title, content, m.viewHelpBar())
}

func (m Model) viewThemeList(width, height int) string {
	var b strings.Builder

	b.WriteString(dimStyle.Render("Themes") + "\n")
	b.WriteString(dimStyle.Render(strings.Repeat("─", max(width-4, 1))) + "\n")

	v := m.visible()
	if len(v) == 0 {
		b.WriteString(dimStyle.Render("  No themes"))
	}

	for i, t := range v {
		indicator := otherIndicator.String()
		if t.Name == m.current {
			indicator = currentIndicator.String()
		}
		line := indicator + " " + t.Name

		switch {
		case i == m.cursor:
			b.WriteString(selectedItemStyle.Render("> "+line) + "\n")
		case t.Err != nil:
			b.WriteString(errorItemStyle.Render(line) + "\n")
		default:
			b.WriteString(itemStyle.Render(line) + "\n")
		}
	}

	return borderStyle.Width(width).Height(height).Render(b.String())
}

func (m Model) viewPreview(width, height int) string {
	var b strings.Builder

	v := m.visible()
	if len(v) == 0 || m.cursor >= len(v) {
		b.WriteString(dimStyle.Render("No theme selected"))
		return borderStyle.Width(width).Height(height).Render(b.String())
	}

	info := v[m.cursor]
	b.WriteString(previewTitleStyle.Render(info.Name) + "\n")

	if info.Err != nil {
		b.WriteString(errorItemStyle.Render(info.Err.Error()))
		return borderStyle.Width(width).Height(height).Render(b.String())
	}

	variant := "light"
	if info.Theme.IsDark() {
		variant = "dark"
	}
	b.WriteString(previewInfoStyle.Render(variant) + "\n\n")

	for _, nc := range info.Theme.Palette() {
		b.WriteString(Swatch(nc, width-4) + "\n")
	}

	return borderStyle.Width(width).Height(height).Render(b.String())
}

func (m Model) viewHelpBar() string {
	if m.filterMode {
		return helpStyle.Render("Filter: " + m.filterInput.View())
	}
	bar := "[enter] apply  [/] filter  [?] help  [q] quit"
	if m.status != "" {
		bar = m.status + "  " + bar
	}
	return helpStyle.Render(bar)
}

func (m Model) viewHelp() string {
	help := `
  wonderctl - Theme Browser

  Navigation:
    ↑/k       Move up
    ↓/j       Move down
    enter     Apply theme to the compositor
    /         Filter themes
    ?         Toggle help
    q/esc     Quit

  Press any key to close this help.
`
	style := borderStyle.Width(50).Padding(1, 2)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, style.Render(help))
}
