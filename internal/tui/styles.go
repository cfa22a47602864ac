package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/wonderland-desktop/wonderctl/internal/theme"
)

var (
	// Colors
	primaryColor   = lipgloss.Color("39")  // cyan
	secondaryColor = lipgloss.Color("243") // gray
	errorColor     = lipgloss.Color("203") // red
	successColor   = lipgloss.Color("78")  // green

	// Borders
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor)

	// Title
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	// List items
	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(primaryColor).
				Bold(true)

	errorItemStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(errorColor)

	// Status indicators
	currentIndicator = lipgloss.NewStyle().
				Foreground(successColor).
				SetString("●")

	otherIndicator = lipgloss.NewStyle().
			Foreground(secondaryColor).
			SetString(" ")

	// Help bar
	helpStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Padding(0, 1)

	// Preview pane
	previewTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor)

	previewInfoStyle = lipgloss.NewStyle().
				Foreground(secondaryColor)

	// Dimmed text
	dimStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)
)

// Relative luminance above which black text reads better than white.
const labelLuminance = 0.179

// Swatch renders a color block labelled with its name and hex value,
// padded to width. The label is black or white, whichever contrasts more.
func Swatch(nc theme.NamedColor, width int) string {
	label := lipgloss.Color("#ffffff")
	if nc.Color.Luminance() > labelLuminance {
		label = lipgloss.Color("#000000")
	}
	text := fmt.Sprintf(" %-14s %s", nc.Name, nc.Color.Hex())
	return lipgloss.NewStyle().
		Background(nc.Color.Lipgloss()).
		Foreground(label).
		Width(width).
		Render(text)
}
