package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/keizoku/internal/ui/theme"
)

const (
	framePadding    = 6 // double border plus two cells of padding per side
	maxContentWidth = 72
	minContentWidth = 20
)

// ContentWidth is the width framed sections are laid out at inside a frame
// frameWidth cells wide, so stacked boxes share one edge.
func ContentWidth(frameWidth int) int {
	return max(minContentWidth, min(frameWidth-framePadding, maxContentWidth))
}

// Frame centres content inside a double border filling width x height.
func Frame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card boxes content at content width cw.
func Card(content string, cw int) string {
	return theme.Card.Width(cw - 2).Render(content)
}

type buttonState int

const (
	buttonIdle buttonState = iota
	buttonSelected
	buttonDisabled
)

func button(label string, state buttonState, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)
	switch state {
	case buttonSelected:
		return style.
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Primary).
			BorderForeground(theme.Primary).
			Render("▸ " + label)
	case buttonDisabled:
		return style.Faint(true).Render(label)
	default:
		return style.Foreground(theme.Text).Render(label)
	}
}
