package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/keizoku/internal/ui/theme"
)

// ScoreBar renders one type's 0-100 score as a labelled meter followed by
// the number.
type ScoreBar struct {
	Label string
	// LabelWidth pads Label so stacked bars line up.
	LabelWidth int
	Score      int
	// Highlight marks the main type.
	Highlight bool
	Width     int
}

const scoreSuffixWidth = 4 // " 100"

func (b ScoreBar) View() string {
	label := lipgloss.NewStyle().Foreground(theme.Text)
	fill := theme.ProgressFilled
	if b.Highlight {
		label = label.Foreground(theme.Accent).Bold(true)
		fill = theme.ProgressMain
	}
	if b.LabelWidth > 0 {
		label = label.Width(b.LabelWidth)
	}
	head := label.Render(b.Label) + "  "

	track := max(b.Width-lipgloss.Width(head)-scoreSuffixWidth, 4)
	score := min(max(b.Score, 0), 100)
	filled := track * score / 100

	return head +
		fill.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", track-filled)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(" %3d", score))
}

// Steps renders quiz progress as one dot per question. Questions are
// answered in order, so everything before current is done.
func Steps(current, total int) string {
	dots := make([]string, total)
	for i := range dots {
		switch {
		case i == current:
			dots[i] = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("◉")
		case i < current:
			dots[i] = lipgloss.NewStyle().Foreground(theme.Primary).Render("●")
		default:
			dots[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Render("○")
		}
	}
	return strings.Join(dots, " ")
}
