package types

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/keizoku/internal/quiz"
	"github.com/abhisek/keizoku/internal/ui/theme"
)

// maxTextWidth caps wrapped paragraphs so long lines stay readable.
const maxTextWidth = 76

// RenderProfile renders every descriptive section of p for a column of the
// given width.
func RenderProfile(p *quiz.TypeProfile, width int) string {
	if p == nil {
		return ""
	}
	tw := textWidth(width)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(tw).
		Foreground(theme.Text).
		Render(p.Description))
	b.WriteString("\n")

	writeList(&b, "Strengths", p.Strengths, tw)
	writeList(&b, "Recommended roles", p.Roles, tw)
	writeList(&b, "Growth points", p.GrowthPoints, tw)
	writeParagraph(&b, "Four Pillars (四柱推命)", p.FourPillars, tw)
	writeParagraph(&b, "Five Elements (五行)", p.FiveElements, tw)

	return b.String()
}

// RenderHeading renders the type name with its local label underneath.
func RenderHeading(p *quiz.TypeProfile) string {
	return theme.TypeName(p.ID, p.Name) + "  " +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.LocalName)
}

func textWidth(width int) int {
	tw := width - 4
	if tw > maxTextWidth {
		tw = maxTextWidth
	}
	if tw < 20 {
		tw = 20
	}
	return tw
}

func writeList(b *strings.Builder, title string, items []string, tw int) {
	b.WriteString("\n")
	b.WriteString(theme.Section.Render(title))
	b.WriteString("\n")
	item := lipgloss.NewStyle().Foreground(theme.Text).Width(tw - 2)
	for _, it := range items {
		lines := strings.Split(item.Render(it), "\n")
		for i, l := range lines {
			prefix := "  "
			if i == 0 {
				prefix = "• "
			}
			b.WriteString(prefix + l + "\n")
		}
	}
}

func writeParagraph(b *strings.Builder, title, text string, tw int) {
	if text == "" {
		return
	}
	b.WriteString("\n")
	b.WriteString(theme.Section.Render(title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(tw).
		Foreground(theme.TextDim).
		Render(text))
	b.WriteString("\n")
}
