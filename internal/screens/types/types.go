package types

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/keizoku/internal/quiz"
	"github.com/abhisek/keizoku/internal/router"
	"github.com/abhisek/keizoku/internal/screen"
	"github.com/abhisek/keizoku/internal/ui/layout"
	"github.com/abhisek/keizoku/internal/ui/theme"
)

// TypesScreen lists the eight continuity types.
type TypesScreen struct {
	profiles []*quiz.TypeProfile
	cursor   int
}

var _ screen.Screen = (*TypesScreen)(nil)
var _ screen.KeyHintProvider = (*TypesScreen)(nil)

// New creates a new TypesScreen.
func New() *TypesScreen {
	return &TypesScreen{profiles: quiz.Profiles()}
}

func (s *TypesScreen) Init() tea.Cmd {
	return nil
}

func (s *TypesScreen) Title() string {
	return "Continuity Types"
}

// KeyHints returns the key binding hints for the footer.
func (s *TypesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TypesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.profiles)-1 {
			s.cursor++
		}
	case "enter":
		return s, router.Push(NewDetail(s.profiles[s.cursor]))
	case "q":
		return s, router.Back()
	}
	return s, nil
}

func (s *TypesScreen) View(width, height int) string {
	nameWidth := 14
	localWidth := 10
	descWidth := width - nameWidth - localWidth - 12
	if descWidth < 10 {
		descWidth = 10
	}

	var lines []string
	lines = append(lines, "")
	for i, p := range s.profiles {
		selected := i == s.cursor

		cursor := lipgloss.NewStyle().Foreground(theme.TypeColor(p.ID)).Render("◆") + " "
		nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
		descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		if selected {
			cursor = "▸ "
			nameStyle = theme.Selected
			descStyle = lipgloss.NewStyle().Foreground(theme.Primary)
		}

		desc := p.Description
		if lipgloss.Width(desc) > descWidth {
			desc = truncate(desc, descWidth)
		}

		lines = append(lines, fmt.Sprintf("  %s%s %s  %s",
			cursor,
			nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, p.Name)),
			lipgloss.NewStyle().Foreground(theme.Secondary).Width(localWidth).Render(p.LocalName),
			descStyle.Render(desc),
		))
	}

	return strings.Join(lines, "\n")
}

// truncate shortens s to at most w display columns, ending in an ellipsis.
func truncate(s string, w int) string {
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > w {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
