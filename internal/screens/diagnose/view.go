package diagnose

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/keizoku/internal/ui/components"
	"github.com/abhisek/keizoku/internal/ui/theme"
)

func (s *DiagnoseScreen) renderQuestion(width, height int) string {
	cw := components.ContentWidth(width)
	_, total := s.state.Progress()
	progress := theme.Body.Render(fmt.Sprintf("Question %d of %d   ", s.state.Current+1, total)) +
		components.Steps(s.state.Current, total)

	statement := lipgloss.NewStyle().Width(cw - 6).Render(s.likert.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		progress,
		"",
		components.Card(statement, cw),
		"",
		theme.Hint.Render("How much does this statement sound like you?"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *DiagnoseScreen) renderAnalysing(width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		s.spinner.View()+" "+theme.Body.Render("Analysing your answers..."),
		"",
		theme.Hint.Render("This can take a few seconds."),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderQuitConfirm(width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.Highlight.Render("Quit the diagnosis?"),
		"",
		theme.Body.Render("Your answers so far will be discarded."),
		"",
		theme.Hint.Render("Y to quit, N to keep going"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Notice.Render(content))
}

func renderError(width, height int, msg string) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Could not classify your answers"),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Width(min(width-8, 60)).Render(msg),
		"",
		theme.Hint.Render("press R to retry"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
