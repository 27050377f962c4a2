package result

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/keizoku/internal/diagnosis"
	"github.com/abhisek/keizoku/internal/quiz"
	"github.com/abhisek/keizoku/internal/router"
	"github.com/abhisek/keizoku/internal/screen"
	"github.com/abhisek/keizoku/internal/screens/types"
	"github.com/abhisek/keizoku/internal/ui/components"
	"github.com/abhisek/keizoku/internal/ui/layout"
	"github.com/abhisek/keizoku/internal/ui/theme"
)

// ResultScreen displays a classification result.
type ResultScreen struct {
	result  *diagnosis.Result
	restart func() screen.Screen
	pager   components.Pager
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)
var _ screen.StatusProvider = (*ResultScreen)(nil)

// New creates a ResultScreen for res. restart builds a fresh diagnosis
// screen when the user asks to take the quiz again; it may be nil.
func New(res *diagnosis.Result, restart func() screen.Screen) *ResultScreen {
	return &ResultScreen{
		result:  res,
		restart: restart,
		pager: components.NewPager(func(width int) string {
			return Render(res, width)
		}),
	}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Your Result"
}

// Status shows where the result came from.
func (s *ResultScreen) Status() string {
	if s.result.Degraded() {
		return "local scoring"
	}
	return "AI analysis"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
	}
	if s.restart != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Retake"})
	}
	return append(hints, layout.KeyHint{Key: "Enter", Description: "Home"})
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "r", "R":
			if s.restart == nil {
				return s, nil
			}
			return s, router.Replace(s.restart())
		case "enter", "q":
			return s, router.Home()
		}
	}

	var cmd tea.Cmd
	s.pager, cmd = s.pager.Update(msg)
	return s, cmd
}

func (s *ResultScreen) View(width, height int) string {
	body := s.pager.View(width-4, height)
	return lipgloss.NewStyle().PaddingLeft(2).Render(body)
}

// Render lays out the whole result for a column of the given width: main
// type, narrative or fallback notice, score bars and the type profile.
func Render(res *diagnosis.Result, width int) string {
	profile := res.Profile()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Your continuity type"))
	b.WriteString("\n")
	b.WriteString(types.RenderHeading(profile))
	b.WriteString("\n\n")

	tw := min(width, 76)
	switch res.Source {
	case diagnosis.SourceFallback:
		b.WriteString(theme.Notice.Width(tw).Render(diagnosis.FallbackNotice))
		b.WriteString("\n")
	case diagnosis.SourceRemoteFallbackScores:
		b.WriteString(theme.Notice.Width(tw).Render(
			"The analysis did not include scores, so the scores below are estimated from your answers."))
		b.WriteString("\n")
	}

	if res.Source != diagnosis.SourceFallback && strings.TrimSpace(res.Narrative) != "" {
		b.WriteString("\n")
		b.WriteString(theme.Section.Render("Analysis"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(tw).Foreground(theme.Text).Render(strings.TrimSpace(res.Narrative)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Section.Render("Scores"))
	b.WriteString("\n")
	b.WriteString(renderScores(res, tw))

	b.WriteString("\n")
	b.WriteString(types.RenderProfile(profile, width))
	return b.String()
}

func renderScores(res *diagnosis.Result, width int) string {
	var b strings.Builder
	for _, ts := range res.Ranked() {
		p := quiz.Profile(ts.Type)
		bar := components.ScoreBar{
			Label:      p.Name,
			LabelWidth: 12,
			Score:      ts.Score,
			Highlight:  ts.Type == res.MainType,
			Width:      width - 1,
		}
		b.WriteString(bar.View())
		b.WriteString("\n")
	}
	return b.String()
}
