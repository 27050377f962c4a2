package types

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/keizoku/internal/quiz"
	"github.com/abhisek/keizoku/internal/screen"
	"github.com/abhisek/keizoku/internal/ui/components"
	"github.com/abhisek/keizoku/internal/ui/layout"
)

// DetailScreen shows the full profile of one type.
type DetailScreen struct {
	profile *quiz.TypeProfile
	pager   components.Pager
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// NewDetail creates a detail screen for p.
func NewDetail(p *quiz.TypeProfile) *DetailScreen {
	return &DetailScreen{
		profile: p,
		pager: components.NewPager(func(width int) string {
			return RenderProfile(p, width)
		}),
	}
}

func (d *DetailScreen) Init() tea.Cmd { return nil }
func (d *DetailScreen) Title() string { return d.profile.String() }

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	d.pager, cmd = d.pager.Update(msg)
	return d, cmd
}

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DetailScreen) View(width, height int) string {
	heading := "  " + RenderHeading(d.profile)
	body := d.pager.View(width-2, height-2)
	return heading + "\n\n" + lipgloss.NewStyle().PaddingLeft(2).Render(body)
}
