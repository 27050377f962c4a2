// Package welcome is the splash screen: the eight continuity types light
// up one by one around 継続, then the banner appears and any key moves on
// to home.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/keizoku/internal/quiz"
	"github.com/abhisek/keizoku/internal/router"
	"github.com/abhisek/keizoku/internal/screen"
	"github.com/abhisek/keizoku/internal/ui/theme"
)

const (
	tickInterval = 150 * time.Millisecond

	// Ticks a type name stays on screen once the ring is complete.
	nameTicks = 6
)

const tagline = "Discover your continuity type"

type tickMsg time.Time

// WelcomeScreen animates until a key is pressed. It never leaves on its own.
type WelcomeScreen struct {
	next  func() screen.Screen
	ticks int
	done  bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with next() on the
// first key press.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return tick() }

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// lit is how many ring marks are on.
func (w *WelcomeScreen) lit() int {
	return min(w.ticks, quiz.NumTypes)
}

func (w *WelcomeScreen) ringComplete() bool {
	return w.ticks >= quiz.NumTypes
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.done {
			return w, nil
		}
		w.ticks++
		return w, tick()
	case tea.KeyPressMsg:
		if w.done {
			return w, nil
		}
		w.done = true
		return w, router.Replace(w.next())
	}
	return w, nil
}

// ring draws eight marks around the kanji, clockwise from the top left,
// the first n of them filled.
func ring(n int) string {
	marks := make([]string, quiz.NumTypes)
	for i := range marks {
		marks[i] = "◇"
		if i < n {
			marks[i] = "◆"
		}
	}
	// Clockwise: top row left to right, right side, bottom row right to
	// left, left side.
	return strings.Join([]string{
		"   " + marks[0] + "    " + marks[1] + "    " + marks[2],
		"",
		marks[7] + "     継 続     " + marks[3],
		"",
		"   " + marks[6] + "    " + marks[5] + "    " + marks[4],
	}, "\n")
}

// currentName is the type name shown under the ring: the type whose mark
// just lit, then a slow cycle through all eight.
func (w *WelcomeScreen) currentName() string {
	if w.ticks == 0 {
		return ""
	}
	i := w.lit() - 1
	if w.ringComplete() {
		i = (w.ticks - quiz.NumTypes) / nameTicks % quiz.NumTypes
	}
	return quiz.Profile(quiz.TypeOrder[i]).String()
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(ring(w.lit())),
		"",
		lipgloss.NewStyle().Foreground(theme.Accent).Render(w.currentName()),
	}
	if w.ringComplete() {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(tagline),
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}
	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
