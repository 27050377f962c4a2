package history

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/keizoku/internal/quiz"
	"github.com/abhisek/keizoku/internal/router"
	"github.com/abhisek/keizoku/internal/screen"
	"github.com/abhisek/keizoku/internal/store"
	"github.com/abhisek/keizoku/internal/ui/layout"
	"github.com/abhisek/keizoku/internal/ui/theme"
)

const historyLimit = 50

// ClassificationLog reads stored classifications. store.EventRepo satisfies it.
type ClassificationLog interface {
	QueryClassifications(ctx context.Context, opts store.QueryOpts) ([]store.ClassificationEvent, error)
}

type loadedMsg struct {
	events []store.ClassificationEvent
	err    error
}

// HistoryScreen lists past diagnoses, newest first. Enter folds a row open
// to show its answers and strongest types.
type HistoryScreen struct {
	log      ClassificationLog
	events   []store.ClassificationEvent
	selected int
	open     map[int]bool
	loaded   bool
	err      error
}

var (
	_ screen.Screen          = (*HistoryScreen)(nil)
	_ screen.KeyHintProvider = (*HistoryScreen)(nil)
)

func New(log ClassificationLog) *HistoryScreen {
	return &HistoryScreen{log: log, open: map[int]bool{}}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return s.load
}

func (s *HistoryScreen) load() tea.Msg {
	events, err := s.log.QueryClassifications(context.Background(), store.QueryOpts{Limit: historyLimit})
	return loadedMsg{events: events, err: err}
}

func (s *HistoryScreen) Title() string { return "History" }

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Details"},
		{Key: "r", Description: "Reload"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loaded = true
		s.err = msg.err
		s.events = msg.events
		s.selected = min(s.selected, max(len(s.events)-1, 0))
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return s, router.Back()
		case "r":
			s.loaded, s.err, s.open = false, nil, map[int]bool{}
			return s, s.load
		case "up", "k":
			s.selected = max(s.selected-1, 0)
		case "down", "j":
			s.selected = max(min(s.selected+1, len(s.events)-1), 0)
		case "home", "g":
			s.selected = 0
		case "end", "G":
			s.selected = max(len(s.events)-1, 0)
		case "enter", "space":
			s.open[s.selected] = !s.open[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	centred := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	switch {
	case s.err != nil:
		return centred.Foreground(theme.Error).Render("\n\nCould not read history: " + s.err.Error())
	case !s.loaded:
		return centred.Foreground(theme.TextDim).Render("\n\nLoading history...")
	case len(s.events) == 0:
		return centred.Foreground(theme.TextDim).Italic(true).Render("\n\nNo results yet. Take the diagnosis first!")
	}

	rows := make([][]string, len(s.events))
	for i, ev := range s.events {
		rows[i] = s.row(i, ev)
	}

	// Scroll just far enough that the selected row and its details fit.
	avail := max(height-1, 1)
	first := 0
	for first < s.selected && linesBetween(rows, first, s.selected) > avail {
		first++
	}

	var b strings.Builder
	b.WriteString("\n")
	used := 0
	for i := first; i < len(rows) && used+len(rows[i]) <= avail; i++ {
		for _, line := range rows[i] {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
			b.WriteString("\n")
		}
		used += len(rows[i])
	}
	return b.String()
}

func linesBetween(rows [][]string, from, to int) int {
	n := 0
	for _, r := range rows[from : to+1] {
		n += len(r)
	}
	return n
}

// row renders one event plus, when folded open, its detail lines.
func (s *HistoryScreen) row(i int, ev store.ClassificationEvent) []string {
	style := theme.Body
	if i == s.selected {
		style = theme.Selected
	}
	mark := lipgloss.NewStyle().Foreground(theme.TypeColor(quiz.TypeID(ev.MainType))).Render("◆")
	line := mark + " " + style.Render(fmt.Sprintf("%s  %-24s  %-13s",
		ev.Timestamp.Local().Format("Jan 02, 2006 15:04"),
		typeLabel(ev.MainType),
		sourceLabel(ev.Source),
	))
	out := []string{line}
	if s.open[i] {
		dim := lipgloss.NewStyle().Foreground(theme.TextDim)
		for _, d := range detailLines(ev) {
			out = append(out, dim.Render(d))
		}
	}
	return out
}

func typeLabel(id string) string {
	if p := quiz.Profile(quiz.TypeID(id)); p != nil {
		return p.String()
	}
	return id
}

func typeName(id string) string {
	if p := quiz.Profile(quiz.TypeID(id)); p != nil {
		return p.Name
	}
	return id
}

func sourceLabel(source string) string {
	if source == "remote" {
		return "AI analysis"
	}
	return "local scoring"
}

// detailLines lists the answers, the three strongest types and any
// degradation note of ev.
func detailLines(ev store.ClassificationEvent) []string {
	answers := make([]string, len(ev.Ratings))
	for i, r := range ev.Ratings {
		answers[i] = fmt.Sprint(r)
	}
	lines := []string{"    Answers: " + strings.Join(answers, " ")}

	type ranked struct {
		name  string
		score int
	}
	top := make([]ranked, 0, len(ev.Scores))
	for id, sc := range ev.Scores {
		top = append(top, ranked{typeName(id), sc})
	}
	slices.SortFunc(top, func(a, b ranked) int {
		return cmp.Or(cmp.Compare(b.score, a.score), cmp.Compare(a.name, b.name))
	})
	if len(top) > 0 {
		parts := make([]string, 0, 3)
		for _, r := range top[:min(len(top), 3)] {
			parts = append(parts, fmt.Sprintf("%s %d", r.name, r.score))
		}
		lines = append(lines, "    Top scores: "+strings.Join(parts, ", "))
	}

	if ev.Degradation != "" {
		lines = append(lines, "    Note: "+ev.Degradation)
	}
	return lines
}
