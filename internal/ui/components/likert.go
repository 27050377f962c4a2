package components

import (
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/keizoku/internal/quiz"
	"github.com/abhisek/keizoku/internal/ui/theme"
)

// Likert is a five-point agreement selector. The cursor moves with ↑↓ and
// Enter submits; a digit key submits that rating directly.
type Likert struct {
	Statement string
	Selected  int // rating under the cursor, 1..5
	Submitted bool
	Chosen    int // submitted rating, 0 until Submitted
}

// NewLikert creates a selector with the cursor on the neutral rating.
func NewLikert(statement string) Likert {
	return Likert{
		Statement: statement,
		Selected:  (quiz.MinRating + quiz.MaxRating) / 2,
	}
}

// Init returns nil.
func (l Likert) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (l Likert) Update(msg tea.Msg) (Likert, tea.Cmd) {
	if l.Submitted {
		return l, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if l.Selected > quiz.MinRating {
			l.Selected--
		}
	case "down", "j":
		if l.Selected < quiz.MaxRating {
			l.Selected++
		}
	case "enter":
		l.Submitted = true
		l.Chosen = l.Selected
	default:
		if n, err := strconv.Atoi(key); err == nil && quiz.ValidRating(n) {
			l.Selected = n
			l.Submitted = true
			l.Chosen = n
		}
	}

	return l, nil
}

// View renders the statement and the five options.
func (l Likert) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(l.Statement) + "\n\n"

	for r := quiz.MinRating; r <= quiz.MaxRating; r++ {
		prefix := "  "
		if r == l.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d  %s", prefix, r, quiz.RatingLabel(r))

		switch {
		case l.Submitted && r == l.Chosen:
			s += theme.Highlight.Render(line) + "\n"
		case l.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case r == l.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}
