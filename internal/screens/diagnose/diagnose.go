package diagnose

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/keizoku/internal/diagnosis"
	"github.com/abhisek/keizoku/internal/router"
	"github.com/abhisek/keizoku/internal/screen"
	"github.com/abhisek/keizoku/internal/screens/result"
	sess "github.com/abhisek/keizoku/internal/session"
	"github.com/abhisek/keizoku/internal/ui/components"
	"github.com/abhisek/keizoku/internal/ui/layout"
	"github.com/abhisek/keizoku/internal/ui/theme"
)

// Phase is the screen's current mode.
type Phase int

const (
	PhaseAnswering Phase = iota
	PhaseAnalysing
	PhaseFailed
)

// DiagnoseScreen walks the user through the questionnaire and runs the
// classifier once every question has a rating.
type DiagnoseScreen struct {
	classifier  sess.Classifier
	logger      *zap.Logger
	sessionID   string
	state       sess.State
	phase       Phase
	likert      components.Likert
	spinner     spinner.Model
	confirmQuit bool
	errMsg      string
}

var _ screen.Screen = (*DiagnoseScreen)(nil)
var _ screen.KeyHintProvider = (*DiagnoseScreen)(nil)
var _ screen.StatusProvider = (*DiagnoseScreen)(nil)
var _ screen.EscapeHandler = (*DiagnoseScreen)(nil)

// New creates a DiagnoseScreen starting at the first question.
func New(classifier sess.Classifier, logger *zap.Logger) *DiagnoseScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &DiagnoseScreen{
		classifier: classifier,
		logger:     logger,
		sessionID:  uuid.NewString(),
		state:      sess.New(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
	}
	s.nextQuestion()
	return s
}

func (s *DiagnoseScreen) Init() tea.Cmd {
	return nil
}

func (s *DiagnoseScreen) Title() string {
	if s.phase == PhaseAnswering {
		return "Diagnosis"
	}
	return "Analysing"
}

// Status shows question progress in the header.
func (s *DiagnoseScreen) Status() string {
	answered, total := s.state.Progress()
	return fmt.Sprintf("%d/%d answered", answered, total)
}

// HandlesEscape keeps Esc from popping the screen mid-quiz; it opens the
// quit confirmation instead.
func (s *DiagnoseScreen) HandlesEscape() bool {
	return s.phase == PhaseAnswering
}

// Phase returns the current phase.
func (s *DiagnoseScreen) Phase() Phase {
	return s.phase
}

// State returns the current quiz state.
func (s *DiagnoseScreen) State() sess.State {
	return s.state
}

func (s *DiagnoseScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit diagnosis"},
			{Key: "N", Description: "Keep going"},
		}
	case s.phase == PhaseAnalysing:
		return nil
	case s.phase == PhaseFailed:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-5", Description: "Answer"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *DiagnoseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case classifiedMsg:
		return s.handleClassified(msg)

	case spinner.TickMsg:
		if s.phase != PhaseAnalysing {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *DiagnoseScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			return s, router.Back()
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch s.phase {
	case PhaseAnalysing:
		return s, nil
	case PhaseFailed:
		if key == "r" || key == "R" {
			return s, s.startClassification()
		}
		return s, nil
	}

	if key == "esc" {
		s.confirmQuit = true
		return s, nil
	}

	s.likert, _ = s.likert.Update(msg)
	if !s.likert.Submitted {
		return s, nil
	}

	next, err := sess.Record(s.state, s.state.Current, s.likert.Chosen)
	if err != nil {
		// Only reachable if the selector produced an invalid rating.
		s.logger.Error("record rating", zap.Error(err))
		s.nextQuestion()
		return s, nil
	}
	s.state = next

	if s.state.IsComplete() {
		return s, s.startClassification()
	}
	s.nextQuestion()
	return s, nil
}

// nextQuestion resets the selector for the current question.
func (s *DiagnoseScreen) nextQuestion() {
	q, ok := s.state.CurrentQuestion()
	if !ok {
		return
	}
	s.likert = components.NewLikert(q.Text)
}

func (s *DiagnoseScreen) startClassification() tea.Cmd {
	s.phase = PhaseAnalysing
	s.errMsg = ""
	return tea.Batch(s.spinner.Tick, s.classify())
}

// classify runs the classifier off the UI goroutine.
func (s *DiagnoseScreen) classify() tea.Cmd {
	st := s.state
	c := s.classifier
	id := s.sessionID
	return func() tea.Msg {
		ctx := diagnosis.WithSessionID(context.Background(), id)
		next, err := sess.Complete(ctx, st, c)
		return classifiedMsg{State: next, Err: err}
	}
}

func (s *DiagnoseScreen) handleClassified(msg classifiedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.logger.Error("classification failed", zap.String("session_id", s.sessionID), zap.Error(msg.Err))
		s.phase = PhaseFailed
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.state = msg.State
	res := s.state.Result
	s.logger.Info("classification complete",
		zap.String("session_id", s.sessionID),
		zap.String("main_type", string(res.MainType)),
		zap.String("source", string(res.Source)),
	)

	classifier, logger := s.classifier, s.logger
	restart := func() screen.Screen { return New(classifier, logger) }
	next := result.New(res, restart)
	return s, router.Replace(next)
}

func (s *DiagnoseScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width, height)
	}
	switch s.phase {
	case PhaseAnalysing:
		return s.renderAnalysing(width, height)
	case PhaseFailed:
		return renderError(width, height, s.errMsg)
	}
	return s.renderQuestion(width, height)
}
