package session

import (
	"github.com/abhisek/keizoku/internal/diagnosis"
	"github.com/abhisek/keizoku/internal/quiz"
)

// State tracks the progress of one quiz run. It is a plain value: every
// operation takes a State and returns the next one, so a host can keep it
// wherever it likes (a TUI model, a session table entry).
type State struct {
	// Responses holds one rating per question; zero means unanswered.
	Responses quiz.Responses

	// Current is the index of the next question to answer. It equals
	// quiz.NumQuestions once every question has a rating.
	Current int

	// Result is set exactly once, after the classifier runs on a
	// complete response set.
	Result *diagnosis.Result
}

// New returns the initial state: no ratings, first question, no result.
func New() State {
	return State{}
}

// Reset discards all accumulated ratings and any result.
func Reset() State {
	return New()
}

// IsComplete reports whether every question has a recorded rating.
func (s State) IsComplete() bool {
	return s.Current == quiz.NumQuestions && s.Responses.Complete()
}

// CurrentQuestion returns the question to show next. ok is false once all
// questions are answered.
func (s State) CurrentQuestion() (q quiz.Question, ok bool) {
	return quiz.QuestionAt(s.Current)
}

// Progress returns answered and total question counts for progress bars.
func (s State) Progress() (answered, total int) {
	return s.Current, quiz.NumQuestions
}

// Ratings returns the recorded ratings as a slice, in question order.
func (s State) Ratings() []int {
	out := make([]int, quiz.NumQuestions)
	copy(out, s.Responses[:])
	return out
}
