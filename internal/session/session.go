package session

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/abhisek/keizoku/internal/diagnosis"
	"github.com/abhisek/keizoku/internal/quiz"
)

// ErrInvalidInput is returned for a malformed rating or an out-of-sequence
// question index. The state passed in is returned unchanged.
var ErrInvalidInput = errors.New("invalid input")

// Classifier turns a complete response set into a result.
type Classifier interface {
	Classify(ctx context.Context, r quiz.Responses) (*diagnosis.Result, error)
}

// Record stores rating for the question at index and advances Current.
// Questions must be answered in order, so index has to equal st.Current.
func Record(st State, index, rating int) (State, error) {
	if st.Result != nil {
		return st, fmt.Errorf("record question %d: already classified: %w", index, ErrInvalidInput)
	}
	if index < 0 || index >= quiz.NumQuestions {
		return st, fmt.Errorf("question index %d out of range [0,%d): %w", index, quiz.NumQuestions, ErrInvalidInput)
	}
	if index != st.Current {
		return st, fmt.Errorf("question index %d, expected %d: %w", index, st.Current, ErrInvalidInput)
	}
	if !quiz.ValidRating(rating) {
		return st, fmt.Errorf("rating %d not in [%d,%d]: %w", rating, quiz.MinRating, quiz.MaxRating, ErrInvalidInput)
	}

	next := st
	next.Responses[index] = rating
	next.Current++
	return next, nil
}

// Complete runs c once on a complete state and stores the result. A state
// that already carries a result is returned as is.
func Complete(ctx context.Context, st State, c Classifier) (State, error) {
	if st.Result != nil {
		return st, nil
	}
	if !st.IsComplete() {
		return st, fmt.Errorf("complete session at question %d: %w", st.Current, diagnosis.ErrPreconditionViolation)
	}

	res, err := c.Classify(ctx, st.Responses)
	if err != nil {
		return st, err
	}

	next := st
	next.Result = res
	return next, nil
}

// ParseRating converts user-entered text such as "4" into a rating.
// Fractional or non-numeric input is rejected.
func ParseRating(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("rating %q is not an integer: %w", s, ErrInvalidInput)
	}
	if !quiz.ValidRating(n) {
		return 0, fmt.Errorf("rating %d not in [%d,%d]: %w", n, quiz.MinRating, quiz.MaxRating, ErrInvalidInput)
	}
	return n, nil
}

// RatingFromFloat converts a decoded JSON number into a rating.
func RatingFromFloat(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("rating %v is not an integer: %w", f, ErrInvalidInput)
	}
	if f < quiz.MinRating || f > quiz.MaxRating {
		return 0, fmt.Errorf("rating %v not in [%d,%d]: %w", f, quiz.MinRating, quiz.MaxRating, ErrInvalidInput)
	}
	return int(f), nil
}
