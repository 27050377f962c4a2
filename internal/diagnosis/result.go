package diagnosis

import (
	"errors"
	"fmt"

	"github.com/abhisek/keizoku/internal/quiz"
)

// FallbackNotice replaces the narrative when the remote classifier could
// not be used.
const FallbackNotice = "Automated narrative analysis was unavailable. The scores below come from a basic statistical analysis of your answers."

// Sentinel errors. ErrRemoteUnavailable and ErrParseAmbiguous never reach
// Classify's caller; they are kept on Result.Degradation for logging.
var (
	ErrPreconditionViolation = errors.New("classification requires a complete response set")
	ErrRemoteUnavailable     = errors.New("remote classification unavailable")
	ErrParseAmbiguous        = errors.New("remote classification output not recognised")
)

// Source records which path produced a Result.
type Source string

const (
	SourceRemote               Source = "remote"
	SourceRemoteFallbackScores Source = "remote+fallback-scores"
	SourceFallback             Source = "fallback"
)

// Result is the outcome of classifying one complete response set.
type Result struct {
	MainType  quiz.TypeID         `json:"main_type"`
	Scores    map[quiz.TypeID]int `json:"scores"` // one entry per type, each in [0,100]
	Narrative string              `json:"narrative"`
	Source    Source              `json:"source"`

	// Degradation is the absorbed remote or parse failure, nil when the
	// remote path succeeded.
	Degradation error `json:"-"`
}

// Profile returns the static profile of the main type.
func (r *Result) Profile() *quiz.TypeProfile {
	return quiz.Profile(r.MainType)
}

// Degraded reports whether the fallback scorer supplied any part of r.
func (r *Result) Degraded() bool {
	return r.Source != SourceRemote
}

// TypeScore pairs a type with its score.
type TypeScore struct {
	Type  quiz.TypeID `json:"type"`
	Score int         `json:"score"`
}

// Ranked returns the scores in type-definition order.
func (r *Result) Ranked() []TypeScore {
	out := make([]TypeScore, 0, len(quiz.TypeOrder))
	for _, id := range quiz.TypeOrder {
		out = append(out, TypeScore{Type: id, Score: r.Scores[id]})
	}
	return out
}

// validate checks the structural guarantees every Result must satisfy.
func (r *Result) validate() error {
	if !r.MainType.Valid() {
		return fmt.Errorf("main type %q is not defined", r.MainType)
	}
	if len(r.Scores) != quiz.NumTypes {
		return fmt.Errorf("got %d scores, want %d", len(r.Scores), quiz.NumTypes)
	}
	for _, id := range quiz.TypeOrder {
		s, ok := r.Scores[id]
		if !ok {
			return fmt.Errorf("missing score for %q", id)
		}
		if s < 0 || s > 100 {
			return fmt.Errorf("score for %q out of range: %d", id, s)
		}
	}
	return nil
}
