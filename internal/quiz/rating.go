package quiz

// Rating bounds for the five-point Likert scale.
const (
	MinRating = 1
	MaxRating = 5
)

var ratingLabels = [MaxRating + 1]string{
	"",
	"strongly disagree",
	"somewhat disagree",
	"neither agree nor disagree",
	"somewhat agree",
	"strongly agree",
}

// ValidRating reports whether r is an integer rating in [MinRating, MaxRating].
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// RatingLabel returns the textual label for r, or "" when r is out of range.
func RatingLabel(r int) string {
	if !ValidRating(r) {
		return ""
	}
	return ratingLabels[r]
}

// Responses maps question index to rating. A zero entry is unanswered.
type Responses [NumQuestions]int

// Answered returns the number of recorded ratings.
func (r Responses) Answered() int {
	n := 0
	for _, v := range r {
		if v != 0 {
			n++
		}
	}
	return n
}

// Complete reports whether every question has a valid rating.
func (r Responses) Complete() bool {
	for _, v := range r {
		if !ValidRating(v) {
			return false
		}
	}
	return true
}

// ResponsesFrom builds a Responses value from a slice. It does not validate
// the ratings; callers check Complete.
func ResponsesFrom(ratings []int) (Responses, bool) {
	var r Responses
	if len(ratings) != NumQuestions {
		return r, false
	}
	copy(r[:], ratings)
	return r, true
}
