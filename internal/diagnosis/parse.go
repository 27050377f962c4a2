package diagnosis

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/keizoku/internal/quiz"
)

// defaultScore is assigned to a type the remote text gives no score for.
const defaultScore = 50

// englishMentions matches each type's English name as a whole,
// case-sensitive word, so prose like "a catalyst for change" is not a
// mention.
var englishMentions = compileMentions()

func compileMentions() map[quiz.TypeID]*regexp.Regexp {
	out := make(map[quiz.TypeID]*regexp.Regexp, quiz.NumTypes)
	for _, p := range quiz.Profiles() {
		out[p.ID] = regexp.MustCompile(`\b` + regexp.QuoteMeta(p.Name) + `\b`)
	}
	return out
}

type scorePatterns struct {
	percent *regexp.Regexp
	bare    *regexp.Regexp
}

// patterns holds the compiled score patterns per type, one pair per alias.
var patterns = compileScorePatterns()

func compileScorePatterns() map[quiz.TypeID][]scorePatterns {
	out := make(map[quiz.TypeID][]scorePatterns, quiz.NumTypes)
	for _, p := range quiz.Profiles() {
		for _, alias := range p.Aliases() {
			name := `(?i)` + regexp.QuoteMeta(alias)
			out[p.ID] = append(out[p.ID], scorePatterns{
				percent: regexp.MustCompile(name + `\s*[：:]\s*(\d+)\s*[％%]`),
				bare:    regexp.MustCompile(name + `\s*[：:]\s*(\d+)`),
			})
		}
	}
	return out
}

// ParseMainType returns the first type, in definition order, that the text
// mentions anywhere. English names match as case-sensitive whole words and
// local names as plain substrings. Where in the text a name occurs does
// not matter.
func ParseMainType(text string) (quiz.TypeID, bool) {
	for _, p := range quiz.Profiles() {
		if englishMentions[p.ID].MatchString(text) || strings.Contains(text, p.LocalName) {
			return p.ID, true
		}
	}
	return "", false
}

// ExtractScores pulls a 0-100 score for every type out of free text. The
// percent-suffixed form is preferred over bare digits; types without a
// match get defaultScore and values above 100 are clamped. It also returns
// the highest score found.
func ExtractScores(text string) (scores map[quiz.TypeID]int, highest int) {
	scores = make(map[quiz.TypeID]int, quiz.NumTypes)
	for _, id := range quiz.TypeOrder {
		s, ok := findScore(text, patterns[id])
		if !ok {
			s = defaultScore
		}
		scores[id] = s
		if s > highest {
			highest = s
		}
	}
	return scores, highest
}

func findScore(text string, pats []scorePatterns) (int, bool) {
	for _, p := range pats {
		if m := p.percent.FindStringSubmatch(text); m != nil {
			return clampScore(m[1]), true
		}
	}
	for _, p := range pats {
		if m := p.bare.FindStringSubmatch(text); m != nil {
			return clampScore(m[1]), true
		}
	}
	return 0, false
}

func clampScore(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil || n > 100 {
		// Only overflow makes Atoi fail on a \d+ match.
		return 100
	}
	return n
}
