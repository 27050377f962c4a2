package diagnosis

import "github.com/abhisek/keizoku/internal/quiz"

// typeMeans returns the mean rating of the questions tied to each type.
// A type with no questions keeps a mean of 0.
func typeMeans(r quiz.Responses) map[quiz.TypeID]float64 {
	sums := make(map[quiz.TypeID]int, quiz.NumTypes)
	counts := make(map[quiz.TypeID]int, quiz.NumTypes)
	for _, q := range quiz.Questions() {
		sums[q.Type] += r[q.Index]
		counts[q.Type]++
	}

	means := make(map[quiz.TypeID]float64, quiz.NumTypes)
	for _, id := range quiz.TypeOrder {
		means[id] = 0
		if counts[id] > 0 {
			means[id] = float64(sums[id]) / float64(counts[id])
		}
	}
	return means
}

// FallbackScores computes the local statistical classification: per-type
// means scaled so the highest is 100. Every type gets 50 when the highest
// mean is 0 or when all means are equal. The main type is the first type in
// definition order holding the highest mean.
func FallbackScores(r quiz.Responses) (map[quiz.TypeID]int, quiz.TypeID) {
	means := typeMeans(r)

	main := quiz.TypeOrder[0]
	maxMean, minMean := means[main], means[main]
	for _, id := range quiz.TypeOrder[1:] {
		m := means[id]
		if m > maxMean {
			maxMean = m
			main = id
		}
		if m < minMean {
			minMean = m
		}
	}

	scores := make(map[quiz.TypeID]int, quiz.NumTypes)
	if maxMean == 0 || maxMean == minMean {
		for _, id := range quiz.TypeOrder {
			scores[id] = 50
		}
		return scores, main
	}

	for _, id := range quiz.TypeOrder {
		scores[id] = int(means[id] / maxMean * 100)
	}
	return scores, main
}
