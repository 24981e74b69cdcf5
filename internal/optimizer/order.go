package optimizer

import (
	"sort"

	"github.com/awmpietro/golang-aiact-compliance-case/internal/decision"
)

// alpha weighs terminal probability into the greedy ordering score.
const alpha = 0.5

// Score ranks a question for the greedy ordering:
// score(q) = IG(q) × (1 + α × p_terminal(q)).
func Score(q decision.Question) float64 {
	return q.InformationGain * (1 + alpha*q.TerminalProbability)
}

// GreedyOrder produces a recommended traversal order: questions whose skip
// conditions already match the initial state are dropped, the rest are sorted
// by descending score with ties keeping input order. This informs offline
// tuning of the question set; it does not drive runtime traversal.
func GreedyOrder(questions []decision.Question, initial decision.State) []decision.Question {
	ordered := make([]decision.Question, 0, len(questions))
	for _, q := range questions {
		if _, skip := q.Skippable(initial); skip {
			continue
		}
		ordered = append(ordered, q)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return Score(ordered[i]) > Score(ordered[j])
	})

	return ordered
}
