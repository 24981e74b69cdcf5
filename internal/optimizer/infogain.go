package optimizer

import (
	"github.com/awmpietro/golang-aiact-compliance-case/internal/cache"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/decision"
)

// Calculator computes information gain for asking a question against a
// simulated state space. Results are memoized by (question id, state key);
// the memo holds no session data and may be shared across sessions.
type Calculator struct {
	memo *cache.Memo[float64]
}

func NewCalculator(memo *cache.Memo[float64]) *Calculator {
	if memo == nil {
		memo = cache.NewMemo[float64](4096)
	}
	return &Calculator{memo: memo}
}

// InformationGain is IG(Q, S) = H(S) - Σ p(v) × H(S|Q=v). The state space is
// partitioned by every possible answer value of the question; partitions are
// weighted by their share of the space.
func (c *Calculator) InformationGain(q decision.Question, s decision.State, space []decision.State) float64 {
	key := q.ID + "@" + s.Key()
	ig, _ := c.memo.GetOrCompute(key, func() (float64, error) {
		return informationGain(q, space), nil
	})
	return ig
}

func informationGain(q decision.Question, space []decision.State) float64 {
	if len(space) == 0 {
		return 0
	}

	current := stateEntropy(space)

	conditional := 0.0
	for _, subset := range partitionByAnswer(q, space) {
		prob := float64(len(subset)) / float64(len(space))
		conditional += prob * stateEntropy(subset)
	}

	return current - conditional
}

// stateEntropy measures entropy over classification identities: states with
// the same flag set and obligation set count as one outcome.
func stateEntropy(space []decision.State) float64 {
	if len(space) == 0 {
		return 0
	}

	counts := map[string]int{}
	for _, s := range space {
		counts[s.ClassKey()]++
	}

	total := float64(len(space))
	probs := make([]float64, 0, len(counts))
	for _, count := range counts {
		probs = append(probs, float64(count)/total)
	}

	return Entropy(probs)
}

// partitionByAnswer splits the space by possible answer value. Answer
// distributions are not simulated; every option is assumed uniformly
// reachable from every state.
func partitionByAnswer(q decision.Question, space []decision.State) map[string][]decision.State {
	partitions := map[string][]decision.State{}
	for _, s := range space {
		for _, option := range q.Options {
			partitions[option.Value] = append(partitions[option.Value], s)
		}
	}
	return partitions
}
