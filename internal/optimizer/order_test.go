package optimizer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/awmpietro/golang-aiact-compliance-case/internal/decision"
)

func TestScore_WeighsTerminalProbability(t *testing.T) {
	base := decision.Question{InformationGain: 0.8}
	terminal := decision.Question{InformationGain: 0.8, TerminalProbability: 0.5}

	if Score(terminal) <= Score(base) {
		t.Fatalf("terminal probability must raise the score: %f vs %f", Score(terminal), Score(base))
	}
	if got := Score(terminal); got != 0.8*1.25 {
		t.Fatalf("Score = %f, want %f", got, 0.8*1.25)
	}
}

func TestGreedyOrder_SortsByScore(t *testing.T) {
	questions := []decision.Question{
		{ID: "low", InformationGain: 0.2},
		{ID: "high", InformationGain: 0.9},
		{ID: "mid", InformationGain: 0.5, TerminalProbability: 0.4},
	}

	ordered := GreedyOrder(questions, decision.NewState())

	ids := make([]string, len(ordered))
	for i, q := range ordered {
		ids[i] = q.ID
	}
	if diff := cmp.Diff([]string{"high", "mid", "low"}, ids); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestGreedyOrder_DropsSkippableQuestions(t *testing.T) {
	questions := []decision.Question{
		{ID: "kept", InformationGain: 0.5},
		{
			ID:              "skipped",
			InformationGain: 0.9,
			SkipConditions:  []decision.Condition{decision.ParseCondition("high_risk == False")},
		},
	}

	ordered := GreedyOrder(questions, decision.NewState())

	if len(ordered) != 1 || ordered[0].ID != "kept" {
		t.Fatalf("expected only the non-skippable question, got %v", ordered)
	}
}

func TestGreedyOrder_StableOnTies(t *testing.T) {
	questions := []decision.Question{
		{ID: "a", InformationGain: 0.5},
		{ID: "b", InformationGain: 0.5},
	}

	ordered := GreedyOrder(questions, decision.NewState())
	if ordered[0].ID != "a" || ordered[1].ID != "b" {
		t.Fatalf("tied scores must keep input order, got %s, %s", ordered[0].ID, ordered[1].ID)
	}
}

func TestGreedyOrder_DefaultCatalogue(t *testing.T) {
	ordered := GreedyOrder(decision.DefaultQuestions(), decision.NewState())

	// Q1's terminal weight edges out Q4's raw information gain; Q9 is
	// skippable against the empty state and drops out entirely.
	if ordered[0].ID != "Q1" || ordered[1].ID != "Q4" {
		t.Fatalf("expected Q1, Q4 first, got %s, %s", ordered[0].ID, ordered[1].ID)
	}
	for _, q := range ordered {
		if q.ID == "Q9" {
			t.Fatalf("expected Q9 to be dropped against the empty state")
		}
	}
}
