package decision

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRuleset_Apply_ChainsAcrossPasses(t *testing.T) {
	// dependent is registered first, so it only sees flag a on the next pass.
	rules := []Rule{
		{
			Name:    "dependent",
			When:    func(s State) bool { return s.Flag("a") },
			Effects: map[string]bool{"flag_b": true},
		},
		{
			Name:    "base",
			When:    func(s State) bool { return true },
			Effects: map[string]bool{"flag_a": true},
		},
	}

	out, diag := NewRuleset(rules).Apply(NewState())

	if !out.Flag("a") || !out.Flag("b") {
		t.Fatalf("expected both flags set, got %v", out.Flags())
	}
	if diag.Passes != 3 {
		t.Fatalf("expected 3 passes (derive, chain, settle), got %d", diag.Passes)
	}
	if diag.Capped {
		t.Fatalf("expected convergence, not cap")
	}
}

func TestRuleset_Apply_IntraPassVisibility(t *testing.T) {
	// base fires before dependent in the same pass, so one extra pass settles.
	rules := []Rule{
		{
			Name:    "base",
			When:    func(s State) bool { return true },
			Effects: map[string]bool{"flag_a": true},
		},
		{
			Name:    "dependent",
			When:    func(s State) bool { return s.Flag("a") },
			Effects: map[string]bool{"flag_b": true},
		},
	}

	out, diag := NewRuleset(rules).Apply(NewState())

	if !out.Flag("b") {
		t.Fatalf("expected dependent to see base's effect within the pass")
	}
	if diag.Passes != 2 {
		t.Fatalf("expected 2 passes, got %d", diag.Passes)
	}
}

func TestRuleset_Apply_CapsNonConvergingRules(t *testing.T) {
	rules := []Rule{
		{
			Name:    "set",
			When:    func(s State) bool { return !s.Flag("x") },
			Effects: map[string]bool{"flag_x": true},
		},
		{
			Name:    "unset",
			When:    func(s State) bool { return s.Flag("x") },
			Effects: map[string]bool{"flag_x": false},
		},
	}

	_, diag := NewRuleset(rules).Apply(NewState())

	if !diag.Capped {
		t.Fatalf("expected the pass cap to trip")
	}
	if diag.Passes != DefaultMaxPasses {
		t.Fatalf("expected %d passes, got %d", DefaultMaxPasses, diag.Passes)
	}
}

func TestRuleset_Apply_WithMaxPasses(t *testing.T) {
	rules := []Rule{
		{
			Name:    "toggle",
			When:    func(s State) bool { return !s.Flag("x") },
			Effects: map[string]bool{"flag_x": true},
		},
		{
			Name:    "untoggle",
			When:    func(s State) bool { return s.Flag("x") },
			Effects: map[string]bool{"flag_x": false},
		},
	}

	_, diag := NewRuleset(rules, WithMaxPasses(3)).Apply(NewState())
	if diag.Passes != 3 {
		t.Fatalf("expected 3 passes, got %d", diag.Passes)
	}
}

func TestRuleset_Apply_ObligationsAreMonotonic(t *testing.T) {
	rules := []Rule{
		{
			Name:    "grant",
			When:    func(s State) bool { return true },
			Effects: map[string]bool{"obligation_ai_literacy": true},
		},
		{
			Name:    "false_effect_is_ignored",
			When:    func(s State) bool { return true },
			Effects: map[string]bool{"obligation_handover": false},
		},
	}

	out, _ := NewRuleset(rules).Apply(NewState())

	if !out.HasObligation("ai_literacy") {
		t.Fatalf("expected ai_literacy obligation")
	}
	if out.HasObligation("handover") {
		t.Fatalf("a false obligation effect must not add the obligation")
	}
}

func TestRuleset_Apply_FlagsAreReassignable(t *testing.T) {
	rules := []Rule{
		{
			Name:    "set",
			When:    func(s State) bool { return s.Answered("Q1") },
			Effects: map[string]bool{"flag_x": true},
		},
	}
	rs := NewRuleset(rules)

	s, _ := rs.Apply(NewState().WithFlags(map[string]bool{"x": false}).WithAnswer(NewAnswer("Q1", "yes")))
	if !s.Flag("x") {
		t.Fatalf("expected a flag effect to overwrite a previous value")
	}
}

func TestRuleset_Apply_Idempotent(t *testing.T) {
	rs := NewRuleset(DefaultRules())

	s := NewState().
		WithAnswer(NewAnswer("Q2", "provider")).
		WithAnswer(NewAnswer("Q5", "yes_gpai"))

	once, _ := rs.Apply(s)
	twice, _ := rs.Apply(once)

	if !once.Equal(twice) {
		t.Fatalf("expected a fixed point:\n%s\n%s", once.Key(), twice.Key())
	}
}

func TestDefaultRules_DeriveProviderAndGPAI(t *testing.T) {
	rs := NewRuleset(DefaultRules())

	s := NewState().
		WithAnswer(NewAnswer("Q2", "provider")).
		WithAnswer(NewAnswer("Q5", "yes_gpai")).
		WithAnswer(NewAnswer("Q5A", "yes_systemic"))
	out, diag := rs.Apply(s)

	wantFlags := map[string]bool{
		FlagIsProvider:       true,
		FlagGPAI:             true,
		FlagGPAISystemicRisk: true,
	}
	if diff := cmp.Diff(wantFlags, out.Flags()); diff != "" {
		t.Fatalf("flags mismatch (-want +got):\n%s", diff)
	}

	wantObligations := []string{ObligationAILiteracy, ObligationGPAIBase, ObligationGPAISystemic}
	if diff := cmp.Diff(wantObligations, out.Obligations()); diff != "" {
		t.Fatalf("obligations mismatch (-want +got):\n%s", diff)
	}
	if diag.Capped {
		t.Fatalf("default rules must converge")
	}
}

func TestDefaultRules_NoneSelectionsDeriveNothing(t *testing.T) {
	rs := NewRuleset(DefaultRules())

	s := NewState().
		WithAnswer(NewAnswer("Q3", "none")).
		WithAnswer(NewAnswer("Q4", "none")).
		WithAnswer(NewAnswer("Q8", "none"))
	out, _ := rs.Apply(s)

	if out.Flag(FlagExcluded) || out.Flag(FlagProhibited) || out.Flag(FlagBecomesProvider) {
		t.Fatalf("none selections must not derive flags, got %v", out.Flags())
	}
}
