package harness

import (
	"strings"
	"testing"

	"github.com/awmpietro/golang-aiact-compliance-case/internal/decision"
)

const sampleScenarios = `
scenarios:
  - name: no_eu_connection
    description: System never touches the EU market.
    category: scope
    answers:
      Q1: no_eu_connection
    expect:
      questions: 1
      classification: out_of_scope
      flags:
        out_of_scope: true

  - name: gpai_systemic_provider
    description: Provider placing a systemic-risk GPAI model on the market.
    category: gpai
    answers:
      Q1: has_eu_connection
      Q2: [provider]
      Q3: [none]
      Q4: [none]
      Q5: yes_gpai
      Q5A: yes_systemic
      Q7: [generate_synthetic_content]
    expect:
      questions: 7
      classification: compliance_required
      flags:
        gpai: true
        gpai_systemic_risk: true
      obligations:
        - ai_literacy
        - gpai_base
        - gpai_systemic
        - transparency_synthetic_content
`

func TestLoadScenarios(t *testing.T) {
	scenarios, err := LoadScenarios([]byte(sampleScenarios))
	if err != nil {
		t.Fatal(err)
	}
	if len(scenarios) != 2 {
		t.Fatalf("expected 2 scenarios, got %d", len(scenarios))
	}

	if got := scenarios[0].Answers["Q1"].Values; len(got) != 1 || got[0] != "no_eu_connection" {
		t.Fatalf("scalar answer mismatch: %v", got)
	}
	if got := scenarios[1].Answers["Q2"].Values; len(got) != 1 || got[0] != "provider" {
		t.Fatalf("sequence answer mismatch: %v", got)
	}
}

func TestLoadScenarios_Empty(t *testing.T) {
	if _, err := LoadScenarios([]byte("scenarios: []")); err == nil {
		t.Fatalf("expected error for empty suite")
	}
}

func TestLoadScenarios_BadAnswerShape(t *testing.T) {
	bad := "scenarios:\n  - name: x\n    answers:\n      Q1: {a: 1}\n"
	if _, err := LoadScenarios([]byte(bad)); err == nil {
		t.Fatalf("expected error for mapping answer")
	}
}

func TestRunner_RunSuite(t *testing.T) {
	scenarios, err := LoadScenarios([]byte(sampleScenarios))
	if err != nil {
		t.Fatal(err)
	}

	runner := NewRunner(decision.NewDefaultEngine(), decision.MasterOrder())
	suite := runner.RunSuite(scenarios)

	if suite.Total != 2 || suite.Failed != 0 {
		for _, results := range suite.ByCategory {
			for _, r := range results {
				for _, e := range r.Errors {
					t.Logf("%s: %s", r.Scenario.Name, e)
				}
			}
		}
		t.Fatalf("expected all scenarios to pass, got %d/%d", suite.Passed, suite.Total)
	}
	if suite.PassRate != 100 {
		t.Fatalf("expected 100%% pass rate, got %f", suite.PassRate)
	}
	if len(suite.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %v", suite.Categories)
	}
}

func TestRunner_Run_ReportsMismatches(t *testing.T) {
	sc := Scenario{
		Name:    "wrong_expectation",
		Answers: map[string]AnswerValue{"Q1": {Values: []string{"no_eu_connection"}}},
		Expect: Expectation{
			Questions:      2,
			Classification: decision.ComplianceRequired,
			Flags:          map[string]bool{"out_of_scope": false},
		},
	}

	runner := NewRunner(decision.NewDefaultEngine(), decision.MasterOrder())
	res := runner.Run(sc)

	if res.Passed {
		t.Fatalf("expected scenario to fail")
	}
	joined := strings.Join(res.Errors, "\n")
	for _, want := range []string{"question count mismatch", "classification mismatch", "flag mismatch"} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected %q in errors:\n%s", want, joined)
		}
	}
}

func TestRunner_Run_MissingAnswer(t *testing.T) {
	sc := Scenario{
		Name:    "incomplete",
		Answers: map[string]AnswerValue{"Q1": {Values: []string{"has_eu_connection"}}},
		Expect:  Expectation{Classification: decision.ComplianceRequired},
	}

	runner := NewRunner(decision.NewDefaultEngine(), decision.MasterOrder())
	res := runner.Run(sc)

	if res.Passed {
		t.Fatalf("expected failure when the scenario runs out of answers")
	}
	if !strings.Contains(strings.Join(res.Errors, "\n"), "expected answer for Q2") {
		t.Fatalf("expected missing answer error, got %v", res.Errors)
	}
}
