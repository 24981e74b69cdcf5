package harness

import (
	"fmt"
	"sort"
	"time"

	"github.com/awmpietro/golang-aiact-compliance-case/internal/decision"
)

type ScenarioResult struct {
	Scenario    Scenario
	Passed      bool
	Result      decision.ComplianceResult
	Diagnostics decision.Diagnostics
	Errors      []string
	Duration    time.Duration
}

type SuiteReport struct {
	Timestamp  time.Time
	Total      int
	Passed     int
	Failed     int
	PassRate   float64
	ByCategory map[string][]ScenarioResult
	Categories []string
}

// Runner executes scenarios against an engine, walking the master order and
// answering wherever the scenario provides a value.
type Runner struct {
	engine *decision.Engine
	order  []string
}

func NewRunner(engine *decision.Engine, order []string) *Runner {
	return &Runner{engine: engine, order: order}
}

func (r *Runner) Run(sc Scenario) ScenarioResult {
	start := time.Now()
	sess := r.engine.NewSession()

	var errs []string

	for _, qid := range r.order {
		if v, ok := sc.Answers[qid]; ok {
			r.engine.Answer(sess, qid, v.Values...)
		} else if next, ok := r.engine.NextQuestion(sess); ok && next.ID == qid {
			errs = append(errs, fmt.Sprintf("expected answer for %s but none provided", qid))
			break
		}

		result := r.engine.Result(sess)
		if result.Classification != decision.ComplianceRequired {
			break
		}
	}

	result := r.engine.Result(sess)
	errs = append(errs, check(sc.Expect, result)...)

	return ScenarioResult{
		Scenario:    sc,
		Passed:      len(errs) == 0,
		Result:      result,
		Diagnostics: sess.Diagnostics(),
		Errors:      errs,
		Duration:    time.Since(start),
	}
}

func (r *Runner) RunSuite(scenarios []Scenario) SuiteReport {
	report := SuiteReport{
		Timestamp:  time.Now(),
		ByCategory: map[string][]ScenarioResult{},
	}

	for _, sc := range scenarios {
		res := r.Run(sc)
		report.Total++
		if res.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
		category := sc.Category
		if category == "" {
			category = "uncategorized"
		}
		if _, ok := report.ByCategory[category]; !ok {
			report.Categories = append(report.Categories, category)
		}
		report.ByCategory[category] = append(report.ByCategory[category], res)
	}

	if report.Total > 0 {
		report.PassRate = float64(report.Passed) / float64(report.Total) * 100
	}
	sort.Strings(report.Categories)

	return report
}

func check(expect Expectation, actual decision.ComplianceResult) []string {
	var errs []string

	if expect.Questions > 0 && actual.QuestionsAsked != expect.Questions {
		errs = append(errs, fmt.Sprintf("question count mismatch: expected %d, got %d",
			expect.Questions, actual.QuestionsAsked))
	}

	for name, want := range expect.Flags {
		if got := actual.Flags[name]; got != want {
			errs = append(errs, fmt.Sprintf("flag mismatch for %s: expected %t, got %t", name, want, got))
		}
	}

	if expect.Obligations != nil {
		want := append([]string(nil), expect.Obligations...)
		sort.Strings(want)
		got := append([]string(nil), actual.Obligations...)
		sort.Strings(got)
		if !equalStrings(want, got) {
			errs = append(errs, fmt.Sprintf("obligation mismatch: expected %v, got %v", want, got))
		}
	}

	if expect.Classification != "" && actual.Classification != expect.Classification {
		errs = append(errs, fmt.Sprintf("classification mismatch: expected %s, got %s",
			expect.Classification, actual.Classification))
	}

	return errs
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
