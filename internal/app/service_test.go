package app

import (
	"fmt"
	"testing"

	"github.com/awmpietro/golang-aiact-compliance-case/internal/decision"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/routing"
)

type fakeCompiler struct {
	calls int
	graph *routing.Graph
	err   error
}

func (f *fakeCompiler) Compile(dot string) (*routing.Graph, error) {
	f.calls++
	return f.graph, f.err
}

type passthroughCache struct {
	calls int
}

func (c *passthroughCache) GetOrCompute(key string, fn func() (*routing.Graph, error)) (*routing.Graph, error) {
	c.calls++
	return fn()
}

type hitCache struct {
	graph *routing.Graph
}

func (c *hitCache) GetOrCompute(key string, fn func() (*routing.Graph, error)) (*routing.Graph, error) {
	return c.graph, nil
}

func newTestService(compiler GraphCompiler, graphs GraphCache) *Service {
	return NewService(decision.NewDefaultEngine(), compiler, graphs)
}

func TestService_Assess_ValidatesInput(t *testing.T) {
	svc := newTestService(&fakeCompiler{}, &passthroughCache{})

	if _, _, err := svc.Assess(nil); err == nil {
		t.Fatalf("expected error for empty answers")
	}
	if _, _, err := svc.Assess([]AnswerInput{{QuestionID: "", Values: []string{"x"}}}); err == nil {
		t.Fatalf("expected error for missing question id")
	}
	if _, _, err := svc.Assess([]AnswerInput{{QuestionID: "Q1"}}); err == nil {
		t.Fatalf("expected error for missing values")
	}
}

func TestService_Assess_ClassifiesAndReportsDiagnostics(t *testing.T) {
	svc := newTestService(&fakeCompiler{}, &passthroughCache{})

	result, diag, err := svc.Assess([]AnswerInput{
		{QuestionID: "Q1", Values: []string{"no_eu_connection"}},
	})
	if err != nil {
		t.Fatal(err)
	}

	if result.Classification != decision.OutOfScope {
		t.Fatalf("expected %s, got %s", decision.OutOfScope, result.Classification)
	}
	if result.QuestionsAsked != 1 {
		t.Fatalf("expected 1 question, got %d", result.QuestionsAsked)
	}
	if diag.Passes < 1 {
		t.Fatalf("expected inference to run, got %+v", diag)
	}
}

func TestService_Assess_SessionsAreIndependent(t *testing.T) {
	svc := newTestService(&fakeCompiler{}, &passthroughCache{})

	if _, _, err := svc.Assess([]AnswerInput{{QuestionID: "Q1", Values: []string{"no_eu_connection"}}}); err != nil {
		t.Fatal(err)
	}

	result, _, err := svc.Assess([]AnswerInput{{QuestionID: "Q1", Values: []string{"has_eu_connection"}}})
	if err != nil {
		t.Fatal(err)
	}
	if result.Classification != decision.ComplianceRequired {
		t.Fatalf("a previous assessment must not leak into the next, got %s", result.Classification)
	}
}

func TestService_Analyze_RequiresDOT(t *testing.T) {
	svc := newTestService(&fakeCompiler{}, &passthroughCache{})
	if _, err := svc.Analyze(""); err == nil {
		t.Fatalf("expected error for empty routing DOT")
	}
}

func TestService_Analyze_UsesCache(t *testing.T) {
	graph := &routing.Graph{Start: "Q1", Nodes: map[string]*routing.Node{"Q1": {ID: "Q1"}}}
	comp := &fakeCompiler{graph: graph}

	svc := newTestService(comp, &hitCache{graph: graph})
	if _, err := svc.Analyze("digraph Q {}"); err != nil {
		t.Fatal(err)
	}
	if comp.calls != 0 {
		t.Fatalf("expected cache hit to bypass the compiler, got %d calls", comp.calls)
	}
}

func TestService_Analyze_BubblesUpCompileErrors(t *testing.T) {
	comp := &fakeCompiler{err: fmt.Errorf("compile fail")}
	svc := newTestService(comp, &passthroughCache{})

	if _, err := svc.Analyze("digraph Q {}"); err == nil {
		t.Fatalf("expected error")
	}
	if comp.calls != 1 {
		t.Fatalf("expected one compile attempt, got %d", comp.calls)
	}
}

func TestService_Order_DropsSkippableQuestions(t *testing.T) {
	svc := newTestService(&fakeCompiler{}, &passthroughCache{})

	order := svc.Order()
	if len(order) == 0 {
		t.Fatalf("expected a non-empty order")
	}
	for _, id := range order {
		if id == "Q9" {
			t.Fatalf("Q9 is skippable against the empty state and must not appear")
		}
	}
}

func TestService_Questions_MasterOrder(t *testing.T) {
	svc := newTestService(&fakeCompiler{}, &passthroughCache{})

	questions := svc.Questions()
	if len(questions) != 12 {
		t.Fatalf("expected 12 questions, got %d", len(questions))
	}
	if questions[0].ID != "Q1" || questions[len(questions)-1].ID != "Q9" {
		t.Fatalf("unexpected order: %s .. %s", questions[0].ID, questions[len(questions)-1].ID)
	}
}
