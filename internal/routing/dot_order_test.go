package routing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractEdgesInTextOrder(t *testing.T) {
	dot := `digraph Q {
		Q1 [answers="1,2"]
		Q1 -> END [cond="answer == 1", set="out=true"]
		Q1 -> Q2 [cond="answer == 2"]; Q2 -> END [cond="answer == 1"]
	}`

	got, err := extractEdgesInTextOrder(dot)
	if err != nil {
		t.Fatal(err)
	}

	want := []edgeSpec{
		{From: "Q1", To: "END", Cond: "answer == 1", Set: "out=true"},
		{From: "Q1", To: "Q2", Cond: "answer == 2"},
		{From: "Q2", To: "END", Cond: "answer == 1"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("edges mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitStatements_QuotesProtectSeparators(t *testing.T) {
	got := splitStatements(`a [label="x; y"]; b`)
	want := []string{`a [label="x; y"]`, "b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("statements mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractEdges_UnsupportedStatement(t *testing.T) {
	if _, err := extractEdgesInTextOrder(`a -> b -> c`); err == nil {
		t.Fatalf("expected error for chained edge statement")
	}
}
