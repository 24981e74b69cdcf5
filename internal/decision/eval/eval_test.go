package eval

import (
	"strings"
	"testing"
)

func TestCompile_EmptyAlwaysTrue(t *testing.T) {
	c, err := Compile("   ")
	if err != nil {
		t.Fatal(err)
	}
	ok, err := c.Eval(map[string]any{})
	if err != nil || !ok {
		t.Fatalf("expected empty condition to evaluate true, got %v, %v", ok, err)
	}
}

func TestEval_Membership(t *testing.T) {
	vars := map[string]any{
		"Q2_answer": []string{"provider", "deployer"},
	}

	ok, err := Eval(`"provider" in Q2_answer`, vars)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatalf("expected membership to hold")
	}

	ok, err = Eval(`"importer" in Q2_answer`, vars)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("expected membership not to hold")
	}
}

func TestEval_UndefinedVariablesAreNil(t *testing.T) {
	ok, err := Eval("high_risk == true", map[string]any{})
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("expected unset flag not to match")
	}
}

func TestEval_BooleanOperators(t *testing.T) {
	vars := map[string]any{"high_risk": true, "is_deployer": true, "answer": 2}

	tests := []struct {
		cond string
		want bool
	}{
		{"high_risk and is_deployer", true},
		{"not high_risk", false},
		{"answer == 2", true},
		{"answer in [1, 3]", false},
		{"answer >= 1 or high_risk", true},
	}
	for _, tt := range tests {
		ok, err := Eval(tt.cond, vars)
		if err != nil {
			t.Fatalf("Eval(%q): %v", tt.cond, err)
		}
		if ok != tt.want {
			t.Errorf("Eval(%q) = %t, want %t", tt.cond, ok, tt.want)
		}
	}
}

func TestEval_NonBoolResultErrors(t *testing.T) {
	if _, err := Eval("answer + 1", map[string]any{"answer": 1}); err == nil {
		t.Fatalf("expected error for non-bool condition")
	}
}

func TestValidate_RejectsUnsafeConditions(t *testing.T) {
	tests := []struct {
		cond    string
		allowed bool
	}{
		{`high_risk == true`, true},
		{`answer in [1, 2]`, true},
		{`not (high_risk and gpai)`, true},
		{`user.role == "admin"`, false},
		{`len(answers) > 0`, false},
		{`a; b`, false},
		{`x ? y : z`, false},
		{`{a: 1}`, false},
	}

	for _, tt := range tests {
		err := Validate(tt.cond)
		if tt.allowed && err != nil {
			t.Errorf("Validate(%q) = %v, want nil", tt.cond, err)
		}
		if !tt.allowed && err == nil {
			t.Errorf("Validate(%q) = nil, want error", tt.cond)
		}
	}
}

func TestCompile_RejectsInvalidSyntax(t *testing.T) {
	_, err := Compile("a ==")
	if err == nil {
		t.Fatalf("expected compile error")
	}
	if strings.Contains(err.Error(), "panic") {
		t.Fatalf("compile errors must be plain errors, got %v", err)
	}
}
