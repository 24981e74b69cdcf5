// internal/decision/eval/eval.go
package eval

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Compiled is a validated, pre-compiled condition. A nil program (empty
// source) always evaluates to true.
type Compiled struct {
	Source  string
	program *vm.Program
}

// Compile validates and compiles a condition. Undefined variables are allowed
// and evaluate to nil, so a condition over a flag that was never set simply
// does not match.
func Compile(cond string) (*Compiled, error) {
	cond = strings.TrimSpace(cond)
	if cond == "" {
		return &Compiled{}, nil
	}

	if err := Validate(cond); err != nil {
		return nil, err
	}

	program, err := expr.Compile(cond, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, err
	}

	return &Compiled{Source: cond, program: program}, nil
}

func (c *Compiled) Eval(vars map[string]any) (bool, error) {
	if c == nil || c.program == nil {
		return true, nil
	}

	out, err := vm.Run(c.program, vars)
	if err != nil {
		return false, err
	}

	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("cond must evaluate to bool (got %T)", out)
	}

	return b, nil
}

// Eval compiles and evaluates in one shot.
func Eval(cond string, vars map[string]any) (bool, error) {
	c, err := Compile(cond)
	if err != nil {
		return false, err
	}
	return c.Eval(vars)
}
