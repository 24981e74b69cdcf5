// Package catalog loads question-set definitions and optional rule packs
// from YAML, and converts the upstream JSON checker format into the YAML
// layout.
package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/awmpietro/golang-aiact-compliance-case/internal/decision"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/decision/eval"
)

type Metadata struct {
	Title   string `yaml:"title"`
	Version string `yaml:"version"`
	Source  string `yaml:"source,omitempty"`
	Updated string `yaml:"updated,omitempty"`
	Purpose string `yaml:"purpose,omitempty"`
}

type Catalog struct {
	Metadata  Metadata
	Questions []decision.Question
	Order     []string
	Rules     []decision.Rule
}

type catalogFile struct {
	Metadata      Metadata       `yaml:"metadata"`
	Questionnaire []questionFile `yaml:"questionnaire"`
	Rules         []ruleFile     `yaml:"rules,omitempty"`
}

type questionFile struct {
	ID                  string       `yaml:"id"`
	Question            string       `yaml:"question"`
	Type                string       `yaml:"type"`
	Options             []optionFile `yaml:"options"`
	Priority            float64      `yaml:"priority"`
	InformationGain     float64      `yaml:"information_gain"`
	SkipConditions      []string     `yaml:"skip_conditions,omitempty"`
	TerminalProbability float64      `yaml:"terminal_probability"`
}

type optionFile struct {
	Value    string `yaml:"value"`
	Label    string `yaml:"label"`
	Help     string `yaml:"help,omitempty"`
	Terminal bool   `yaml:"terminal,omitempty"`
}

type ruleFile struct {
	Name    string          `yaml:"name"`
	When    string          `yaml:"when"`
	Effects map[string]bool `yaml:"effects"`
}

// Load parses a YAML question set. Rule predicates are expressions over the
// flat state env (see decision.ExprEnv) and are compiled once at load time.
func Load(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c := &Catalog{Metadata: file.Metadata}

	for _, qf := range file.Questionnaire {
		if qf.ID == "" {
			return nil, fmt.Errorf("question without id")
		}

		choice := decision.ChoiceType(qf.Type)
		switch choice {
		case decision.SingleChoice, decision.MultipleChoice:
		case "":
			choice = decision.SingleChoice
		default:
			return nil, fmt.Errorf("question %s: unknown type %q", qf.ID, qf.Type)
		}

		q := decision.Question{
			ID:                  qf.ID,
			Prompt:              qf.Question,
			Choice:              choice,
			Priority:            qf.Priority,
			InformationGain:     qf.InformationGain,
			TerminalProbability: qf.TerminalProbability,
		}
		for _, of := range qf.Options {
			q.Options = append(q.Options, decision.Option{
				Value:    of.Value,
				Label:    of.Label,
				Terminal: of.Terminal,
			})
		}
		for _, raw := range qf.SkipConditions {
			q.SkipConditions = append(q.SkipConditions, decision.ParseCondition(raw))
		}

		c.Questions = append(c.Questions, q)
		c.Order = append(c.Order, qf.ID)
	}

	for _, rf := range file.Rules {
		rule, err := compileRule(rf)
		if err != nil {
			return nil, err
		}
		c.Rules = append(c.Rules, rule)
	}

	return c, nil
}

func compileRule(rf ruleFile) (decision.Rule, error) {
	if rf.Name == "" {
		return decision.Rule{}, fmt.Errorf("rule without name")
	}
	if len(rf.Effects) == 0 {
		return decision.Rule{}, fmt.Errorf("rule %s has no effects", rf.Name)
	}

	compiled, err := eval.Compile(rf.When)
	if err != nil {
		return decision.Rule{}, fmt.Errorf("rule %s: invalid predicate: %w", rf.Name, err)
	}

	return decision.Rule{
		Name: rf.Name,
		When: func(s decision.State) bool {
			ok, err := compiled.Eval(decision.ExprEnv(s))
			return err == nil && ok
		},
		Effects: rf.Effects,
	}, nil
}
