// Package harness drives the decision engine through canned answer
// sequences and checks the outcome against expectations.
package harness

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/awmpietro/golang-aiact-compliance-case/internal/decision"
)

// AnswerValue accepts either a scalar or a list in YAML, matching the
// single-choice / multiple-choice answer shapes.
type AnswerValue struct {
	Values []string
}

func (v *AnswerValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		v.Values = []string{s}
		return nil
	case yaml.SequenceNode:
		return node.Decode(&v.Values)
	default:
		return fmt.Errorf("answer must be a scalar or a list")
	}
}

type Expectation struct {
	Questions      int                     `yaml:"questions"`
	Flags          map[string]bool         `yaml:"flags"`
	Obligations    []string                `yaml:"obligations"`
	Classification decision.Classification `yaml:"classification"`
}

type Scenario struct {
	Name        string                 `yaml:"name"`
	Description string                 `yaml:"description"`
	Category    string                 `yaml:"category"`
	Answers     map[string]AnswerValue `yaml:"answers"`
	Expect      Expectation            `yaml:"expect"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarios parses a YAML scenario suite.
func LoadScenarios(data []byte) ([]Scenario, error) {
	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scenarios: %w", err)
	}
	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios defined")
	}
	return file.Scenarios, nil
}
