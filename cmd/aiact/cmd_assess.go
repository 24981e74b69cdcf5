package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/awmpietro/golang-aiact-compliance-case/internal/app"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/decision"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/harness"
)

var assessFlags struct {
	catalogPath string
	answersPath string
	interactive bool
	debug       bool
}

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run one compliance assessment",
	Long: `Run one assessment from an answers file, or interactively on the terminal.

The answers file lists answered questions in order:

  answers:
    - question: Q1
      value: has_eu_connection
    - question: Q2
      value: [provider, deployer]`,
	RunE: runAssess,
}

func init() {
	f := assessCmd.Flags()
	f.StringVar(&assessFlags.catalogPath, "catalog", "", "Question catalog YAML (default: built-in EU AI Act set)")
	f.StringVarP(&assessFlags.answersPath, "answers", "f", "", "Answers YAML file")
	f.BoolVarP(&assessFlags.interactive, "interactive", "i", false, "Ask questions on the terminal")
	f.BoolVar(&assessFlags.debug, "debug", false, "Include inference diagnostics in the output")
}

type answerEntry struct {
	Question string              `yaml:"question"`
	Value    harness.AnswerValue `yaml:"value"`
}

type answersFile struct {
	Answers []answerEntry `yaml:"answers"`
}

func runAssess(cmd *cobra.Command, args []string) error {
	engine, err := buildEngine(assessFlags.catalogPath, 0)
	if err != nil {
		return err
	}

	if assessFlags.interactive {
		return runInteractive(cmd, engine)
	}

	if assessFlags.answersPath == "" {
		return fmt.Errorf("either --answers or --interactive is required")
	}

	data, err := os.ReadFile(assessFlags.answersPath)
	if err != nil {
		return fmt.Errorf("read answers: %w", err)
	}
	var file answersFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse answers: %w", err)
	}

	inputs := make([]app.AnswerInput, 0, len(file.Answers))
	for _, a := range file.Answers {
		inputs = append(inputs, app.AnswerInput{QuestionID: a.Question, Values: a.Value.Values})
	}

	svc := buildService(engine, 0)
	result, diag, err := svc.Assess(inputs)
	if err != nil {
		return err
	}

	return printResult(cmd, result, diag)
}

func runInteractive(cmd *cobra.Command, engine *decision.Engine) error {
	sess := engine.NewSession()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	for {
		q, ok := engine.NextQuestion(sess)
		if !ok {
			break
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\n%s: %s\n", q.ID, q.Prompt)
		for _, o := range q.Options {
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s: %s\n", o.Value, o.Label)
		}
		if q.Choice == decision.MultipleChoice {
			fmt.Fprint(cmd.OutOrStdout(), "answer (comma-separated): ")
		} else {
			fmt.Fprint(cmd.OutOrStdout(), "answer: ")
		}

		if !scanner.Scan() {
			return scanner.Err()
		}
		values := splitAnswer(scanner.Text())
		if len(values) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "an answer is required")
			continue
		}
		if bad := invalidValues(q, values); len(bad) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "unknown option(s): %s\n", strings.Join(bad, ", "))
			continue
		}

		engine.Answer(sess, q.ID, values...)
	}

	return printResult(cmd, engine.Result(sess), sess.Diagnostics())
}

func splitAnswer(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func invalidValues(q decision.Question, values []string) []string {
	known := map[string]bool{}
	for _, v := range q.OptionValues() {
		known[v] = true
	}
	var bad []string
	for _, v := range values {
		if !known[v] {
			bad = append(bad, v)
		}
	}
	return bad
}

func printResult(cmd *cobra.Command, result decision.ComplianceResult, diag decision.Diagnostics) error {
	out := map[string]any{"result": result}
	if assessFlags.debug {
		out["diagnostics"] = diag
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
