package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/awmpietro/golang-aiact-compliance-case/internal/decision"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/harness"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/report"
)

var batchFlags struct {
	catalogPath string
	reportPath  string
}

var batchCmd = &cobra.Command{
	Use:   "batch <scenarios.yaml>",
	Short: "Run a scenario suite and check expectations",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.StringVar(&batchFlags.catalogPath, "catalog", "", "Question catalog YAML (default: built-in EU AI Act set)")
	f.StringVarP(&batchFlags.reportPath, "report", "o", "", "Write a Markdown report to this path")
}

func runBatch(cmd *cobra.Command, args []string) error {
	engine, err := buildEngine(batchFlags.catalogPath, 0)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read scenarios: %w", err)
	}
	scenarios, err := harness.LoadScenarios(data)
	if err != nil {
		return err
	}

	runner := harness.NewRunner(engine, decision.MasterOrder())
	suite := runner.RunSuite(scenarios)

	for _, category := range suite.Categories {
		for _, res := range suite.ByCategory[category] {
			status := "PASS"
			if !res.Passed {
				status = "FAIL"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", status, res.Scenario.Name, category)
			for _, e := range res.Errors {
				fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", e)
			}
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d/%d passed (%.1f%%)\n", suite.Passed, suite.Total, suite.PassRate)

	if batchFlags.reportPath != "" {
		md, err := report.Suite(suite)
		if err != nil {
			return err
		}
		if err := os.WriteFile(batchFlags.reportPath, []byte(md), 0644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to: %s\n", batchFlags.reportPath)
	}

	if suite.Failed > 0 {
		return fmt.Errorf("%d scenario(s) failed", suite.Failed)
	}
	return nil
}
