package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/awmpietro/golang-aiact-compliance-case/internal/optimizer"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/report"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/routing"
)

var analyzeFlags struct {
	maxDepth   int
	reportPath string
	jsonOut    bool
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <routing.dot>",
	Short: "Enumerate questionnaire paths and score the question order",
	Long: `Analyze compiles a DOT routing graph, enumerates every reachable answer
sequence and derives per-question statistics: visit counts, average depth,
terminal probability and information gain.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.IntVar(&analyzeFlags.maxDepth, "max-depth", optimizer.DefaultMaxDepth, "Path enumeration depth cap")
	f.StringVarP(&analyzeFlags.reportPath, "report", "o", "", "Write a Markdown report to this path")
	f.BoolVar(&analyzeFlags.jsonOut, "json", false, "Print the analysis as JSON")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	dot, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read routing graph: %w", err)
	}

	graph, err := routing.NewCompiler().Compile(string(dot))
	if err != nil {
		return err
	}

	analysis, err := optimizer.NewAnalyzer(graph, optimizer.WithMaxDepth(analyzeFlags.maxDepth)).Analyze()
	if err != nil {
		return err
	}

	if analyzeFlags.jsonOut {
		data, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else {
		md, err := report.Analysis(analysis)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), md)
	}

	if analyzeFlags.reportPath != "" {
		md, err := report.Analysis(analysis)
		if err != nil {
			return err
		}
		if err := os.WriteFile(analyzeFlags.reportPath, []byte(md), 0644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to: %s\n", analyzeFlags.reportPath)
	}

	return nil
}
