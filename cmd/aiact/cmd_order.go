package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/awmpietro/golang-aiact-compliance-case/internal/decision"
	"github.com/awmpietro/golang-aiact-compliance-case/internal/optimizer"
)

var orderFlags struct {
	catalogPath string
}

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Print the recommended greedy question order",
	RunE:  runOrder,
}

func init() {
	orderCmd.Flags().StringVar(&orderFlags.catalogPath, "catalog", "", "Question catalog YAML (default: built-in EU AI Act set)")
}

func runOrder(cmd *cobra.Command, args []string) error {
	engine, err := buildEngine(orderFlags.catalogPath, 0)
	if err != nil {
		return err
	}

	ordered := optimizer.GreedyOrder(engine.Questions(), decision.NewState())
	for i, q := range ordered {
		fmt.Fprintf(cmd.OutOrStdout(), "%2d. %-4s score=%.4f ig=%.4f p_term=%.2f\n",
			i+1, q.ID, optimizer.Score(q), q.InformationGain, q.TerminalProbability)
	}
	return nil
}
