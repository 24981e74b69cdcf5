package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/awmpietro/golang-aiact-compliance-case/internal/catalog"
)

var convertFlags struct {
	title   string
	version string
	source  string
}

var convertCmd = &cobra.Command{
	Use:   "convert <checker.json> <catalog.yaml>",
	Short: "Convert an upstream checker JSON document into a YAML catalog",
	Args:  cobra.ExactArgs(2),
	RunE:  runConvert,
}

func init() {
	f := convertCmd.Flags()
	f.StringVar(&convertFlags.title, "title", "EU AI Act Compliance Checker", "Catalog title")
	f.StringVar(&convertFlags.version, "set-version", "1.0", "Catalog version")
	f.StringVar(&convertFlags.source, "source", "", "Source attribution")
}

func runConvert(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read checker JSON: %w", err)
	}

	out, err := catalog.Convert(data, catalog.Metadata{
		Title:   convertFlags.title,
		Version: convertFlags.version,
		Source:  convertFlags.source,
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(args[1], out, 0644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Catalog written to: %s\n", args[1])
	return nil
}
