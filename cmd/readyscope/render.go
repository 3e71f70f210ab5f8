package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/readyscope/readyscope/pkg/report"
)

func newRenderCmd() *cobra.Command {
	var (
		templatePath string
		valuesPath   string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Fill a report template with values",
		Long: `Reads a template file with {name} placeholders and a JSON values file,
and prints the filled template. Fails if any placeholder has no value.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(templatePath, valuesPath)
		},
	}

	cmd.Flags().StringVar(&templatePath, "template", "", "Path to template file (required)")
	cmd.Flags().StringVar(&valuesPath, "values", "", "Path to JSON values file (required)")
	_ = cmd.MarkFlagRequired("template")
	_ = cmd.MarkFlagRequired("values")

	return cmd
}

func runRender(templatePath, valuesPath string) error {
	tmpl, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("reading template: %w", err)
	}

	data, err := os.ReadFile(valuesPath)
	if err != nil {
		return fmt.Errorf("reading values: %w", err)
	}
	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("parsing values: %w", err)
	}

	out, err := report.Fill(string(tmpl), values)
	if err != nil {
		return err
	}

	fmt.Print(out)
	return nil
}
