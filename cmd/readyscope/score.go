package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/readyscope/readyscope/pkg/scoring"
)

func newScoreCmd() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute a weighted readiness score from raw dimension scores",
		Long: `Reads a JSON file of pre-scored dimensions (name, raw_score, weight) and
prints the weighted total with its readiness band.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(inputPath)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to dimension scores JSON file (required)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runScore(inputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	var dimensions []scoring.WeightedScore
	if err := json.Unmarshal(data, &dimensions); err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}

	total, err := scoring.WeightedTotal(dimensions)
	if err != nil {
		return err
	}
	band, err := scoring.Categorize(total, scoring.DefaultBands())
	if err != nil {
		return err
	}

	fmt.Printf("Readiness score: %.1f/100\n", total)
	fmt.Printf("Band: %s\n", band)
	return nil
}
