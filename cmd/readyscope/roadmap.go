package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/readyscope/readyscope/pkg/roadmap"
	"github.com/readyscope/readyscope/pkg/scoring"
)

func newRoadmapCmd() *cobra.Command {
	var (
		inputPath  string
		configPath string
		outputFmt  string
	)

	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Build a phased transformation roadmap",
		Long:  `Scores the assessment, analyzes gaps, and lays out a four-phase transformation plan.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoadmap(inputPath, configPath, outputFmt)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to assessment responses file (required)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runRoadmap(inputPath, configPath, outputFmt string) error {
	_, result, _, err := scoreAssessment(inputPath, configPath, "")
	if err != nil {
		return err
	}

	gaps := scoring.AnalyzeGaps(result)
	rm := roadmap.Build(result, gaps)

	if outputFmt == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rm)
	}

	printRoadmap(rm, result)
	return nil
}

func printRoadmap(rm *roadmap.Roadmap, result *scoring.ScoreResult) {
	fmt.Printf("Transformation roadmap — %s (%s)\n", rm.Organization, rm.Band)
	fmt.Printf("Total duration: %d weeks (~%d months estimated)\n\n", rm.TotalWeeks, result.TimelineMonths)

	for _, phase := range rm.Phases {
		fmt.Printf("%s (%d weeks)\n", phase.Name, phase.DurationWeeks)
		if len(phase.Focus) > 0 {
			fmt.Printf("  Focus: %s\n", strings.Join(phase.Focus, ", "))
		}
		for _, act := range phase.Activities {
			fmt.Printf("  - %s\n", act)
		}
		fmt.Println()
	}

	for _, h := range rm.Horizons {
		if len(h.Items) == 0 {
			continue
		}
		fmt.Printf("%s horizon:\n", capitalize(h.Name))
		for _, item := range h.Items {
			fmt.Printf("  - %s\n", item)
		}
		fmt.Println()
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
