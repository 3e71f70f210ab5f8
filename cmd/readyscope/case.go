package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/readyscope/readyscope/pkg/businesscase"
	"github.com/readyscope/readyscope/pkg/report"
)

func newCaseCmd() *cobra.Command {
	var (
		inputPath   string
		configPath  string
		initiative  string
		budget      float64
		objectives  []string
		challenges  []string
		outputFmt   string
		sensitivity bool
	)

	cmd := &cobra.Command{
		Use:   "case",
		Short: "Generate an AI investment business case",
		Long: `Scores the assessment, then builds a business case with financial
projections, risks, and scenario analysis.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCase(caseOpts{
				inputPath:   inputPath,
				configPath:  configPath,
				initiative:  initiative,
				budget:      budget,
				objectives:  objectives,
				challenges:  challenges,
				outputFmt:   outputFmt,
				sensitivity: sensitivity,
			})
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to assessment responses file (required)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file")
	cmd.Flags().StringVar(&initiative, "initiative", "Enterprise AI Transformation", "Initiative name")
	cmd.Flags().Float64Var(&budget, "budget", 0, "Investment budget (default: from config)")
	cmd.Flags().StringSliceVar(&objectives, "objectives", nil, "Strategic objectives")
	cmd.Flags().StringSliceVar(&challenges, "challenges", nil, "Current challenges")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&sensitivity, "sensitivity", false, "Include sensitivity analysis (json output only)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

type caseOpts struct {
	inputPath   string
	configPath  string
	initiative  string
	budget      float64
	objectives  []string
	challenges  []string
	outputFmt   string
	sensitivity bool
}

func runCase(opts caseOpts) error {
	a, result, cfg, err := scoreAssessment(opts.inputPath, opts.configPath, "")
	if err != nil {
		return err
	}

	budget := opts.budget
	if budget <= 0 {
		budget = cfg.Case.Budget
	}

	industry := result.Industry
	if industry == "" {
		industry = cfg.Case.Industry
	}

	// Critical gaps double as current challenges when none are given.
	challenges := opts.challenges
	if len(challenges) == 0 {
		challenges = result.CriticalGaps
	}

	gen := businesscase.NewGenerator(cfg.Case.DiscountRate)
	c, err := gen.Generate(businesscase.Input{
		Organization: result.Organization,
		Initiative:   opts.initiative,
		Industry:     industry,
		Size:         a.Profile.Size,
		Budget:       budget,
		Objectives:   opts.objectives,
		Challenges:   challenges,
	})
	if err != nil {
		return err
	}

	if opts.outputFmt == "json" {
		out := struct {
			*businesscase.Case
			Sensitivity *businesscase.Sensitivity `json:"sensitivity,omitempty"`
		}{Case: c}
		if opts.sensitivity {
			out.Sensitivity = gen.Analyze(c)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	summary, err := report.Fill(report.ExecutiveSummaryTemplate, report.CaseValues(c))
	if err != nil {
		return fmt.Errorf("rendering executive summary: %w", err)
	}
	fmt.Print(summary)
	return nil
}
