package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/readyscope/readyscope/pkg/assessment"
	"github.com/readyscope/readyscope/pkg/config"
	"github.com/readyscope/readyscope/pkg/report"
	"github.com/readyscope/readyscope/pkg/scoring"
)

func newAssessCmd() *cobra.Command {
	var (
		inputPath  string
		configPath string
		orgName    string
		outputFmt  string
	)

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Score an organization's AI readiness",
		Long:  `Loads assessment responses, scores all readiness dimensions, and renders the result.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssess(inputPath, configPath, orgName, outputFmt)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to assessment responses file (required)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: discover .readyscope/config.yaml)")
	cmd.Flags().StringVar(&orgName, "org", "", "Override the organization name from the input file")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text, json, or markdown")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runAssess(inputPath, configPath, orgName, outputFmt string) error {
	_, result, _, err := scoreAssessment(inputPath, configPath, orgName)
	if err != nil {
		return err
	}

	return report.ForFormat(outputFmt).Render(os.Stdout, result)
}

// scoreAssessment loads an assessment file, applies any discovered config,
// and scores it. Shared by the assess, case, and roadmap commands.
func scoreAssessment(inputPath, configPath, orgName string) (*assessment.Assessment, *scoring.ScoreResult, *config.Config, error) {
	a, err := assessment.Load(inputPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if orgName != "" {
		a.Profile.Name = orgName
	}

	cfg, err := resolveConfig(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	engine := scoring.NewEngine(cfg.EngineOptions()...)
	result, err := engine.Score(a)
	if err != nil {
		return nil, nil, nil, err
	}
	return a, result, cfg, nil
}

func resolveConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		configPath = config.FindConfigFile(cwd)
	}
	if configPath == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(configPath)
}
