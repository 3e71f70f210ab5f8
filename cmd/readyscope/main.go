// Package main provides the readyscope CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "readyscope",
		Short: "AI transformation readiness assessment toolkit",
		Long: `Readyscope scores organizational AI readiness across weighted dimensions,
builds business cases and transformation roadmaps, and renders reports.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newAssessCmd(),
		newScoreCmd(),
		newCaseCmd(),
		newRoadmapCmd(),
		newRenderCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
