package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		jsonOutput bool
		withScores bool
		limit      int
	)

	root := &cobra.Command{
		Use:   "subradar",
		Short: "Generate a blended list of trending subreddits from subriff.com",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(jsonOutput, withScores, limit)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
	root.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	root.Flags().BoolVar(&withScores, "scores", false, "show a table with scores instead of bare names")
	root.Flags().IntVar(&limit, "limit", 0, "final list size (default: from config)")

	return root
}
