package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/elonfeng/subradar/internal/config"
	"github.com/elonfeng/subradar/pkg/blend"
	"github.com/elonfeng/subradar/pkg/subriff"
)

func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			path = "config.yaml"
		}
	}
	return config.Load(path)
}

func runGenerate(jsonOutput, withScores bool, limit int) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if limit <= 0 {
		limit = cfg.Blend.FinalLimit
	}

	client := subriff.NewClient(cfg.API.BaseURL, cfg.API.ParseTimeout())
	engine := blend.NewEngine(client,
		cfg.Blend.SizeFilters,
		cfg.Blend.SortPeriods,
		cfg.Blend.ResultsPerQuery,
		cfg.Blend.TopPerCategory,
		limit,
	)

	ranked := engine.Generate(context.Background())

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ranked)
	}

	if withScores {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SCORE\tSEEN\tSIZE\tSUBREDDIT")
		for _, r := range ranked {
			fmt.Fprintf(w, "%.1f\t%d\t%s\t%s\n", r.Score, r.Appearances, r.SizeFilter, r.Name)
		}
		return w.Flush()
	}

	for _, r := range ranked {
		fmt.Println(r.Name)
	}
	return nil
}
