package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/connectfour-ai/go-connectfour/pkg/cfengine"
	"github.com/connectfour-ai/go-connectfour/pkg/dataset"
	"github.com/connectfour-ai/go-connectfour/pkg/feature"
	"github.com/connectfour-ai/go-connectfour/pkg/mcts"
	"github.com/connectfour-ai/go-connectfour/pkg/selfplay"
)

func newSelfplayCmd() *cobra.Command {
	var preset string
	var games int
	var workers int
	var out string

	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Generate labeled training rows via self-play",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cfengine.Config(cfengine.Preset(preset))
			if err != nil {
				return err
			}
			cfg.Debug = debug

			engine := attachDebugListener(mcts.NewEngine(cfg), cfg.Debug)
			records, stats, err := selfplay.RunMany(context.Background(), engine, games, workers)
			if err != nil {
				return err
			}
			fmt.Printf("%d games: %d/%d/%d (p1/p2/draw)\n", stats.Total(), stats.P1Wins(), stats.P2Wins(), stats.Draws())

			var rows [][]float64
			for _, rec := range records {
				for _, row := range rec.Rows {
					encoded := append([]float64(nil), row.Features...)
					encoded[feature.Width-1] = float64(row.Label)
					rows = append(rows, encoded)
				}
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			return dataset.WriteRows(f, rows)
		},
	}

	cmd.Flags().StringVar(&preset, "preset", string(cfengine.Medium), "engine preset used for both sides")
	cmd.Flags().IntVar(&games, "games", 100, "number of self-play games to generate")
	cmd.Flags().IntVar(&workers, "workers", 4, "number of concurrent self-play workers")
	cmd.Flags().StringVar(&out, "out", "positions.csv", "output path for the training-row stream")
	return cmd
}
