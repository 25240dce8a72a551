package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/connectfour-ai/go-connectfour/pkg/cfengine"
	"github.com/connectfour-ai/go-connectfour/pkg/game"
	"github.com/connectfour-ai/go-connectfour/pkg/mcts"
)

func newPlayCmd() *cobra.Command {
	var preset string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game against the MCTS engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cfengine.Config(cfengine.Preset(preset))
			if err != nil {
				return err
			}
			cfg.Debug = debug
			return runPlay(cfg)
		},
	}

	cmd.Flags().StringVar(&preset, "preset", string(cfengine.Medium), "difficulty preset: easy, medium, hard")
	return cmd
}

func runPlay(cfg mcts.EngineConfig) error {
	engine := attachDebugListener(mcts.NewEngine(cfg), cfg.Debug)
	state := game.New()
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	for !state.IsOver() {
		fmt.Print(renderBoard(state))

		if state.Turn == 1 {
			col, err := promptColumn(reader, state)
			if err != nil {
				return err
			}
			if _, err := state.Play(col); err != nil {
				fmt.Println(err)
				continue
			}
			continue
		}

		fmt.Println("engine is thinking...")
		col, _, err := engine.Search(ctx, state)
		if err != nil {
			return err
		}
		if _, err := state.Play(col); err != nil {
			return err
		}
		fmt.Printf("engine plays column %d\n", col)
	}

	fmt.Print(renderBoard(state))
	switch state.Win {
	case 1:
		fmt.Println("you win!")
	case -1:
		fmt.Println("the engine wins.")
	default:
		fmt.Println("draw.")
	}
	return nil
}

func promptColumn(reader *bufio.Reader, state *game.State) (int, error) {
	for {
		fmt.Print("your move (column 0-6): ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, err
		}
		col, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Println("enter a column number")
			continue
		}
		legal := false
		for _, m := range state.LegalMoves() {
			if m == col {
				legal = true
			}
		}
		if !legal {
			fmt.Println("that column isn't open")
			continue
		}
		return col, nil
	}
}
