// Command connectfour plays, self-plays, trains, and evaluates the
// Connect-Four MCTS and decision-tree pipeline, in the spf13/cobra CLI style
// grounded on the rest of the example pack's CLI tooling (the teacher
// library's own demos call mcts.DefaultLimits() straight from func main;
// this module instead exposes one multi-command binary, since spec.md names
// four distinct operator workflows rather than one demo loop).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/connectfour-ai/go-connectfour/internal/logx"
)

var debug bool

func main() {
	root := &cobra.Command{
		Use:   "connectfour",
		Short: "Connect-Four MCTS engine and decision-tree trainer",
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging and search-stats callbacks")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logx.SetDebug(debug)
	}

	root.AddCommand(newPlayCmd())
	root.AddCommand(newSelfplayCmd())
	root.AddCommand(newTrainCmd())
	root.AddCommand(newEvaluateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
