package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/connectfour-ai/go-connectfour/pkg/dataset"
	"github.com/connectfour-ai/go-connectfour/pkg/tree"
)

func newEvaluateCmd() *cobra.Command {
	var modelPath string
	var dataPath string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a persisted bagging model against a row stream",
		RunE: func(cmd *cobra.Command, args []string) error {
			modelBytes, err := os.ReadFile(modelPath)
			if err != nil {
				return err
			}
			ensemble := &tree.BaggingEnsemble{}
			if err := ensemble.UnmarshalBinary(modelBytes); err != nil {
				return err
			}

			f, err := os.Open(dataPath)
			if err != nil {
				return err
			}
			defer f.Close()
			rows, err := dataset.ReadRows(f)
			if err != nil {
				return err
			}

			var correct int
			for _, row := range rows {
				pred, _ := ensemble.Predict(row)
				if float64(pred) == row[len(row)-1] {
					correct++
				}
			}
			fmt.Printf("accuracy on %d rows: %.4f\n", len(rows), float64(correct)/float64(len(rows)))
			return nil
		},
	}

	cmd.Flags().StringVar(&modelPath, "model", "bagging.gob", "path to a persisted model")
	cmd.Flags().StringVar(&dataPath, "data", "positions.csv", "row stream to evaluate against")
	return cmd
}
