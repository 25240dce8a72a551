package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/connectfour-ai/go-connectfour/pkg/dataset"
	"github.com/connectfour-ai/go-connectfour/pkg/tree"
)

func newTrainCmd() *cobra.Command {
	var in string
	var model string

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a bagging ensemble of pruned rule sets on a row stream",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(in)
			if err != nil {
				return err
			}
			defer f.Close()

			rows, err := dataset.ReadRows(f)
			if err != nil {
				return err
			}

			attrs := tree.DefaultAttributes()
			ensemble := tree.NewBaggingEnsemble(attrs, tree.ErrorClass, rows)
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			ensemble.Train(rng)

			metrics, err := ensemble.TrainMetrics()
			if err != nil {
				return err
			}
			fmt.Printf("accuracy=%.4f precision=%.4f recall=%.4f f1=%.4f\n",
				metrics.Accuracy, metrics.Precision, metrics.Recall, metrics.F1)

			ranked, err := ensemble.RankedFeatureImportance()
			if err != nil {
				return err
			}
			fmt.Println("top features:", ranked[:min(5, len(ranked))])

			return saveModel(model, ensemble)
		},
	}

	cmd.Flags().StringVar(&in, "in", "positions.csv", "input training-row stream")
	cmd.Flags().StringVar(&model, "model", "bagging.gob", "output path for the persisted model")
	return cmd
}

func saveModel(path string, ensemble *tree.BaggingEnsemble) error {
	data, err := ensemble.MarshalBinary()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
