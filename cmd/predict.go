package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/talentsift/talentsift/config"
	"github.com/talentsift/talentsift/internal/evaluation"
)

func predictCMD() *cobra.Command {
	var cfgPath string
	var testPath string
	var outPath string
	var predict = &cobra.Command{
		Use:   "predict",
		Short: "Generate a prediction CSV for an unlabeled test set (full pipeline)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			svc, err := buildService(cfg)
			if err != nil {
				return err
			}
			if err := evaluation.WritePredictions(cmd.Context(), svc, testPath, outPath); err != nil {
				return err
			}
			log.Printf("saved predictions to %s", outPath)
			return nil
		},
	}
	predict.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (default is .)")
	predict.Flags().StringVar(&testPath, "test", "test.json", "unlabeled test set")
	predict.Flags().StringVar(&outPath, "out", "test_predictions.csv", "output CSV path")

	return predict
}
