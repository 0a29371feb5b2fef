package main

import (
	"github.com/spf13/cobra"

	"github.com/talentsift/talentsift/config"
	"github.com/talentsift/talentsift/internal/evaluation"
	"github.com/talentsift/talentsift/internal/recommend"
)

func evaluateCMD() *cobra.Command {
	var cfgPath string
	var trainPath string
	var k int
	var evaluate = &cobra.Command{
		Use:   "evaluate",
		Short: "Compute mean Recall@K over a labeled train set (pure retrieval, no LLM)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			svc, err := buildService(cfg)
			if err != nil {
				return err
			}
			_, err = evaluation.Evaluate(cmd.Context(), svc, trainPath, k, nil)
			return err
		},
	}
	evaluate.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (default is .)")
	evaluate.Flags().StringVar(&trainPath, "train", "train.json", "labeled train set")
	evaluate.Flags().IntVar(&k, "k", recommend.DefaultRawK, "recall cutoff")

	return evaluate
}
