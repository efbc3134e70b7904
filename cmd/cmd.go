// Package cmd defines the command-line interface of the trueskill
// calculator.
package cmd

import (
	"github.com/katalvlaran/trueskill"
)

func init() {
	// Add subcommands to the root command
	rootCmd.AddCommand(rateCmd)
	rootCmd.AddCommand(qualityCmd)
	rootCmd.AddCommand(versionCmd)

	// Environment flags shared by rate and quality
	rootCmd.PersistentFlags().Float64Var(&flagMu, "mu", trueskill.DefaultMu, "Prior skill mean of a fresh rating")
	rootCmd.PersistentFlags().Float64Var(&flagSigma, "sigma", trueskill.DefaultSigma, "Prior skill deviation of a fresh rating")
	rootCmd.PersistentFlags().Float64Var(&flagBeta, "beta", trueskill.DefaultBeta, "Performance noise deviation")
	rootCmd.PersistentFlags().Float64Var(&flagTau, "tau", trueskill.DefaultTau, "Per-match skill drift")
	rootCmd.PersistentFlags().Float64Var(&flagDrawProb, "draw-probability", trueskill.DefaultDrawProbability, "Prior draw chance between adjacent teams")

	rateCmd.Flags().StringVar(&flagRanks, "ranks", "", "Comma-separated rank per team, lower is better (default: argument order)")
	rateCmd.Flags().BoolVar(&flagDraw, "draw", false, "Score the whole match as a draw")
	rateCmd.Flags().StringVar(&flagWeights, "weights", "", "Participation weights shaped like the teams, e.g. 1/0.5+1")

	qualityCmd.Flags().StringVar(&flagWeights, "weights", "", "Participation weights shaped like the teams, e.g. 1/0.5+1")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
