package cmd

import (
	"github.com/katalvlaran/trueskill"
	"github.com/spf13/cobra"
)

// All linker flags will be set by release infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Environment flag values, resolved into an Env per invocation.
var (
	flagMu       float64
	flagSigma    float64
	flagBeta     float64
	flagTau      float64
	flagDrawProb float64
)

// Subcommand flag values.
var (
	flagRanks   string
	flagDraw    bool
	flagWeights string
)

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:   "trueskill",
	Short: "Rate multiplayer matches with the TrueSkill model.",
	Long: `trueskill updates Bayesian skill ratings from match outcomes and
scores how competitive a hypothetical match would be.

Teams are positional arguments; players within a team are joined
with '+', each player written as mu,sigma or '-' for a fresh rating:

  trueskill rate "25,8.3+30,6" "28,5"
  trueskill quality - -`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// envFromFlags builds the rating environment from the persistent flags.
func envFromFlags() trueskill.Env {
	env := trueskill.DefaultEnv()
	env.Mu = flagMu
	env.Sigma = flagSigma
	env.Beta = flagBeta
	env.Tau = flagTau
	env.DrawProbability = flagDrawProb

	return env
}
