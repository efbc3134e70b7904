package cmd

import (
	"github.com/spf13/cobra"
)

// qualityCmd scores a hypothetical match without rating it.
var qualityCmd = &cobra.Command{
	Use:   "quality TEAM TEAM [TEAM...]",
	Short: "Score how competitive a hypothetical match would be.",
	Long: `Estimate the draw probability of a match between the given teams,
a number in (0,1]. Values near the even-match ceiling (~0.447 for two
fresh 1v1 players) mean a competitive pairing; values near 0 mean a
foregone conclusion.

Examples:
  trueskill quality - -
  trueskill quality "25,8.3+30,6" "28,5+24,6"`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env := envFromFlags()
		teams, err := parseTeams(env, args)
		if err != nil {
			return err
		}

		var weights [][]float64
		if flagWeights != "" {
			if weights, err = parseWeights(flagWeights, teams); err != nil {
				return err
			}
		}

		q, err := env.Quality(teams, weights)
		if err != nil {
			return err
		}

		cmd.Printf("match quality: %.3f\n", q)

		return nil
	},
}
