package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/trueskill"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

// rateCmd updates ratings from one match outcome.
var rateCmd = &cobra.Command{
	Use:   "rate TEAM TEAM [TEAM...]",
	Short: "Update ratings from one match outcome.",
	Long: `Rate one match between two or more teams and print the updated
ratings. Teams are listed best to worst unless --ranks overrides the
order; equal ranks mean the teams tied.

Examples:
  trueskill rate - -                        # two newcomers, first won
  trueskill rate "25,8.3+30,6" "28,5"       # 2 vs 1
  trueskill rate - - - --ranks 1,0,1        # middle team won
  trueskill rate - "-+-" --weights "1/0.5+1"`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env := envFromFlags()
		teams, err := parseTeams(env, args)
		if err != nil {
			return err
		}

		var ranks []int
		switch {
		case flagDraw:
			ranks = make([]int, len(teams))
		case flagRanks != "":
			if ranks, err = parseRanks(flagRanks, len(teams)); err != nil {
				return err
			}
		}

		var opts *trueskill.RateOptions
		if flagWeights != "" {
			weights, werr := parseWeights(flagWeights, teams)
			if werr != nil {
				return werr
			}
			opts = &trueskill.RateOptions{Weights: weights}
		}

		rated, err := env.Rate(teams, ranks, opts)
		if err != nil {
			return err
		}

		return writeRatingTable(cmd.OutOrStdout(), env, teams, rated)
	},
}

// writeRatingTable renders the before/after ratings, one row per
// player, with the conservative exposure of the new rating.
func writeRatingTable(w io.Writer, env trueskill.Env, before, after [][]trueskill.Rating) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Team", "Player", "Mu", "Sigma", "New Mu", "New Sigma", "Expose"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i := range before {
		for j := range before[i] {
			data = append(data, []string{
				strconv.Itoa(i + 1),
				strconv.Itoa(j + 1),
				fmt.Sprintf("%.3f", before[i][j].Mu),
				fmt.Sprintf("%.3f", before[i][j].Sigma),
				fmt.Sprintf("%.3f", after[i][j].Mu),
				fmt.Sprintf("%.3f", after[i][j].Sigma),
				fmt.Sprintf("%.3f", env.Expose(after[i][j])),
			})
		}
	}

	if err := table.Bulk(data); err != nil {
		return err
	}

	return table.Render()
}
