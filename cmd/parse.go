package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/trueskill"
)

// Team argument syntax: players joined with '+', each player either
// "mu,sigma", "mu" (env sigma) or "-" (fresh env rating). Weight flags
// use the same shape with teams joined by '/'.

// parseTeams converts the positional arguments into rating groups.
func parseTeams(env trueskill.Env, args []string) ([][]trueskill.Rating, error) {
	teams := make([][]trueskill.Rating, len(args))
	for i, arg := range args {
		players := strings.Split(arg, "+")
		teams[i] = make([]trueskill.Rating, len(players))
		for j, p := range players {
			r, err := parsePlayer(env, strings.TrimSpace(p))
			if err != nil {
				return nil, fmt.Errorf("team %d player %d: %w", i+1, j+1, err)
			}
			teams[i][j] = r
		}
	}

	return teams, nil
}

// parsePlayer reads one player spec.
func parsePlayer(env trueskill.Env, s string) (trueskill.Rating, error) {
	if s == "" || s == "-" {
		return env.NewRating(), nil
	}

	muStr, sigmaStr, withSigma := strings.Cut(s, ",")
	mu, err := strconv.ParseFloat(strings.TrimSpace(muStr), 64)
	if err != nil {
		return trueskill.Rating{}, fmt.Errorf("bad mu %q: %w", muStr, err)
	}
	sigma := env.Sigma
	if withSigma {
		if sigma, err = strconv.ParseFloat(strings.TrimSpace(sigmaStr), 64); err != nil {
			return trueskill.Rating{}, fmt.Errorf("bad sigma %q: %w", sigmaStr, err)
		}
	}

	return trueskill.NewRating(mu, sigma)
}

// parseRanks reads the --ranks flag, one integer per team.
func parseRanks(s string, teams int) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != teams {
		return nil, fmt.Errorf("got %d ranks for %d teams", len(parts), teams)
	}
	ranks := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad rank %q: %w", p, err)
		}
		ranks[i] = n
	}

	return ranks, nil
}

// parseWeights reads the --weights flag, shaped like the teams.
func parseWeights(s string, teams [][]trueskill.Rating) ([][]float64, error) {
	groups := strings.Split(s, "/")
	if len(groups) != len(teams) {
		return nil, fmt.Errorf("got %d weight groups for %d teams", len(groups), len(teams))
	}
	out := make([][]float64, len(groups))
	for i, g := range groups {
		parts := strings.Split(g, "+")
		if len(parts) != len(teams[i]) {
			return nil, fmt.Errorf("got %d weights for %d players in team %d", len(parts), len(teams[i]), i+1)
		}
		out[i] = make([]float64, len(parts))
		for j, p := range parts {
			w, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("bad weight %q: %w", p, err)
			}
			out[i][j] = w
		}
	}

	return out, nil
}
