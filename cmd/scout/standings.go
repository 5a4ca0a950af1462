// Standings command lists tournament standings.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rift/pkg/types"
)

var standingsTeam string

var standingsCmd = &cobra.Command{
	Use:   "standings [overview-page]",
	Short: "List tournament standings",
	Long: `Standings lists a tournament table by place, or every placement of
one team across tournaments.

Example:
  scout standings "LCK/2024 Season/Summer Season"
  scout standings --team T1`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStandings,
}

func init() {
	standingsCmd.Flags().StringVar(&standingsTeam, "team", "", "filter by team")
}

func runStandings(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	f := types.StandingFilter{Team: standingsTeam}
	if len(args) == 1 {
		f.OverviewPage = args[0]
	}
	if f.OverviewPage == "" && f.Team == "" {
		return userErrorf("pass a tournament overview page or --team")
	}

	standings, err := client.Standings(ctx, f)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(standings))
	for _, s := range standings {
		rows = append(rows, standingRow(s))
	}
	return render("Standings", standingHeader, rows, standings)
}

var standingHeader = []string{"PLACE", "TEAM", "SERIES", "GAMES", "SERIES%", "POINTS", "STREAK"}

func standingRow(s types.Standing) []string {
	return []string{
		fmtInt(s.Place),
		s.Team,
		fmtRecord(s.WinSeries, s.LossSeries),
		fmtRecord(s.WinGames, s.LossGames),
		fmtFloat(s.SeriesWinRate(), 0),
		fmtInt(s.Points),
		fmtStreak(s.Streak, s.StreakDirection),
	}
}

// fmtRecord renders a win-loss pair as "W-L", empty when both counts
// are unknown.
func fmtRecord(wins, losses *int) string {
	if wins == nil && losses == nil {
		return ""
	}
	return fmt.Sprintf("%s-%s", fmtInt(wins), fmtInt(losses))
}

func fmtStreak(streak *int, direction string) string {
	if streak == nil {
		return ""
	}
	return direction + fmtInt(streak)
}
