// Tournaments, regions, and games commands.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rift/pkg/types"
)

var (
	tournamentRegion   string
	tournamentYear     string
	tournamentLevel    string
	tournamentPlayoffs bool
	tournamentRegular  bool
)

var tournamentsCmd = &cobra.Command{
	Use:   "tournaments",
	Short: "List tournaments",
	Long: `Tournaments lists competitive events with their league short names.
Main-stage events only by default; pass --level "" for every level.

Example:
  scout tournaments --region Korea --year 2024
  scout tournaments --region EMEA --playoffs
  scout tournaments --level Secondary`,
	RunE: runTournaments,
}

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List competitive regions",
	RunE:  runRegions,
}

var gamesCmd = &cobra.Command{
	Use:   "games <overview-page>",
	Short: "List a tournament's games in play order",
	Long: `Games lists every game of a tournament, identified by its overview
page as printed by the tournaments command.

Example:
  scout games "LCK/2024 Season/Summer Season"`,
	Args: cobra.ExactArgs(1),
	RunE: runGames,
}

func init() {
	tournamentsCmd.Flags().StringVar(&tournamentRegion, "region", "", "filter by region")
	tournamentsCmd.Flags().StringVar(&tournamentYear, "year", "", "filter by year, e.g. 2024")
	tournamentsCmd.Flags().StringVar(&tournamentLevel, "level", "Primary", "filter by tournament level; \"\" for all levels")
	tournamentsCmd.Flags().BoolVar(&tournamentPlayoffs, "playoffs", false, "only playoff events")
	tournamentsCmd.Flags().BoolVar(&tournamentRegular, "regular", false, "only regular-season events")
	tournamentsCmd.MarkFlagsMutuallyExclusive("playoffs", "regular")
}

func runTournaments(cmd *cobra.Command, args []string) error {
	f := types.TournamentFilter{
		Region: tournamentRegion,
		Year:   tournamentYear,
		Level:  tournamentLevel,
	}
	switch {
	case tournamentPlayoffs:
		f.IsPlayoffs = boolPtr(true)
	case tournamentRegular:
		f.IsPlayoffs = boolPtr(false)
	}

	tournaments, err := client.Tournaments(cmd.Context(), f)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(tournaments))
	for _, t := range tournaments {
		rows = append(rows, tournamentRow(t))
	}
	return render("Tournaments", tournamentHeader, rows, tournaments)
}

func runRegions(cmd *cobra.Command, args []string) error {
	regions, err := client.Regions(cmd.Context())
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(regions))
	for _, r := range regions {
		rows = append(rows, []string{r})
	}
	return render("Regions", []string{"REGION"}, rows, regions)
}

func runGames(cmd *cobra.Command, args []string) error {
	games, err := client.Games(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(games))
	for _, g := range games {
		rows = append(rows, gameRow(g))
	}
	return render("Games", gameHeader, rows, games)
}

var tournamentHeader = []string{"NAME", "REGION", "LEAGUE", "LEVEL", "START", "PLAYOFFS", "OVERVIEW PAGE"}

func tournamentRow(t types.Tournament) []string {
	return []string{
		t.Name,
		t.Region,
		t.LeagueShort,
		t.TournamentLevel,
		fmtDate(t.DateStart),
		fmtBool(t.IsPlayoffs),
		t.OverviewPage,
	}
}

var gameHeader = []string{"DATE", "TEAM 1", "TEAM 2", "SCORE", "WINNER", "LENGTH", "PATCH"}

func gameRow(g types.Game) []string {
	return []string{
		fmtDateTime(g.DateTimeUTC),
		g.Team1,
		g.Team2,
		fmtRecord(g.Team1Score, g.Team2Score),
		g.WinnerName(),
		fmtFloat(g.GamelengthNumber, 1),
		g.Patch,
	}
}

func boolPtr(v bool) *bool { return &v }
