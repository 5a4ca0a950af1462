// Scoreboard command lists per-player game lines.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rift/pkg/types"
)

var (
	scoreboardTournament string
	scoreboardPlayer     string
	scoreboardTeam       string
	scoreboardChampion   string
	scoreboardGame       string
	scoreboardRole       string
	scoreboardLimit      int
)

var scoreboardCmd = &cobra.Command{
	Use:   "scoreboard",
	Short: "List per-player scoreboard lines",
	Long: `Scoreboard lists individual player performances, newest first.
Filters combine; --game shows one game's full scoreboard.

Example:
  scout scoreboard --player Faker --limit 20
  scout scoreboard --tournament "LCK/2024 Season/Summer Season"
  scout scoreboard --champion Azir --role Mid
  scout scoreboard --game "LCK/2024 Season/Summer Season_Week 1_1_1"`,
	RunE: runScoreboard,
}

func init() {
	scoreboardCmd.Flags().StringVar(&scoreboardTournament, "tournament", "", "filter by tournament overview page")
	scoreboardCmd.Flags().StringVar(&scoreboardPlayer, "player", "", "filter by player")
	scoreboardCmd.Flags().StringVar(&scoreboardTeam, "team", "", "filter by team")
	scoreboardCmd.Flags().StringVar(&scoreboardChampion, "champion", "", "filter by champion")
	scoreboardCmd.Flags().StringVar(&scoreboardGame, "game", "", "one game by its game ID")
	scoreboardCmd.Flags().StringVar(&scoreboardRole, "role", "", "filter by role (Top, Jungle, Mid, Bot, Support)")
	scoreboardCmd.Flags().IntVar(&scoreboardLimit, "limit", 0, "maximum number of rows (0 = no limit)")
}

func runScoreboard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var (
		lines []types.ScoreboardPlayer
		err   error
	)
	if scoreboardGame != "" {
		lines, err = client.GameScoreboard(ctx, scoreboardGame)
	} else {
		lines, err = client.ScoreboardPlayers(ctx, types.ScoreboardFilter{
			Tournament: scoreboardTournament,
			Player:     scoreboardPlayer,
			Team:       scoreboardTeam,
			Champion:   scoreboardChampion,
			Role:       scoreboardRole,
			Limit:      scoreboardLimit,
		})
	}
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, scoreboardRow(l))
	}
	return render("Scoreboard", scoreboardHeader, rows, lines)
}

var scoreboardHeader = []string{"DATE", "PLAYER", "CHAMPION", "K", "D", "A", "KDA", "KP%", "TEAM", "W/L", "GRADE"}

func scoreboardRow(l types.ScoreboardPlayer) []string {
	return []string{
		fmtDate(l.DateTimeUTC),
		l.PlayerName(),
		l.Champion,
		fmtInt(l.Kills),
		fmtInt(l.Deaths),
		fmtInt(l.Assists),
		fmtFloat(l.KDA(), 1),
		fmtFloat(l.KillParticipation(), 0),
		l.Team,
		fmtWinLoss(l.DidWin()),
		string(l.PerformanceGrade()),
	}
}

func fmtWinLoss(v *bool) string {
	if v == nil {
		return ""
	}
	if *v {
		return "W"
	}
	return "L"
}
