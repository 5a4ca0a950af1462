// MVP command ranks a tournament's MVP candidates.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rift/pkg/types"
)

var mvpMinGames int

var mvpCmd = &cobra.Command{
	Use:   "mvp <tournament>",
	Short: "Rank a tournament's MVP candidates",
	Long: `MVP ranks the players of a tournament by their best single game,
highest KDA first with kill participation as the tiebreak. Players with
fewer than --min-games games are left out.

Example:
  scout mvp "LCK/2024 Season/Summer Season"
  scout mvp "LCK/2024 Season/Summer Season" --min-games 5`,
	Args: cobra.ExactArgs(1),
	RunE: runMVP,
}

func init() {
	mvpCmd.Flags().IntVar(&mvpMinGames, "min-games", 3, "minimum games played to qualify")
}

func runMVP(cmd *cobra.Command, args []string) error {
	candidates, err := client.TournamentMVPCandidates(cmd.Context(), args[0], mvpMinGames)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, mvpRow(c))
	}
	return render("MVP", mvpHeader, rows, candidates)
}

var mvpHeader = []string{"PLAYER", "CHAMPION", "K", "D", "A", "KDA", "KP%", "DATE"}

// mvpRow renders a candidate's best game.
func mvpRow(c types.ScoreboardPlayer) []string {
	return []string{
		c.PlayerName(),
		c.Champion,
		fmtInt(c.Kills),
		fmtInt(c.Deaths),
		fmtInt(c.Assists),
		fmtFloat(c.KDA(), 1),
		fmtFloat(c.KillParticipation(), 0),
		fmtDate(c.DateTimeUTC),
	}
}
