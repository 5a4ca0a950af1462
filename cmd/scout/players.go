// Players command lists players or looks one up by name.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rift/pkg/types"
)

var (
	playerTeam      string
	playerCountry   string
	playerResidency string
	playerRole      string
)

var playersCmd = &cobra.Command{
	Use:   "players [name]",
	Short: "List players or look up one by name",
	Long: `Players lists player pages, optionally narrowed by team, country,
residency, or role, or looks up a single player by exact in-game name.

Example:
  scout players Faker
  scout players --team T1
  scout players --country "South Korea" --role Mid`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlayers,
}

func init() {
	playersCmd.Flags().StringVar(&playerTeam, "team", "", "filter by current team")
	playersCmd.Flags().StringVar(&playerCountry, "country", "", "filter by country")
	playersCmd.Flags().StringVar(&playerResidency, "residency", "", "filter by residency region")
	playersCmd.Flags().StringVar(&playerRole, "role", "", "filter by role (Top, Jungle, Mid, Bot, Support)")
}

func runPlayers(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if len(args) == 1 {
		player, err := client.PlayerByName(ctx, args[0])
		if err != nil {
			return err
		}
		if player == nil {
			return userErrorf("player %q not found", args[0])
		}
		return render("Players", playerHeader, [][]string{playerRow(*player)}, player)
	}

	players, err := client.Players(ctx, types.PlayerFilter{
		Team:      playerTeam,
		Country:   playerCountry,
		Residency: playerResidency,
		Role:      playerRole,
	})
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(players))
	for _, p := range players {
		rows = append(rows, playerRow(p))
	}
	return render("Players", playerHeader, rows, players)
}

var playerHeader = []string{"ID", "NAME", "COUNTRY", "TEAM", "ROLE", "RESIDENCY", "STATUS"}

func playerRow(p types.Player) []string {
	return []string{
		p.ID,
		p.Name,
		p.Country,
		p.Team,
		p.Role,
		p.Residency,
		string(p.Status()),
	}
}
