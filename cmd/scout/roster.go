// Roster command lists roster changes.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rift/pkg/types"
)

var (
	rosterTeam        string
	rosterPlayer      string
	rosterTournament  string
	rosterDirection   string
	rosterSince       string
	rosterUntil       string
	rosterDays        int
	rosterJoins       bool
	rosterLeaves      bool
	rosterRetirements bool
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "List roster changes",
	Long: `Roster lists roster moves, newest first: players joining or leaving
teams, role switches, and retirements.

Example:
  scout roster --team T1
  scout roster --player Faker
  scout roster --team T1 --days 30
  scout roster --team T1 --joins
  scout roster --retirements`,
	RunE: runRoster,
}

func init() {
	rosterCmd.Flags().StringVar(&rosterTeam, "team", "", "filter by team")
	rosterCmd.Flags().StringVar(&rosterPlayer, "player", "", "filter by player")
	rosterCmd.Flags().StringVar(&rosterTournament, "tournament", "", "filter by tournament (substring)")
	rosterCmd.Flags().StringVar(&rosterDirection, "direction", "", "filter by direction (Join, Leave)")
	rosterCmd.Flags().StringVar(&rosterSince, "since", "", "changes on or after this date (YYYY-MM-DD)")
	rosterCmd.Flags().StringVar(&rosterUntil, "until", "", "changes on or before this date (YYYY-MM-DD)")
	rosterCmd.Flags().IntVar(&rosterDays, "days", 0, "only changes from the last N days")
	rosterCmd.Flags().BoolVar(&rosterJoins, "joins", false, "only joins")
	rosterCmd.Flags().BoolVar(&rosterLeaves, "leaves", false, "only leaves")
	rosterCmd.Flags().BoolVar(&rosterRetirements, "retirements", false, "only retirements")
	rosterCmd.MarkFlagsMutuallyExclusive("joins", "leaves", "retirements")
}

func runRoster(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var (
		changes []types.RosterChange
		err     error
	)
	switch {
	case rosterRetirements:
		changes, err = client.Retirements(ctx)
	case rosterJoins:
		changes, err = client.RosterJoins(ctx, rosterTeam)
	case rosterLeaves:
		changes, err = client.RosterLeaves(ctx, rosterTeam)
	case rosterDays > 0:
		changes, err = client.RecentRosterChanges(ctx, rosterDays, rosterTeam)
	default:
		changes, err = client.RosterChanges(ctx, types.RosterChangeFilter{
			Team:       rosterTeam,
			Player:     rosterPlayer,
			Tournament: rosterTournament,
			Direction:  rosterDirection,
			Since:      rosterSince,
			Until:      rosterUntil,
		})
	}
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(changes))
	for _, rc := range changes {
		rows = append(rows, rosterChangeRow(rc))
	}
	return render("RosterChanges", rosterChangeHeader, rows, changes)
}

var rosterChangeHeader = []string{"DATE", "PLAYER", "TEAM", "DIRECTION", "ROLE", "STATUS"}

func rosterChangeRow(rc types.RosterChange) []string {
	return []string{
		fmtDate(rc.DateSort),
		rc.Player,
		rc.Team,
		string(rc.DirectionCode()),
		rc.RoleDisplay,
		rc.Status,
	}
}
