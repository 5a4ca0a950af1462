// Teams command: active rosters, image assets, and name resolution.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rift/pkg/types"
)

var teamsRosterAt string

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "Team rosters, assets, and name resolution",
}

var teamsRosterCmd = &cobra.Command{
	Use:   "roster <team>",
	Short: "Show a team's active roster",
	Long: `Roster shows the players currently on a team, or the roster as of a
past date with --at.

Example:
  scout teams roster T1
  scout teams roster T1 --at 2023-06-01`,
	Args: cobra.ExactArgs(1),
	RunE: runTeamsRoster,
}

var teamsAssetsCmd = &cobra.Command{
	Use:   "assets <team>",
	Short: "Show a team's logo and thumbnail URLs",
	Args:  cobra.ExactArgs(1),
	RunE:  runTeamsAssets,
}

var teamsResolveCmd = &cobra.Command{
	Use:   "resolve <short-name>",
	Short: "Resolve a team abbreviation to its full name",
	Long: `Resolve turns a team abbreviation like "IG" or "RNG" into the full
team name.

Example:
  scout teams resolve GEN`,
	Args: cobra.ExactArgs(1),
	RunE: runTeamsResolve,
}

func init() {
	teamsRosterCmd.Flags().StringVar(&teamsRosterAt, "at", "", "roster as of this date (YYYY-MM-DD)")

	teamsCmd.AddCommand(teamsRosterCmd)
	teamsCmd.AddCommand(teamsAssetsCmd)
	teamsCmd.AddCommand(teamsResolveCmd)
}

func runTeamsRoster(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	team := args[0]

	var (
		roster []types.TeamPlayer
		err    error
	)
	if teamsRosterAt != "" {
		at, parseErr := time.Parse("2006-01-02", teamsRosterAt)
		if parseErr != nil {
			return userErrorf("invalid --at date %q (expected YYYY-MM-DD)", teamsRosterAt)
		}
		roster, err = client.ActiveRosterAt(ctx, team, at)
	} else {
		roster, err = client.ActiveRoster(ctx, team)
	}
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(roster))
	for _, p := range roster {
		rows = append(rows, []string{p.Name, string(p.Role)})
	}
	return render("Roster", []string{"PLAYER", "ROLE"}, rows, roster)
}

func runTeamsAssets(cmd *cobra.Command, args []string) error {
	assets, err := client.TeamAssets(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	rows := [][]string{{assets.LongName, assets.LogoURL, assets.ThumbnailURL}}
	return render("TeamAssets", []string{"NAME", "LOGO", "THUMBNAIL"}, rows, assets)
}

func runTeamsResolve(cmd *cobra.Command, args []string) error {
	long, err := client.LongTeamName(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if long == "" {
		return userErrorf("no team found for %q", args[0])
	}
	fmt.Println(long)
	return nil
}
