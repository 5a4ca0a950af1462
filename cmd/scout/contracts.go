// Contracts command lists player contracts.
package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rift/pkg/types"
)

var (
	contractPlayer   string
	contractTeam     string
	contractActive   bool
	contractExpiring int
	contractRemovals bool
)

var contractsCmd = &cobra.Command{
	Use:   "contracts",
	Short: "List player contracts",
	Long: `Contracts lists contract records, newest expiry first. Removal
markers are excluded unless --removals asks for them.

Example:
  scout contracts --team T1
  scout contracts --player Faker
  scout contracts --team T1 --active
  scout contracts --expiring 90
  scout contracts --team T1 --removals`,
	RunE: runContracts,
}

func init() {
	contractsCmd.Flags().StringVar(&contractPlayer, "player", "", "filter by player")
	contractsCmd.Flags().StringVar(&contractTeam, "team", "", "filter by team")
	contractsCmd.Flags().BoolVar(&contractActive, "active", false, "only contracts ending today or later")
	contractsCmd.Flags().IntVar(&contractExpiring, "expiring", 0, "only contracts expiring within N days")
	contractsCmd.Flags().BoolVar(&contractRemovals, "removals", false, "only removal markers")
	contractsCmd.MarkFlagsMutuallyExclusive("active", "expiring", "removals")
}

func runContracts(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var (
		contracts []types.Contract
		err       error
	)
	switch {
	case contractRemovals:
		contracts, err = client.ContractRemovals(ctx, contractTeam)
	case contractExpiring > 0:
		contracts, err = client.ExpiringContracts(ctx, contractExpiring, contractTeam)
	case contractActive:
		contracts, err = client.ActiveContracts(ctx, contractTeam)
	default:
		contracts, err = client.Contracts(ctx, types.ContractFilter{
			Player: contractPlayer,
			Team:   contractTeam,
		})
	}
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	rows := make([][]string, 0, len(contracts))
	for _, c := range contracts {
		rows = append(rows, contractRow(c, now))
	}
	return render("Contracts", contractHeader, rows, contracts)
}

var contractHeader = []string{"PLAYER", "TEAM", "ENDS", "DAYS LEFT", "REMOVAL"}

func contractRow(c types.Contract, now time.Time) []string {
	return []string{
		c.Player,
		c.Team,
		fmtDate(c.ContractEnd),
		fmtInt(c.DaysUntilExpiry(now)),
		fmtBool(c.IsRemoval),
	}
}
