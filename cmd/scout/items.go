// Items command lists items or looks one up by name.
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rift/pkg/types"
)

var (
	itemTier  string
	itemStats []string
)

var itemsCmd = &cobra.Command{
	Use:   "items [name]",
	Short: "List items or look up one by name",
	Long: `Items lists the item catalogue, optionally narrowed by tier or by
the stat classes an item must provide, or looks up a single item by
exact name.

Example:
  scout items
  scout items "Infinity Edge"
  scout items --tier Legendary
  scout items --stat ad
  scout items --stat armor --stat health`,
	Args: cobra.MaximumNArgs(1),
	RunE: runItems,
}

func init() {
	itemsCmd.Flags().StringVar(&itemTier, "tier", "", "filter by tier (Starter, Basic, Epic, Legendary, ...)")
	itemsCmd.Flags().StringArrayVar(&itemStats, "stat", nil, "require a stat class: ad, ap, armor, mr, health, mana (repeatable)")
}

func runItems(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if len(args) == 1 {
		item, err := client.ItemByName(ctx, args[0])
		if err != nil {
			return err
		}
		if item == nil {
			return userErrorf("item %q not found", args[0])
		}
		return render("Items", itemHeader, [][]string{itemRow(*item)}, item)
	}

	var (
		items []types.Item
		err   error
	)
	if len(itemStats) > 0 {
		q, qErr := statQuery(itemStats)
		if qErr != nil {
			return qErr
		}
		items, err = client.SearchItemsByStat(ctx, q)
	} else {
		items, err = client.Items(ctx, types.ItemFilter{Tier: itemTier})
	}
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, itemRow(it))
	}
	return render("Items", itemHeader, rows, items)
}

// statQuery maps --stat values onto a StatQuery requiring each named
// class.
func statQuery(stats []string) (types.StatQuery, error) {
	yes := true
	var q types.StatQuery
	for _, s := range stats {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "ad":
			q.AD = &yes
		case "ap":
			q.AP = &yes
		case "armor":
			q.Armor = &yes
		case "mr":
			q.MR = &yes
		case "health":
			q.Health = &yes
		case "mana":
			q.Mana = &yes
		default:
			return types.StatQuery{}, userErrorf("unknown stat %q (valid: ad, ap, armor, mr, health, mana)", s)
		}
	}
	return q, nil
}

var itemHeader = []string{"NAME", "TIER", "COST", "AD", "AP", "ARMOR", "MR", "HEALTH", "MANA"}

func itemRow(it types.Item) []string {
	return []string{
		it.Name,
		it.Tier,
		fmtInt(it.TotalCost),
		fmtInt(it.AD),
		fmtInt(it.AP),
		fmtInt(it.Armor),
		fmtInt(it.MR),
		fmtInt(it.Health),
		fmtInt(it.Mana),
	}
}
