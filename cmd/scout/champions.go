// Champions command lists champions or looks one up by name.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rift/pkg/types"
)

var (
	championResource  string
	championAttribute string
	championsMelee    bool
	championsRanged   bool
)

var championsCmd = &cobra.Command{
	Use:   "champions [name]",
	Short: "List champions or look up one by name",
	Long: `Champions lists the champion catalogue, optionally narrowed by
resource or attribute, or looks up a single champion by exact name.

Example:
  scout champions
  scout champions Ahri
  scout champions --resource Mana
  scout champions --attribute Marksman
  scout champions --melee`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChampions,
}

func init() {
	championsCmd.Flags().StringVar(&championResource, "resource", "", "filter by resource (Mana, Energy, ...)")
	championsCmd.Flags().StringVar(&championAttribute, "attribute", "", "filter by attribute (Marksman, Tank, ...)")
	championsCmd.Flags().BoolVar(&championsMelee, "melee", false, "only melee champions")
	championsCmd.Flags().BoolVar(&championsRanged, "ranged", false, "only ranged champions")
	championsCmd.MarkFlagsMutuallyExclusive("melee", "ranged")
}

func runChampions(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if len(args) == 1 {
		champ, err := client.ChampionByName(ctx, args[0])
		if err != nil {
			return err
		}
		if champ == nil {
			return userErrorf("champion %q not found", args[0])
		}
		return render("Champions", championHeader, [][]string{championRow(*champ)}, champ)
	}

	var (
		champs []types.Champion
		err    error
	)
	switch {
	case championsMelee:
		champs, err = client.MeleeChampions(ctx)
	case championsRanged:
		champs, err = client.RangedChampions(ctx)
	default:
		champs, err = client.Champions(ctx, types.ChampionFilter{
			Resource:  championResource,
			Attribute: championAttribute,
		})
	}
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(champs))
	for _, ch := range champs {
		rows = append(rows, championRow(ch))
	}
	return render("Champions", championHeader, rows, champs)
}

var championHeader = []string{"NAME", "TITLE", "RESOURCE", "ATTRIBUTES", "RANGE", "BE", "RP"}

func championRow(ch types.Champion) []string {
	return []string{
		ch.Name,
		ch.Title,
		ch.Resource,
		fmtList(ch.AttributeList()),
		fmtFloat(ch.AttackRange, 0),
		fmtInt(ch.BE),
		fmtInt(ch.RP),
	}
}
