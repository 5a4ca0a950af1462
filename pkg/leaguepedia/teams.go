package leaguepedia

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/rift/internal/cargo"
	"github.com/mesh-intelligence/rift/internal/namecache"
	"github.com/mesh-intelligence/rift/internal/schema"
	"github.com/mesh-intelligence/rift/pkg/types"
)

// tenureRow is the projection served by the Tenures and RosterChanges
// join backing roster queries.
type tenureRow struct {
	Player   string     `cargo:"T.Player"`
	Team     string     `cargo:"T.Team"`
	DateJoin *time.Time `cargo:"T.DateJoin,datetime"`
	Roles    string     `cargo:"RC.Roles"`
}

func logoTitle(team string) string {
	return "File:" + team + "logo square.png"
}

func thumbnailTitle(team string) string {
	return "File:" + team + "logo std.png"
}

// displayName strips the trailing real-name parenthetical from a player
// link, so "Doran (Choi Hyeon-joon)" reads as "Doran".
func displayName(link string) string {
	if i := strings.Index(link, " ("); i >= 0 {
		return link[:i]
	}
	return strings.TrimSpace(link)
}

// ActiveRoster returns a team's current competitive roster: the players
// who joined and have not left, one entry per player. Players whose
// role list names no playing position, such as pure staff, are skipped.
func (c *Client) ActiveRoster(ctx context.Context, team string) ([]types.TeamPlayer, error) {
	return c.ActiveRosterAt(ctx, team, time.Time{})
}

// ActiveRosterAt returns the roster as of a date. A zero date means the
// present-day roster.
func (c *Client) ActiveRosterAt(ctx context.Context, team string, at time.Time) ([]types.TeamPlayer, error) {
	if err := requireName("team name", team); err != nil {
		return nil, err
	}

	w := cargo.NewWhere().Equals("T.Team", team)
	if at.IsZero() {
		w.IsNull("T.DateLeave")
	} else {
		date := at.UTC().Format(dateLayout)
		w.AtMost("T.DateJoin", date)
		w.Group("T.DateLeave IS NULL OR T.DateLeave > '" + cargo.Escape(date) + "'")
	}

	q := types.CargoQuery{
		Tables:  []string{types.TableTenures + "=T", types.TableRosterChanges + "=RC"},
		Fields:  schema.MustColumns(tenureRow{}),
		Where:   w.String(),
		JoinOn:  "T.RosterChangeIdJoin=RC.RosterChangeId",
		GroupBy: "T.Player",
	}
	rows, err := c.gateway.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("fetching roster: %w", err)
	}
	tenures, err := mapRows[tenureRow](rows)
	if err != nil {
		return nil, err
	}

	roster := make([]types.TeamPlayer, 0, len(tenures))
	for _, t := range tenures {
		role := types.PrimaryRole(t.Roles)
		if role == types.RoleUnknown {
			continue
		}
		roster = append(roster, types.TeamPlayer{
			Name: displayName(t.Player),
			Role: role,
		})
	}
	return roster, nil
}

// Teams returns every entry of the Teams table, ordered by name. The
// table is large; most callers want LongTeamName instead.
func (c *Client) Teams(ctx context.Context) ([]types.Team, error) {
	q := types.CargoQuery{
		Tables:  []string{types.TableTeams},
		Fields:  recordFields(types.TableTeams, types.Team{}),
		OrderBy: "Teams.Name",
	}
	return fetch[types.Team](ctx, c, "teams", q)
}

// LongTeamName resolves a team abbreviation like "IG" or "RNG" to the
// full team name. Matching is case-insensitive against both the short
// form and the full name, so full names resolve to themselves. An
// unknown abbreviation returns the empty string with a nil error.
//
// With the cache enabled the whole Teams table is loaded on the first
// miss and served from the cache afterwards.
func (c *Client) LongTeamName(ctx context.Context, trigram string) (string, error) {
	if err := requireName("team name", trigram); err != nil {
		return "", err
	}
	if c.names != nil {
		if e, ok := c.names.Team(trigram); ok {
			return e.Name, nil
		}
	}

	teams, err := c.Teams(ctx)
	if err != nil {
		return "", err
	}

	want := namecache.Key(trigram)
	long := ""
	for _, t := range teams {
		if c.names != nil {
			entry := namecache.TeamEntry{
				Short:        t.Short,
				Name:         t.Name,
				OverviewPage: t.OverviewPage,
			}
			if t.Short != "" {
				_ = c.names.PutTeam(t.Short, entry)
			}
			if t.Name != "" {
				_ = c.names.PutTeam(t.Name, entry)
			}
		}
		if long == "" && (namecache.Key(t.Short) == want || namecache.Key(t.Name) == want) {
			long = t.Name
		}
	}
	return long, nil
}

// TeamAssets returns a team's logo and thumbnail URLs together with its
// resolved long name, using one image lookup for both files. teamLink
// is the team reference as it appears in game data, usually the full
// name. Files the wiki does not carry leave their URL empty.
func (c *Client) TeamAssets(ctx context.Context, teamLink string) (types.TeamAssets, error) {
	if err := requireName("team name", teamLink); err != nil {
		return types.TeamAssets{}, err
	}

	long, err := c.LongTeamName(ctx, teamLink)
	if err != nil {
		return types.TeamAssets{}, err
	}

	logo, thumb := logoTitle(teamLink), thumbnailTitle(teamLink)
	urls, err := c.gateway.ImageInfo(ctx, logo, thumb)
	if err != nil {
		return types.TeamAssets{}, fmt.Errorf("fetching team assets: %w", err)
	}
	return types.TeamAssets{
		LogoURL:      urls[logo],
		ThumbnailURL: urls[thumb],
		LongName:     long,
	}, nil
}

// TeamLogo returns the URL of a team's square logo. Unknown short forms
// are resolved to the long team name and retried once; names that still
// resolve to nothing return ErrTeamNotFound.
func (c *Client) TeamLogo(ctx context.Context, team string) (string, error) {
	return c.teamAsset(ctx, team, logoTitle)
}

// TeamThumbnail returns the URL of a team's thumbnail image, with the
// same resolution behavior as TeamLogo.
func (c *Client) TeamThumbnail(ctx context.Context, team string) (string, error) {
	return c.teamAsset(ctx, team, thumbnailTitle)
}

func (c *Client) teamAsset(ctx context.Context, team string, title func(string) string) (string, error) {
	if err := requireName("team name", team); err != nil {
		return "", err
	}

	url, err := c.lookupAsset(ctx, title(team))
	if err != nil || url != "" {
		return url, err
	}

	// The file may be keyed under the full team name.
	long, err := c.LongTeamName(ctx, team)
	if err != nil {
		return "", err
	}
	if long == "" || long == team {
		return "", fmt.Errorf("team %q: %w", team, types.ErrTeamNotFound)
	}
	url, err = c.lookupAsset(ctx, title(long))
	if err != nil {
		return "", err
	}
	if url == "" {
		return "", fmt.Errorf("team %q: %w", team, types.ErrTeamNotFound)
	}
	return url, nil
}

func (c *Client) lookupAsset(ctx context.Context, title string) (string, error) {
	if c.names != nil {
		if url, ok := c.names.Asset(title); ok {
			return url, nil
		}
	}

	urls, err := c.gateway.ImageInfo(ctx, title)
	if err != nil {
		return "", fmt.Errorf("fetching image info: %w", err)
	}
	url := urls[title]
	if url != "" && c.names != nil {
		_ = c.names.PutAsset(title, url)
	}
	return url, nil
}
