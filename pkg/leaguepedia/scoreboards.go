package leaguepedia

import (
	"context"

	"github.com/mesh-intelligence/rift/internal/cargo"
	"github.com/mesh-intelligence/rift/pkg/types"
)

// defaultMatchHistoryLimit bounds PlayerMatchHistory when the caller
// passes no limit.
const defaultMatchHistoryLimit = 20

func scoreboardWhere(f types.ScoreboardFilter) string {
	return cargo.NewWhere().
		Equals("ScoreboardPlayers.OverviewPage", f.Tournament).
		Like("ScoreboardPlayers.Link", f.Player).
		Equals("ScoreboardPlayers.Team", f.Team).
		Equals("ScoreboardPlayers.Champion", f.Champion).
		Equals("ScoreboardPlayers.GameId", f.GameID).
		Equals("ScoreboardPlayers.Role", f.Role).
		String()
}

// ScoreboardPlayers returns the per-player game rows matching f, most
// recent first. f.Limit caps the row count; zero means no cap. The
// tournament filter matches the overview page, which is filled for
// every row where the plain Tournament column frequently is not.
func (c *Client) ScoreboardPlayers(ctx context.Context, f types.ScoreboardFilter) ([]types.ScoreboardPlayer, error) {
	q := types.CargoQuery{
		Tables:  []string{types.TableScoreboardPlayers},
		Fields:  recordFields(types.TableScoreboardPlayers, types.ScoreboardPlayer{}),
		Where:   scoreboardWhere(f),
		OrderBy: "ScoreboardPlayers.DateTime_UTC DESC",
		Limit:   f.Limit,
	}
	rows, err := fetch[types.ScoreboardPlayer](ctx, c, "scoreboards", q)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].Tournament == "" {
			rows[i].Tournament = rows[i].OverviewPage
		}
	}
	return rows, nil
}

// PlayerMatchHistory returns a player's most recent games, capped at
// limit. A non-positive limit uses the default of 20.
func (c *Client) PlayerMatchHistory(ctx context.Context, player string, limit int) ([]types.ScoreboardPlayer, error) {
	if err := requireName("player name", player); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultMatchHistoryLimit
	}
	return c.ScoreboardPlayers(ctx, types.ScoreboardFilter{Player: player, Limit: limit})
}

// TeamMatchPerformance returns every game row for a team's players, most
// recent first.
func (c *Client) TeamMatchPerformance(ctx context.Context, team string) ([]types.ScoreboardPlayer, error) {
	if err := requireName("team name", team); err != nil {
		return nil, err
	}
	return c.ScoreboardPlayers(ctx, types.ScoreboardFilter{Team: team})
}

// ChampionPerformance returns the game rows on one champion, optionally
// narrowed to a tournament overview page and role.
func (c *Client) ChampionPerformance(ctx context.Context, champion, tournament, role string) ([]types.ScoreboardPlayer, error) {
	if err := requireName("champion name", champion); err != nil {
		return nil, err
	}
	return c.ScoreboardPlayers(ctx, types.ScoreboardFilter{
		Champion:   champion,
		Tournament: tournament,
		Role:       role,
	})
}

// GameScoreboard returns the ten player rows of a single game.
func (c *Client) GameScoreboard(ctx context.Context, gameID string) ([]types.ScoreboardPlayer, error) {
	if err := requireName("game id", gameID); err != nil {
		return nil, err
	}
	return c.ScoreboardPlayers(ctx, types.ScoreboardFilter{GameID: gameID})
}

// RolePerformance returns the game rows for one role, optionally
// narrowed to a tournament overview page.
func (c *Client) RolePerformance(ctx context.Context, tournament, role string) ([]types.ScoreboardPlayer, error) {
	if err := requireName("role", role); err != nil {
		return nil, err
	}
	return c.ScoreboardPlayers(ctx, types.ScoreboardFilter{Tournament: tournament, Role: role})
}
