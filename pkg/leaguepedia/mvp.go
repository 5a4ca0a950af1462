package leaguepedia

import (
	"context"
	"sort"

	"github.com/mesh-intelligence/rift/pkg/types"
)

// MVPCandidates reduces a set of scoreboard rows to one standout game
// per player and ranks the players. Rows without a player name are
// dropped, players with fewer than minGames rows are dropped, and each
// surviving player is represented by their best game: highest KDA, kill
// participation as the tiebreak, unknown values ranked as zero. The
// result is ordered best first, name ascending on full ties, so equal
// inputs always produce equal output.
func MVPCandidates(players []types.ScoreboardPlayer, minGames int) []types.ScoreboardPlayer {
	if minGames < 1 {
		minGames = 1
	}

	groups := make(map[string][]types.ScoreboardPlayer)
	for _, p := range players {
		name := p.PlayerName()
		if name == "" {
			continue
		}
		groups[name] = append(groups[name], p)
	}

	best := make([]types.ScoreboardPlayer, 0, len(groups))
	for _, games := range groups {
		if len(games) < minGames {
			continue
		}
		rep := games[0]
		for _, g := range games[1:] {
			if outperforms(g, rep) {
				rep = g
			}
		}
		best = append(best, rep)
	}

	sort.Slice(best, func(i, j int) bool {
		ki, pi := mvpScore(best[i])
		kj, pj := mvpScore(best[j])
		if ki != kj {
			return ki > kj
		}
		if pi != pj {
			return pi > pj
		}
		return best[i].PlayerName() < best[j].PlayerName()
	})
	return best
}

// TournamentMVPCandidates fetches a tournament's scoreboard rows and
// ranks its MVP candidates.
func (c *Client) TournamentMVPCandidates(ctx context.Context, tournament string, minGames int) ([]types.ScoreboardPlayer, error) {
	if err := requireName("tournament", tournament); err != nil {
		return nil, err
	}
	rows, err := c.ScoreboardPlayers(ctx, types.ScoreboardFilter{Tournament: tournament})
	if err != nil {
		return nil, err
	}
	return MVPCandidates(rows, minGames), nil
}

// mvpScore ranks a game by (KDA, kill participation), reading unknown
// values as zero.
func mvpScore(p types.ScoreboardPlayer) (float64, float64) {
	kda, kp := 0.0, 0.0
	if v := p.KDA(); v != nil {
		kda = *v
	}
	if v := p.KillParticipation(); v != nil {
		kp = *v
	}
	return kda, kp
}

// outperforms reports whether game a strictly beats game b, so ties
// keep the earlier row.
func outperforms(a, b types.ScoreboardPlayer) bool {
	ka, pa := mvpScore(a)
	kb, pb := mvpScore(b)
	if ka != kb {
		return ka > kb
	}
	return pa > pb
}
