package types

import "time"

// Game winner codes stored by the ScoreboardGames table.
const (
	winnerTeam1 = 1
	winnerTeam2 = 2
)

// Game is one row of the ScoreboardGames table: the header line of one
// competitive game, including draft, objective counts, and links to
// external records.
type Game struct {
	GameID             string     `cargo:"GameId"`
	MatchID            string     `cargo:"MatchId"`
	Tournament         string     `cargo:"Tournament"`
	Team1              string     `cargo:"Team1"`
	Team2              string     `cargo:"Team2"`
	Winner             *int       `cargo:"Winner"`
	GamelengthNumber   *float64   `cargo:"Gamelength_Number"`
	DateTimeUTC        *time.Time `cargo:"DateTime_UTC,datetime"`
	Team1Score         *int       `cargo:"Team1Score"`
	Team2Score         *int       `cargo:"Team2Score"`
	Team1Bans          []string   `cargo:"Team1Bans"`
	Team2Bans          []string   `cargo:"Team2Bans"`
	Team1Picks         []string   `cargo:"Team1Picks"`
	Team2Picks         []string   `cargo:"Team2Picks"`
	Team1Players       []string   `cargo:"Team1Players"`
	Team2Players       []string   `cargo:"Team2Players"`
	Team1Dragons       *int       `cargo:"Team1Dragons"`
	Team2Dragons       *int       `cargo:"Team2Dragons"`
	Team1Barons        *int       `cargo:"Team1Barons"`
	Team2Barons        *int       `cargo:"Team2Barons"`
	Team1Towers        *int       `cargo:"Team1Towers"`
	Team2Towers        *int       `cargo:"Team2Towers"`
	Team1RiftHeralds   *int       `cargo:"Team1RiftHeralds"`
	Team2RiftHeralds   *int       `cargo:"Team2RiftHeralds"`
	Team1Inhibitors    *int       `cargo:"Team1Inhibitors"`
	Team2Inhibitors    *int       `cargo:"Team2Inhibitors"`
	Patch              string     `cargo:"Patch"`
	MatchHistory       string     `cargo:"MatchHistory"`
	RiotPlatformGameID string     `cargo:"RiotPlatformGameId"`
	VOD                string     `cargo:"VOD"`
	Gamename           string     `cargo:"Gamename"`
	NGameInMatch       *int       `cargo:"N_GameInMatch"`
	OverviewPage       string     `cargo:"OverviewPage"`
}

// WinnerName returns the name of the winning team, or the empty string
// when the winner is unknown or not a recognized code.
func (g Game) WinnerName() string {
	if g.Winner == nil {
		return ""
	}
	switch *g.Winner {
	case winnerTeam1:
		return g.Team1
	case winnerTeam2:
		return g.Team2
	}
	return ""
}
