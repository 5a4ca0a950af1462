package types

import (
	"math"
	"strings"
	"time"
)

// Multikill bracket cutoffs on the kill count.
const (
	pentaKills  = 5
	quadraKills = 4
	tripleKills = 3
	doubleKills = 2
)

// ScoreboardPlayer is one row of the ScoreboardPlayers table: one
// player's line from a single competitive game.
type ScoreboardPlayer struct {
	OverviewPage      string     `cargo:"OverviewPage"`
	Name              string     `cargo:"Name"`
	Link              string     `cargo:"Link"` // Player page link with disambiguation.
	Champion          string     `cargo:"Champion"`
	Kills             *int       `cargo:"Kills"`
	Deaths            *int       `cargo:"Deaths"`
	Assists           *int       `cargo:"Assists"`
	SummonerSpells    []string   `cargo:"SummonerSpells"`
	Gold              *int       `cargo:"Gold"`
	CS                *int       `cargo:"CS"`
	DamageToChampions *int       `cargo:"DamageToChampions"`
	VisionScore       *int       `cargo:"VisionScore"`
	Items             []string   `cargo:"Items,delim=;"`
	Trinket           string     `cargo:"Trinket"`
	KeystoneMastery   string     `cargo:"KeystoneMastery"`
	KeystoneRune      string     `cargo:"KeystoneRune"`
	PrimaryTree       string     `cargo:"PrimaryTree"`
	SecondaryTree     string     `cargo:"SecondaryTree"`
	Runes             string     `cargo:"Runes"`
	TeamKills         *int       `cargo:"TeamKills"`
	TeamGold          *int       `cargo:"TeamGold"`
	Team              string     `cargo:"Team"`
	TeamVs            string     `cargo:"TeamVs"`
	Time              *time.Time `cargo:"Time,datetime"`
	PlayerWin         string     `cargo:"PlayerWin"`
	DateTimeUTC       *time.Time `cargo:"DateTime_UTC,datetime"`
	DST               string     `cargo:"DST"`
	Tournament        string     `cargo:"Tournament"`
	Role              string     `cargo:"Role"`
	RoleNumber        *int       `cargo:"Role_Number"`
	IngameRole        string     `cargo:"IngameRole"`
	Side              *int       `cargo:"Side"`
	UniqueLine        string     `cargo:"UniqueLine"`
	UniqueLineVs      string     `cargo:"UniqueLineVs"`
	UniqueRole        string     `cargo:"UniqueRole"`
	UniqueRoleVs      string     `cargo:"UniqueRoleVs"`
	GameID            string     `cargo:"GameId"`
	MatchID           string     `cargo:"MatchId"`
	GameTeamID        string     `cargo:"GameTeamId"`
	GameRoleID        string     `cargo:"GameRoleId"`
	GameRoleIDVs      string     `cargo:"GameRoleIdVs"`
	StatsPage         string     `cargo:"StatsPage"`
}

// ScoreboardFilter narrows a scoreboard query. Empty fields are
// ignored. Limit caps the returned rows after the query, preserving the
// most recent games first.
type ScoreboardFilter struct {
	Tournament string // Exact match on OverviewPage.
	Player     string // Substring match on Link.
	Team       string // Exact match on Team.
	Champion   string // Exact match on Champion.
	GameID     string // Exact match on GameId.
	Role       string // Exact match on Role.
	Limit      int    // Client-side row cap; 0 keeps everything.
}

// PlayerName returns the player name without the disambiguation that
// follows it in Link. Returns the empty string when Link is empty.
func (s ScoreboardPlayer) PlayerName() string {
	fields := strings.Fields(s.Link)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// KDA returns (kills+assists)/deaths. A deathless line with takedowns
// scores +Inf, a scoreless deathless line scores 0. Returns nil when
// kills or assists are unknown.
func (s ScoreboardPlayer) KDA() *float64 {
	if s.Kills == nil || s.Assists == nil {
		return nil
	}
	takedowns := *s.Kills + *s.Assists
	if s.Deaths == nil || *s.Deaths == 0 {
		if takedowns > 0 {
			return floatPtr(math.Inf(1))
		}
		return floatPtr(0)
	}
	return floatPtr(float64(takedowns) / float64(*s.Deaths))
}

// KillParticipation returns (kills+assists)/teamKills as a percentage.
// Returns nil when any input is unknown or the team recorded no kills.
func (s ScoreboardPlayer) KillParticipation() *float64 {
	if s.Kills == nil || s.Assists == nil || s.TeamKills == nil || *s.TeamKills == 0 {
		return nil
	}
	return floatPtr(float64(*s.Kills+*s.Assists) / float64(*s.TeamKills) * 100)
}

// GoldShare returns gold/teamGold as a percentage. Returns nil when
// either value is unknown or the team gold is zero.
func (s ScoreboardPlayer) GoldShare() *float64 {
	if s.Gold == nil || s.TeamGold == nil || *s.TeamGold == 0 {
		return nil
	}
	return floatPtr(float64(*s.Gold) / float64(*s.TeamGold) * 100)
}

// DidWin decodes the PlayerWin column. Returns nil when the column is
// empty.
func (s ScoreboardPlayer) DidWin() *bool {
	if s.PlayerWin == "" {
		return nil
	}
	switch strings.ToLower(s.PlayerWin) {
	case "yes", "true", "1":
		return boolPtr(true)
	}
	return boolPtr(false)
}

// MultikillBracket classifies the line's kill count into the largest
// multikill bracket it could contain. Returns MultikillUnknown when
// Kills is unknown.
func (s ScoreboardPlayer) MultikillBracket() Multikill {
	if s.Kills == nil {
		return MultikillUnknown
	}
	switch {
	case *s.Kills >= pentaKills:
		return MultikillPenta
	case *s.Kills >= quadraKills:
		return MultikillQuadra
	case *s.Kills >= tripleKills:
		return MultikillTriple
	case *s.Kills >= doubleKills:
		return MultikillDouble
	default:
		return MultikillStandard
	}
}

// PerformanceGrade rates the line from S down to D on KDA, with kill
// participation tightening the upper grades when it is known. Returns
// GradeUnknown when KDA is unknown.
func (s ScoreboardPlayer) PerformanceGrade() Grade {
	kda := s.KDA()
	if kda == nil {
		return GradeUnknown
	}
	kp := s.KillParticipation()
	meets := func(minKDA, minKP float64) bool {
		return *kda >= minKDA && (kp == nil || *kp >= minKP)
	}
	switch {
	case meets(4.0, 70):
		return GradeS
	case meets(2.5, 60):
		return GradeA
	case meets(1.5, 50):
		return GradeB
	case *kda >= 1.0:
		return GradeC
	default:
		return GradeD
	}
}
