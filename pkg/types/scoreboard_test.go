package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreboardPlayerName(t *testing.T) {
	tests := []struct {
		name string
		link string
		want string
	}{
		{
			name: "plain name",
			link: "Faker",
			want: "Faker",
		},
		{
			name: "disambiguation stripped",
			link: "Faker (Lee Sang-hyeok)",
			want: "Faker",
		},
		{
			name: "empty link",
			link: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ScoreboardPlayer{Link: tt.link}
			assert.Equal(t, tt.want, s.PlayerName())
		})
	}
}

func TestScoreboardKDA(t *testing.T) {
	tests := []struct {
		name                   string
		kills, deaths, assists *int
		want                   *float64
	}{
		{
			name:  "ordinary line",
			kills: intPtr(5), deaths: intPtr(2), assists: intPtr(7),
			want: floatPtr(6),
		},
		{
			name:  "deathless with takedowns is infinite",
			kills: intPtr(3), deaths: intPtr(0), assists: intPtr(1),
			want: floatPtr(math.Inf(1)),
		},
		{
			name:  "unknown deaths treated as deathless",
			kills: intPtr(2), deaths: nil, assists: intPtr(0),
			want: floatPtr(math.Inf(1)),
		},
		{
			name:  "scoreless deathless line is zero",
			kills: intPtr(0), deaths: intPtr(0), assists: intPtr(0),
			want: floatPtr(0),
		},
		{
			name:  "unknown kills yield nil",
			kills: nil, deaths: intPtr(3), assists: intPtr(4),
			want: nil,
		},
		{
			name:  "unknown assists yield nil",
			kills: intPtr(3), deaths: intPtr(3), assists: nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ScoreboardPlayer{Kills: tt.kills, Deaths: tt.deaths, Assists: tt.assists}
			assert.Equal(t, tt.want, s.KDA())
		})
	}
}

func TestScoreboardShares(t *testing.T) {
	tests := []struct {
		name   string
		line   ScoreboardPlayer
		wantKP *float64
		wantGS *float64
	}{
		{
			name: "full inputs",
			line: ScoreboardPlayer{
				Kills: intPtr(4), Assists: intPtr(8), TeamKills: intPtr(20),
				Gold: intPtr(12000), TeamGold: intPtr(60000),
			},
			wantKP: floatPtr(60),
			wantGS: floatPtr(20),
		},
		{
			name: "zero team totals yield nil",
			line: ScoreboardPlayer{
				Kills: intPtr(0), Assists: intPtr(0), TeamKills: intPtr(0),
				Gold: intPtr(9000), TeamGold: intPtr(0),
			},
		},
		{
			name: "missing team totals yield nil",
			line: ScoreboardPlayer{Kills: intPtr(4), Assists: intPtr(8), Gold: intPtr(9000)},
		},
		{
			name: "missing kills yield nil participation",
			line: ScoreboardPlayer{Assists: intPtr(8), TeamKills: intPtr(20)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantKP == nil {
				assert.Nil(t, tt.line.KillParticipation())
			} else {
				assert.InDelta(t, *tt.wantKP, *tt.line.KillParticipation(), 1e-9)
			}
			if tt.wantGS == nil {
				assert.Nil(t, tt.line.GoldShare())
			} else {
				assert.InDelta(t, *tt.wantGS, *tt.line.GoldShare(), 1e-9)
			}
		})
	}
}

func TestScoreboardDidWin(t *testing.T) {
	tests := []struct {
		name      string
		playerWin string
		want      *bool
	}{
		{name: "yes", playerWin: "Yes", want: boolPtr(true)},
		{name: "true", playerWin: "True", want: boolPtr(true)},
		{name: "numeric one", playerWin: "1", want: boolPtr(true)},
		{name: "no", playerWin: "No", want: boolPtr(false)},
		{name: "zero", playerWin: "0", want: boolPtr(false)},
		{name: "empty yields nil", playerWin: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ScoreboardPlayer{PlayerWin: tt.playerWin}
			assert.Equal(t, tt.want, s.DidWin())
		})
	}
}

func TestScoreboardMultikillBracket(t *testing.T) {
	tests := []struct {
		name  string
		kills *int
		want  Multikill
	}{
		{name: "penta", kills: intPtr(7), want: MultikillPenta},
		{name: "quadra", kills: intPtr(4), want: MultikillQuadra},
		{name: "triple", kills: intPtr(3), want: MultikillTriple},
		{name: "double", kills: intPtr(2), want: MultikillDouble},
		{name: "single kill is standard", kills: intPtr(1), want: MultikillStandard},
		{name: "zero kills is standard", kills: intPtr(0), want: MultikillStandard},
		{name: "unknown kills", kills: nil, want: MultikillUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ScoreboardPlayer{Kills: tt.kills}
			assert.Equal(t, tt.want, s.MultikillBracket())
		})
	}
}

func TestScoreboardPerformanceGrade(t *testing.T) {
	tests := []struct {
		name string
		line ScoreboardPlayer
		want Grade
	}{
		{
			name: "s grade on kda and participation",
			line: ScoreboardPlayer{
				Kills: intPtr(8), Deaths: intPtr(2), Assists: intPtr(4),
				TeamKills: intPtr(15),
			},
			want: GradeS,
		},
		{
			name: "s grade without participation data",
			line: ScoreboardPlayer{Kills: intPtr(8), Deaths: intPtr(2), Assists: intPtr(0)},
			want: GradeS,
		},
		{
			name: "high kda with middling participation drops to b",
			line: ScoreboardPlayer{
				Kills: intPtr(2), Deaths: intPtr(1), Assists: intPtr(2),
				TeamKills: intPtr(8),
			},
			want: GradeB,
		},
		{
			name: "high kda with low participation drops to c",
			line: ScoreboardPlayer{
				Kills: intPtr(2), Deaths: intPtr(1), Assists: intPtr(2),
				TeamKills: intPtr(30),
			},
			want: GradeC,
		},
		{
			name: "a grade",
			line: ScoreboardPlayer{
				Kills: intPtr(5), Deaths: intPtr(3), Assists: intPtr(4),
				TeamKills: intPtr(14),
			},
			want: GradeA,
		},
		{
			name: "c grade ignores participation",
			line: ScoreboardPlayer{
				Kills: intPtr(2), Deaths: intPtr(2), Assists: intPtr(0),
				TeamKills: intPtr(40),
			},
			want: GradeC,
		},
		{
			name: "d grade",
			line: ScoreboardPlayer{Kills: intPtr(0), Deaths: intPtr(5), Assists: intPtr(2)},
			want: GradeD,
		},
		{
			name: "unknown kda",
			line: ScoreboardPlayer{Deaths: intPtr(3)},
			want: GradeUnknown,
		},
		{
			name: "deathless line grades s",
			line: ScoreboardPlayer{Kills: intPtr(1), Deaths: intPtr(0), Assists: intPtr(0)},
			want: GradeS,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.line.PerformanceGrade())
		})
	}
}
