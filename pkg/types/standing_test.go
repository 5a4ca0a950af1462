package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandingWinRates(t *testing.T) {
	tests := []struct {
		name       string
		standing   Standing
		wantSeries *float64
		wantGames  *float64
	}{
		{
			name: "even record",
			standing: Standing{
				WinSeries: intPtr(9), LossSeries: intPtr(9),
				WinGames: intPtr(20), LossGames: intPtr(20),
			},
			wantSeries: floatPtr(50),
			wantGames:  floatPtr(50),
		},
		{
			name: "undefeated",
			standing: Standing{
				WinSeries: intPtr(18), LossSeries: intPtr(0),
				WinGames: intPtr(36), LossGames: intPtr(0),
			},
			wantSeries: floatPtr(100),
			wantGames:  floatPtr(100),
		},
		{
			name:     "no matches played yields nil",
			standing: Standing{WinSeries: intPtr(0), LossSeries: intPtr(0)},
		},
		{
			name:     "incomplete record yields nil",
			standing: Standing{WinSeries: intPtr(5)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantSeries == nil {
				assert.Nil(t, tt.standing.SeriesWinRate())
			} else {
				assert.InDelta(t, *tt.wantSeries, *tt.standing.SeriesWinRate(), 1e-9)
			}
			if tt.wantGames == nil {
				assert.Nil(t, tt.standing.GameWinRate())
			} else {
				assert.InDelta(t, *tt.wantGames, *tt.standing.GameWinRate(), 1e-9)
			}
		})
	}
}

func TestStandingTotals(t *testing.T) {
	tests := []struct {
		name       string
		standing   Standing
		wantSeries *int
		wantGames  *int
	}{
		{
			name: "ties counted",
			standing: Standing{
				WinSeries: intPtr(10), LossSeries: intPtr(6), TieSeries: intPtr(2),
				WinGames: intPtr(24), LossGames: intPtr(16),
			},
			wantSeries: intPtr(18),
			wantGames:  intPtr(40),
		},
		{
			name: "unknown ties counted as zero",
			standing: Standing{
				WinSeries: intPtr(10), LossSeries: intPtr(6),
			},
			wantSeries: intPtr(16),
		},
		{
			name:     "unknown wins yield nil",
			standing: Standing{LossSeries: intPtr(6), LossGames: intPtr(9)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSeries, tt.standing.TotalSeriesPlayed())
			assert.Equal(t, tt.wantGames, tt.standing.TotalGamesPlayed())
		})
	}
}
