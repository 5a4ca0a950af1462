package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerStatus(t *testing.T) {
	tests := []struct {
		name       string
		player     Player
		wantStatus PlayerStatus
		wantActive bool
	}{
		{
			name:       "no flags set",
			player:     Player{ID: "Faker"},
			wantStatus: PlayerStatusActive,
			wantActive: true,
		},
		{
			name:       "retired",
			player:     Player{IsRetired: boolPtr(true)},
			wantStatus: PlayerStatusRetired,
		},
		{
			name:       "moved to wild rift",
			player:     Player{ToWildrift: boolPtr(true)},
			wantStatus: PlayerStatusWildRift,
		},
		{
			name:       "moved to valorant",
			player:     Player{ToValorant: boolPtr(true)},
			wantStatus: PlayerStatusValorant,
		},
		{
			name:       "game move outranks retirement",
			player:     Player{IsRetired: boolPtr(true), ToValorant: boolPtr(true)},
			wantStatus: PlayerStatusValorant,
		},
		{
			name:       "explicit false flags stay active",
			player:     Player{IsRetired: boolPtr(false), ToWildrift: boolPtr(false)},
			wantStatus: PlayerStatusActive,
			wantActive: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.player.Status())
			assert.Equal(t, tt.wantActive, tt.player.IsActive())
		})
	}
}
