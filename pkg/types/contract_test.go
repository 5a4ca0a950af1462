package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestContractActiveAt(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	future := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)
	past := time.Date(2023, 11, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		contract Contract
		want     *bool
	}{
		{
			name:     "ends in the future",
			contract: Contract{ContractEnd: &future},
			want:     boolPtr(true),
		},
		{
			name:     "ended in the past",
			contract: Contract{ContractEnd: &past},
			want:     boolPtr(false),
		},
		{
			name:     "removal marker is never active",
			contract: Contract{ContractEnd: &future, IsRemoval: boolPtr(true)},
			want:     boolPtr(false),
		},
		{
			name:     "unknown end yields nil",
			contract: Contract{},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.contract.ActiveAt(now))
		})
	}
}

func TestContractExpiredAt(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	future := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)
	past := time.Date(2023, 11, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		contract Contract
		want     *bool
	}{
		{
			name:     "future end not expired",
			contract: Contract{ContractEnd: &future},
			want:     boolPtr(false),
		},
		{
			name:     "past end expired",
			contract: Contract{ContractEnd: &past},
			want:     boolPtr(true),
		},
		{
			name:     "end exactly now counts as expired",
			contract: Contract{ContractEnd: &now},
			want:     boolPtr(true),
		},
		{
			name:     "unknown end yields nil",
			contract: Contract{},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.contract.ExpiredAt(now))
		})
	}
}

func TestContractDaysUntilExpiry(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  *time.Time
		want *int
	}{
		{
			name: "thirty days out",
			end:  timePtr(now.AddDate(0, 0, 30)),
			want: intPtr(30),
		},
		{
			name: "expired ten days ago",
			end:  timePtr(now.AddDate(0, 0, -10)),
			want: intPtr(-10),
		},
		{
			name: "expires today",
			end:  &now,
			want: intPtr(0),
		},
		{
			name: "unknown end yields nil",
			end:  nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Contract{ContractEnd: tt.end}
			assert.Equal(t, tt.want, c.DaysUntilExpiry(now))
		})
	}
}
