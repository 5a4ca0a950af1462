package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRosterChangeDirection(t *testing.T) {
	tests := []struct {
		name      string
		direction string
		wantCode  Direction
		wantJoin  bool
		wantLeave bool
	}{
		{
			name:      "join",
			direction: "Join",
			wantCode:  DirectionJoin,
			wantJoin:  true,
		},
		{
			name:      "leave",
			direction: "Leave",
			wantCode:  DirectionLeave,
			wantLeave: true,
		},
		{
			name:      "empty maps to unknown",
			direction: "",
			wantCode:  DirectionUnknown,
		},
		{
			name:      "unrecognized maps to unknown",
			direction: "Transferred",
			wantCode:  DirectionUnknown,
		},
		{
			name:      "case sensitive",
			direction: "join",
			wantCode:  DirectionUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := RosterChange{Direction: tt.direction}
			assert.Equal(t, tt.wantCode, rc.DirectionCode())
			assert.Equal(t, tt.wantJoin, rc.IsJoin())
			assert.Equal(t, tt.wantLeave, rc.IsLeave())
		})
	}
}

func TestRosterChangePrimaryRole(t *testing.T) {
	tests := []struct {
		name  string
		roles string
		want  Role
	}{
		{
			name:  "single role",
			roles: "Top",
			want:  RoleTop,
		},
		{
			name:  "first of several",
			roles: "Mid;Jungle",
			want:  RoleMid,
		},
		{
			name:  "staff title skipped",
			roles: "Part-Owner;Mid",
			want:  RoleMid,
		},
		{
			name:  "only staff titles",
			roles: "Coach;Analyst",
			want:  RoleUnknown,
		},
		{
			name:  "empty",
			roles: "",
			want:  RoleUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := RosterChange{Roles: tt.roles}
			assert.Equal(t, tt.want, rc.PrimaryRole())
		})
	}
}
