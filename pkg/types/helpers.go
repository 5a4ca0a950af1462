package types

import (
	"strings"
	"time"
)

func boolPtr(v bool) *bool { return &v }

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func timePtr(v time.Time) *time.Time { return &v }

// isSet reports whether a tri-state flag is present and true.
func isSet(v *bool) bool { return v != nil && *v }

// splitList splits s on delim, trims each element and drops empties,
// preserving order. Returns an empty slice for empty input.
func splitList(s, delim string) []string {
	out := []string{}
	for _, part := range strings.Split(s, delim) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
