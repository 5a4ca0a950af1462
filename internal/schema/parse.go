// Package schema converts the raw string rows served by Cargo queries
// into typed records. Scalar parsing follows one rule everywhere: an
// absent, empty, or malformed value yields nil (or an empty slice for
// lists), never an error. Record mapping is driven by `cargo` struct
// tags so that the parsed columns and the queried columns come from the
// same declaration.
package schema

import (
	"strconv"
	"strings"
	"time"
)

// Wire layouts served by Cargo. DateTime columns come space-separated;
// sort keys occasionally carry the RFC 3339 form.
const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

var dateTimeLayouts = []string{
	dateTimeLayout,
	time.RFC3339,
	dateLayout,
}

// ParseInt converts a raw value to *int. Returns nil when the value is
// empty or not a base-10 integer.
func ParseInt(v string) *int {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

// ParseFloat converts a raw value to *float64. Returns nil when the
// value is empty or not a number.
func ParseFloat(v string) *float64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

// ParseBool converts a raw value to *bool by comparing it against the
// field's declared true token (case-sensitive). Returns nil when the
// value is empty; any present value other than the token is false.
func ParseBool(v, trueToken string) *bool {
	if v == "" {
		return nil
	}
	b := v == trueToken
	return &b
}

// ParseDate converts a raw YYYY-MM-DD value to *time.Time. Returns nil
// on empty input or any other layout.
func ParseDate(v string) *time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil
	}
	return &t
}

// ParseDateTime converts a raw timestamp to *time.Time, accepting the
// space-separated Cargo form, RFC 3339, and a bare date. Returns nil
// when no layout matches.
func ParseDateTime(v string) *time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return &t
		}
	}
	return nil
}

// ParseList splits a raw value on delim, trims each element, and drops
// empties, preserving order and duplicates. Returns an empty slice on
// empty input. An empty delim falls back to a comma.
func ParseList(v, delim string) []string {
	if delim == "" {
		delim = ","
	}
	out := []string{}
	if strings.TrimSpace(v) == "" {
		return out
	}
	for _, part := range strings.Split(v, delim) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
