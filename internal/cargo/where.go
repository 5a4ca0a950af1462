package cargo

import "strings"

// Escape doubles every single quote in s so it can be embedded in a
// quoted Cargo literal. Every caller-supplied value in a WHERE clause
// must pass through here, including values arriving via filter maps.
func Escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// Where accumulates filter conditions in call order and joins them with
// AND. Conditions with empty values are dropped, so optional filters
// can be chained unconditionally.
type Where struct {
	conds []string
}

// NewWhere returns an empty condition builder.
func NewWhere() *Where {
	return &Where{}
}

// Equals appends col='v' with v escaped. No-op when v is empty.
func (w *Where) Equals(col, v string) *Where {
	if v != "" {
		w.conds = append(w.conds, col+"='"+Escape(v)+"'")
	}
	return w
}

// Like appends col LIKE '%v%' with v escaped. No-op when v is empty.
func (w *Where) Like(col, v string) *Where {
	if v != "" {
		w.conds = append(w.conds, col+" LIKE '%"+Escape(v)+"%'")
	}
	return w
}

// AtLeast appends col >= 'v' with v escaped. No-op when v is empty.
func (w *Where) AtLeast(col, v string) *Where {
	if v != "" {
		w.conds = append(w.conds, col+" >= '"+Escape(v)+"'")
	}
	return w
}

// AtMost appends col <= 'v' with v escaped. No-op when v is empty.
func (w *Where) AtMost(col, v string) *Where {
	if v != "" {
		w.conds = append(w.conds, col+" <= '"+Escape(v)+"'")
	}
	return w
}

// IsNull appends col IS NULL.
func (w *Where) IsNull(col string) *Where {
	w.conds = append(w.conds, col+" IS NULL")
	return w
}

// Group appends a raw clause wrapped in parentheses, for OR groups that
// must not leak their precedence into the surrounding AND chain. The
// caller escapes any embedded values. No-op when raw is empty.
func (w *Where) Group(raw string) *Where {
	if raw != "" {
		w.conds = append(w.conds, "("+raw+")")
	}
	return w
}

// Empty reports whether no conditions were kept.
func (w *Where) Empty() bool {
	return len(w.conds) == 0
}

// String joins the kept conditions with AND. An empty builder yields
// the empty string and the gateway then omits the where parameter.
func (w *Where) String() string {
	return strings.Join(w.conds, " AND ")
}
