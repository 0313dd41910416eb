package core

import (
	"strconv"
	"strings"
	"time"
)

// Filter is a composable display predicate. Empty fields always match;
// supplied fields must all match (logical AND).
type Filter struct {
	Search   string
	Category string
	Type     string
	Date     string
}

// IsZero reports whether no criterion is set.
func (f Filter) IsZero() bool {
	return f.Search == "" && f.Category == "" && f.Type == "" && f.Date == ""
}

// Matches applies the filter to a single transaction.
//
// Search is a case-insensitive substring match against the category name or
// the stringified value. Category and Type are exact. Date matches when both
// sides parse to the same calendar day.
func (f Filter) Matches(t Transaction) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		value := strconv.FormatFloat(t.Value, 'f', -1, 64)
		if !strings.Contains(strings.ToLower(t.Category), needle) &&
			!strings.Contains(value, needle) {
			return false
		}
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.Date != "" {
		want, err := time.Parse(DateLayout, f.Date)
		if err != nil {
			return false
		}
		got, ok := t.Day()
		if !ok || !sameDay(got, want) {
			return false
		}
	}
	return true
}

// FilterTransactions returns the transactions passing the filter, preserving
// input order. The input slice is never mutated, and filtering an already
// filtered list with the same criteria is a no-op.
func FilterTransactions(transactions []Transaction, f Filter) []Transaction {
	out := make([]Transaction, 0, len(transactions))
	if f.IsZero() {
		return append(out, transactions...)
	}
	for _, t := range transactions {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
