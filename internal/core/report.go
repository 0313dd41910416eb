package core

import "time"

// ReportSnapshot is an immutable, persisted summary of one calendar month.
// Month is 0-based (January = 0), matching the stored record format. The
// embedded transactions are a denormalized copy, so totals stay correct even
// if the source records are later edited or deleted. ID and CreatedAt are
// assigned by the persistence boundary, not by the engine.
type ReportSnapshot struct {
	ID           string        `json:"id,omitempty"`
	Month        int           `json:"month"`
	Year         int           `json:"year"`
	Entradas     float64       `json:"entradas"`
	Saidas       float64       `json:"saidas"`
	GastosFixos  float64       `json:"gastosFixos"`
	Saldo        float64       `json:"saldo"`
	Transactions []Transaction `json:"transactions"`
	CreatedAt    time.Time     `json:"createdAt,omitempty"`
}

// BuildMonthlyReport selects the transactions falling inside targetYear and
// targetMonth (0-11), computes their summary together with the full
// fixed-expense list, and assembles the snapshot payload to be stored.
//
// A month with no transactions still carries the unconditional gastosFixos
// total. Repeated calls for the same month produce independent payloads;
// snapshots are an append-only history, deduplication is deliberately not
// done here.
func BuildMonthlyReport(transactions []Transaction, fixedExpenses []FixedExpense, targetMonth, targetYear int) ReportSnapshot {
	selected := make([]Transaction, 0)
	for _, t := range transactions {
		day, ok := t.Day()
		if !ok {
			continue
		}
		if int(day.Month())-1 == targetMonth && day.Year() == targetYear {
			selected = append(selected, t)
		}
	}

	s := ComputeSummary(selected, fixedExpenses)
	return ReportSnapshot{
		Month:        targetMonth,
		Year:         targetYear,
		Entradas:     s.Entradas,
		Saidas:       s.Saidas,
		GastosFixos:  s.GastosFixos,
		Saldo:        s.Saldo,
		Transactions: selected,
	}
}

// ValidMonth reports whether m is a 0-based calendar month.
func ValidMonth(m int) bool {
	return m >= 0 && m <= 11
}
