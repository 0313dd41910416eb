package core

// Summary aggregates totals over a transaction and fixed-expense set.
// Field names follow the stored record vocabulary: entradas income,
// saidas expenses, gastosFixos recurring fixed expenses.
type Summary struct {
	Entradas    float64 `json:"entradas"`
	Saidas      float64 `json:"saidas"`
	GastosFixos float64 `json:"gastosFixos"`
	Saldo       float64 `json:"saldo"`
}

// ComputeSummary totals income and expense transactions by type and adds
// the unconditional fixed-expense sum. Fixed expenses are not date-scoped
// here; callers wanting a period view pre-filter the transaction list.
// Pure and deterministic.
func ComputeSummary(transactions []Transaction, fixedExpenses []FixedExpense) Summary {
	var s Summary
	for _, t := range transactions {
		switch {
		case t.MatchesType(TypeEntrada):
			s.Entradas += ToAmount(t.Value)
		case t.MatchesType(TypeSaida):
			s.Saidas += ToAmount(t.Value)
		}
	}
	for _, f := range fixedExpenses {
		s.GastosFixos += ToAmount(f.Value)
	}
	s.Saldo = s.Entradas - s.Saidas - s.GastosFixos
	return s
}
