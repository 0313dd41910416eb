package core

import (
	"reflect"
	"testing"
)

func sampleTransactions() []Transaction {
	return []Transaction{
		{ID: "1", Type: "Entrada", Category: "Salário", Value: 1000, Date: "2025-01-05"},
		{ID: "2", Type: "Saída", Category: "Mercado", Value: 200, Date: "2025-01-10"},
		{ID: "3", Type: "Saída", Category: "Transporte", Value: 35.5, Date: "2025-02-01"},
		{ID: "4", Type: "Saída", Category: "", Value: 12, Date: "2025-02-01"},
	}
}

func ids(ts []Transaction) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}

func TestFilterTransactions(t *testing.T) {
	ts := sampleTransactions()

	cases := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"empty filter is identity", Filter{}, []string{"1", "2", "3", "4"}},
		{"type exact", Filter{Type: "Saída"}, []string{"2", "3", "4"}},
		{"category exact", Filter{Category: "Mercado"}, []string{"2"}},
		{"search category case-insensitive", Filter{Search: "merc"}, []string{"2"}},
		{"search stringified value", Filter{Search: "35.5"}, []string{"3"}},
		{"date same day", Filter{Date: "2025-02-01"}, []string{"3", "4"}},
		{"criteria AND", Filter{Type: "Saída", Date: "2025-01-10"}, []string{"2"}},
		{"unparseable date matches nothing", Filter{Date: "not-a-date"}, []string{}},
		{"no match", Filter{Category: "Inexistente"}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(FilterTransactions(ts, tc.filter))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFilterIsZero(t *testing.T) {
	cases := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"all empty", Filter{}, true},
		{"search set", Filter{Search: "a"}, false},
		{"category set", Filter{Category: "Mercado"}, false},
		{"type set", Filter{Type: "Saída"}, false},
		{"date set", Filter{Date: "2025-01-01"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.filter.IsZero(); got != tc.want {
				t.Errorf("IsZero() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFilterTransactionsZeroFilterReturnsFreshSlice(t *testing.T) {
	ts := sampleTransactions()

	got := FilterTransactions(ts, Filter{})
	if !reflect.DeepEqual(ids(got), ids(ts)) {
		t.Fatalf("zero filter changed the list: %v", ids(got))
	}
	got[0].Category = "changed"
	if ts[0].Category == "changed" {
		t.Fatal("result must not alias the input slice")
	}
}

func TestFilterTransactionsDoesNotMutate(t *testing.T) {
	ts := sampleTransactions()
	before := make([]Transaction, len(ts))
	copy(before, ts)

	FilterTransactions(ts, Filter{Type: "Saída"})
	if !reflect.DeepEqual(ts, before) {
		t.Fatal("input slice was mutated")
	}
}

func TestFilterTransactionsIdempotent(t *testing.T) {
	ts := sampleTransactions()
	f := Filter{Type: "Saída", Search: "a"}

	once := FilterTransactions(ts, f)
	twice := FilterTransactions(once, f)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("filtering a filtered list changed it: %v vs %v", ids(once), ids(twice))
	}
}
