package sheets

import (
	"testing"
	"time"

	"cashpilot/internal/core"
)

func TestSnapshotRows(t *testing.T) {
	snap := core.ReportSnapshot{
		ID:          "reports:1",
		Month:       0,
		Year:        2025,
		Entradas:    1000,
		Saidas:      200,
		GastosFixos: 500,
		Saldo:       300,
		Transactions: []core.Transaction{
			{ID: "transactions:1", Type: core.TypeEntrada, Category: "Salário", Value: 1000, Date: "2025-01-05"},
			{ID: "transactions:2", Type: core.TypeSaida, Category: "", Value: 200, Date: "2025-01-10"},
		},
		CreatedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	rows := snapshotRows(snap)
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}

	header := rows[0]
	if header[0] != "report" || header[1] != "reports:1" || header[2] != "01/2025" {
		t.Errorf("header = %v", header)
	}
	if header[3] != 1000.0 || header[4] != 200.0 || header[5] != 500.0 || header[6] != 300.0 {
		t.Errorf("totals = %v", header[3:])
	}

	if rows[1][4] != "Salário" {
		t.Errorf("first transaction category = %v, want Salário", rows[1][4])
	}
	if rows[2][4] != core.SentinelCategory {
		t.Errorf("uncategorized transaction category = %v, want %q", rows[2][4], core.SentinelCategory)
	}
}

func TestSnapshotRowsEmptyMonth(t *testing.T) {
	snap := core.ReportSnapshot{
		ID:           "reports:2",
		Month:        11,
		Year:         2024,
		GastosFixos:  500,
		Saldo:        -500,
		Transactions: []core.Transaction{},
	}

	rows := snapshotRows(snap)
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	if rows[0][2] != "12/2024" {
		t.Errorf("period = %v, want 12/2024", rows[0][2])
	}
}
