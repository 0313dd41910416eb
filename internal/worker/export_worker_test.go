package worker

import (
	"context"
	"errors"
	"testing"

	"cashpilot/internal/amqp"
	"cashpilot/internal/core"
	"cashpilot/internal/store/memory"
)

type fakeExporter struct {
	exported []core.ReportSnapshot
	err      error
}

func (f *fakeExporter) ExportReport(_ context.Context, snap core.ReportSnapshot) error {
	if f.err != nil {
		return f.err
	}
	f.exported = append(f.exported, snap)
	return nil
}

func TestHandleExportMessage(t *testing.T) {
	ctx := context.Background()
	st := memory.New()

	id, err := st.CreateReport(ctx, core.ReportSnapshot{
		Month: 0, Year: 2025,
		Entradas: 1000, Saidas: 200, GastosFixos: 500, Saldo: 300,
		Transactions: []core.Transaction{},
	})
	if err != nil {
		t.Fatalf("CreateReport: %v", err)
	}

	exporter := &fakeExporter{}
	w := NewExportWorker(st, exporter)

	if err := w.HandleExportMessage(ctx, &amqp.ReportExportMessage{ReportID: id}); err != nil {
		t.Fatalf("HandleExportMessage: %v", err)
	}

	if len(exporter.exported) != 1 {
		t.Fatalf("exported %d snapshots, want 1", len(exporter.exported))
	}
	if exporter.exported[0].ID != id {
		t.Errorf("exported snapshot ID = %q, want %q", exporter.exported[0].ID, id)
	}
}

func TestHandleExportMessageMissingReport(t *testing.T) {
	ctx := context.Background()
	exporter := &fakeExporter{}
	w := NewExportWorker(memory.New(), exporter)

	// Missing snapshots are dropped, not requeued.
	if err := w.HandleExportMessage(ctx, &amqp.ReportExportMessage{ReportID: "reports:999"}); err != nil {
		t.Fatalf("HandleExportMessage: %v", err)
	}
	if len(exporter.exported) != 0 {
		t.Errorf("exported %d snapshots, want 0", len(exporter.exported))
	}
}

func TestHandleExportMessageExporterFailure(t *testing.T) {
	ctx := context.Background()
	st := memory.New()

	id, err := st.CreateReport(ctx, core.ReportSnapshot{Month: 1, Year: 2025})
	if err != nil {
		t.Fatalf("CreateReport: %v", err)
	}

	w := NewExportWorker(st, &fakeExporter{err: errors.New("sheets unavailable")})
	if err := w.HandleExportMessage(ctx, &amqp.ReportExportMessage{ReportID: id}); err == nil {
		t.Error("expected error from failing exporter, got nil")
	}
}

func TestExportAll(t *testing.T) {
	ctx := context.Background()
	st := memory.New()

	for m := 0; m < 3; m++ {
		if _, err := st.CreateReport(ctx, core.ReportSnapshot{Month: m, Year: 2025}); err != nil {
			t.Fatalf("CreateReport: %v", err)
		}
	}

	exporter := &fakeExporter{}
	w := NewExportWorker(st, exporter)
	if err := w.ExportAll(ctx); err != nil {
		t.Fatalf("ExportAll: %v", err)
	}
	if len(exporter.exported) != 3 {
		t.Errorf("exported %d snapshots, want 3", len(exporter.exported))
	}
}
