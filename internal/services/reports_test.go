package services

import (
	"context"
	"errors"
	"testing"

	"cashpilot/internal/core"
)

type capturingPublisher struct {
	published []string
	err       error
}

func (p *capturingPublisher) PublishReportExport(_ context.Context, reportID string) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, reportID)
	return nil
}

func TestGenerate(t *testing.T) {
	s := seedStore(t)
	pub := &capturingPublisher{}
	svc := NewReportService(s, s, s, pub)
	ctx := context.Background()

	snap, err := svc.Generate(ctx, 0, 2025) // January
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if snap.ID == "" {
		t.Fatal("snapshot should carry its persisted id")
	}
	if snap.CreatedAt.IsZero() {
		t.Error("returned snapshot should carry the store-stamped CreatedAt")
	}
	if snap.Entradas != 1000 || snap.Saidas != 200 || snap.GastosFixos != 500 || snap.Saldo != 300 {
		t.Errorf("totals = %+v", snap)
	}
	if len(snap.Transactions) != 2 {
		t.Errorf("embedded %d transactions, want 2", len(snap.Transactions))
	}
	if len(pub.published) != 1 || pub.published[0] != snap.ID {
		t.Errorf("published = %v, want [%s]", pub.published, snap.ID)
	}

	stored, err := s.GetReport(ctx, snap.ID)
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	if stored.CreatedAt.IsZero() {
		t.Error("store should stamp CreatedAt")
	}
}

func TestGenerateEmptyMonth(t *testing.T) {
	s := seedStore(t)
	svc := NewReportService(s, s, s, nil)

	snap, err := svc.Generate(context.Background(), 5, 2025) // June, nothing there
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if snap.Entradas != 0 || snap.Saidas != 0 {
		t.Errorf("expected zero totals, got %+v", snap)
	}
	if snap.GastosFixos != 500 || snap.Saldo != -500 {
		t.Errorf("fixed expenses must survive an empty month: %+v", snap)
	}
}

func TestGenerateInvalidMonth(t *testing.T) {
	s := seedStore(t)
	svc := NewReportService(s, s, s, nil)

	if _, err := svc.Generate(context.Background(), 12, 2025); !errors.Is(err, core.ErrInvalidMonth) {
		t.Fatalf("err = %v, want ErrInvalidMonth", err)
	}
}

func TestGeneratePublishFailureDoesNotFail(t *testing.T) {
	s := seedStore(t)
	pub := &capturingPublisher{err: errors.New("broker down")}
	svc := NewReportService(s, s, s, pub)

	snap, err := svc.Generate(context.Background(), 0, 2025)
	if err != nil {
		t.Fatalf("Generate should tolerate publish failure, got %v", err)
	}
	if snap.ID == "" {
		t.Error("snapshot must still be persisted")
	}
}

func TestGenerateKeepsHistory(t *testing.T) {
	s := seedStore(t)
	svc := NewReportService(s, s, s, nil)
	ctx := context.Background()

	first, _ := svc.Generate(ctx, 0, 2025)
	second, _ := svc.Generate(ctx, 0, 2025)
	if first.ID == second.ID {
		t.Fatal("repeated generation must append, not upsert")
	}

	reports, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("got %d reports, want 2", len(reports))
	}
	if reports[0].ID != second.ID {
		t.Errorf("reports should be newest first, got %s", reports[0].ID)
	}
}
