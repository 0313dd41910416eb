package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"cashpilot/internal/core"
	applog "cashpilot/internal/log"
	"cashpilot/internal/store"
)

// ExportPublisher queues a stored snapshot for export by the worker.
// Implemented by the AMQP client; nil disables publishing.
type ExportPublisher interface {
	PublishReportExport(ctx context.Context, reportID string) error
}

// ReportService generates and lists monthly report snapshots.
// Generation is read-then-compute-then-write: a fresh fetch, the pure
// engine computation, one append to the report store.
type ReportService struct {
	transactions  store.TransactionStore
	fixedExpenses store.FixedExpenseStore
	reports       store.ReportStore
	publisher     ExportPublisher
}

func NewReportService(transactions store.TransactionStore, fixedExpenses store.FixedExpenseStore, reports store.ReportStore, publisher ExportPublisher) *ReportService {
	return &ReportService{
		transactions:  transactions,
		fixedExpenses: fixedExpenses,
		reports:       reports,
		publisher:     publisher,
	}
}

// Generate builds and persists a snapshot for the given 0-based month.
// Each call appends a new snapshot; history is kept, not upserted. The
// export job publish is best-effort and never fails the request.
func (s *ReportService) Generate(ctx context.Context, month, year int) (core.ReportSnapshot, error) {
	if !core.ValidMonth(month) {
		return core.ReportSnapshot{}, core.ErrInvalidMonth
	}

	var (
		txs   []core.Transaction
		fixed []core.FixedExpense
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txs, err = s.transactions.ListTransactions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		fixed, err = s.fixedExpenses.ListFixedExpenses(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return core.ReportSnapshot{}, fmt.Errorf("fetch records: %w", err)
	}

	snap := core.BuildMonthlyReport(txs, fixed, month, year)
	id, err := s.reports.CreateReport(ctx, snap)
	if err != nil {
		return core.ReportSnapshot{}, fmt.Errorf("persist report: %w", err)
	}
	// Re-read so callers see the snapshot exactly as stored, with the
	// store-stamped ID and CreatedAt.
	snap, err = s.reports.GetReport(ctx, id)
	if err != nil {
		return core.ReportSnapshot{}, fmt.Errorf("load stored report: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishReportExport(ctx, id); err != nil {
			// The snapshot is stored; the worker catches up on the next run.
			slog.ErrorContext(ctx, "Failed to publish report export job",
				applog.FieldReportID, id, applog.FieldError, err)
		}
	}

	slog.InfoContext(ctx, "Monthly report generated",
		applog.FieldReportID, id,
		applog.FieldMonth, month,
		applog.FieldYear, year,
		"transactions", len(snap.Transactions))

	return snap, nil
}

// List returns stored snapshots, newest first.
func (s *ReportService) List(ctx context.Context) ([]core.ReportSnapshot, error) {
	reports, err := s.reports.ListReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return reports, nil
}
