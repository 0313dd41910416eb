package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cashpilot/internal/amqp"
	"cashpilot/internal/export"
	applog "cashpilot/internal/log"
	"cashpilot/internal/store"
)

// ExportWorker handles export of stored report snapshots to an external
// destination such as Google Sheets.
type ExportWorker struct {
	reports  store.ReportStore
	exporter export.ReportExporter
}

func NewExportWorker(reports store.ReportStore, exporter export.ReportExporter) *ExportWorker {
	return &ExportWorker{
		reports:  reports,
		exporter: exporter,
	}
}

// HandleExportMessage processes a single report export message from AMQP.
// A snapshot that no longer exists is logged and dropped rather than
// requeued, since redelivery cannot make it reappear.
func (w *ExportWorker) HandleExportMessage(ctx context.Context, msg *amqp.ReportExportMessage) error {
	slog.InfoContext(ctx, "Processing export message", applog.FieldReportID, msg.ReportID)

	snap, err := w.reports.GetReport(ctx, msg.ReportID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.WarnContext(ctx, "Report not found, dropping export message",
				applog.FieldReportID, msg.ReportID)
			return nil
		}
		return fmt.Errorf("get report from store: %w", err)
	}

	if err := w.exporter.ExportReport(ctx, snap); err != nil {
		return fmt.Errorf("export report: %w", err)
	}

	slog.InfoContext(ctx, "Successfully exported report",
		applog.FieldReportID, snap.ID,
		applog.FieldMonth, snap.Month,
		applog.FieldYear, snap.Year,
		"transactions", len(snap.Transactions))

	return nil
}

// ExportAll exports every stored snapshot, newest first. This is a recovery
// path for when queued messages were lost while the worker was down.
func (w *ExportWorker) ExportAll(ctx context.Context) error {
	snaps, err := w.reports.ListReports(ctx)
	if err != nil {
		return fmt.Errorf("list reports: %w", err)
	}

	if len(snaps) == 0 {
		slog.InfoContext(ctx, "No stored reports to export")
		return nil
	}

	successCount := 0
	errorCount := 0
	for _, snap := range snaps {
		if err := w.exporter.ExportReport(ctx, snap); err != nil {
			slog.ErrorContext(ctx, "Failed to export report",
				applog.FieldReportID, snap.ID, applog.FieldError, err)
			errorCount++
			continue
		}
		successCount++
	}

	slog.InfoContext(ctx, "Export sweep completed",
		"total", len(snaps),
		"exported", successCount,
		"errors", errorCount)

	return nil
}
