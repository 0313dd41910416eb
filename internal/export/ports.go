// Package export defines the outbound ports for publishing stored report
// snapshots to external destinations.
package export

import (
	"context"

	"cashpilot/internal/core"
)

// ReportExporter pushes a report snapshot to an external destination.
type ReportExporter interface {
	ExportReport(ctx context.Context, snap core.ReportSnapshot) error
}
