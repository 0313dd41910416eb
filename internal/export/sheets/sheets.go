package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"cashpilot/internal/core"
	ports "cashpilot/internal/export"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	reportsSheet  string
}

// Ensure interface conformance
var _ ports.ReportExporter = (*Client)(nil)

// NewFromEnv creates a Sheets client using environment variables.
// Required: GOOGLE_SPREADSHEET_ID
// Optional: GOOGLE_REPORTS_SHEET_NAME (default "Reports")
// Auth: GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or
// GOOGLE_APPLICATION_CREDENTIALS.
func NewFromEnv(ctx context.Context) (*Client, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}

	reportsSheet := strings.TrimSpace(os.Getenv("GOOGLE_REPORTS_SHEET_NAME"))
	if reportsSheet == "" {
		reportsSheet = "Reports"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		reportsSheet:  reportsSheet,
	}, nil
}

// newSheetsService initializes a Sheets Service using Service Account credentials.
func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))

	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error

	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return service, nil
}

// ExportReport appends the snapshot to the reports sheet: one summary row
// followed by one row per embedded transaction.
func (c *Client) ExportReport(ctx context.Context, snap core.ReportSnapshot) error {
	if c.svc == nil {
		return errors.New("sheets service not initialized")
	}

	rows := snapshotRows(snap)
	rng := fmt.Sprintf("%s!A:G", c.reportsSheet)
	vr := &gsheet.ValueRange{Values: rows}

	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append to sheet %s: %w", c.reportsSheet, err)
	}

	slog.InfoContext(ctx, "Exported report to Google Sheets",
		"report_id", snap.ID,
		"sheet", c.reportsSheet,
		"rows", len(rows))

	return nil
}

// snapshotRows builds the sheet rows for a snapshot. The first row carries the
// report period and totals; the following rows carry the embedded transactions.
func snapshotRows(snap core.ReportSnapshot) [][]any {
	period := fmt.Sprintf("%02d/%d", snap.Month+1, snap.Year)

	rows := make([][]any, 0, len(snap.Transactions)+1)
	rows = append(rows, []any{
		"report", snap.ID, period, snap.Entradas, snap.Saidas, snap.GastosFixos, snap.Saldo,
	})
	for _, t := range snap.Transactions {
		rows = append(rows, []any{
			"transaction", t.ID, t.Date, t.Type, t.GroupKey(), t.Value, "",
		})
	}
	return rows
}
