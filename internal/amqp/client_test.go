package amqp

import (
	"testing"
	"time"
)

func TestNewReportExportMessage(t *testing.T) {
	before := time.Now()
	msg := NewReportExportMessage("reports:42")
	after := time.Now()

	if msg.ReportID != "reports:42" {
		t.Errorf("ReportID = %q, want %q", msg.ReportID, "reports:42")
	}
	if msg.Timestamp.Before(before) || msg.Timestamp.After(after) {
		t.Errorf("Timestamp %v outside [%v, %v]", msg.Timestamp, before, after)
	}
}

func TestReportExportMessageRoundTrip(t *testing.T) {
	original := &ReportExportMessage{
		ReportID:  "reports:7",
		Timestamp: time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
	}

	data, err := original.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	decoded, err := ReportExportMessageFromJSON(data)
	if err != nil {
		t.Fatalf("ReportExportMessageFromJSON() error = %v", err)
	}

	if decoded.ReportID != original.ReportID {
		t.Errorf("ReportID = %q, want %q", decoded.ReportID, original.ReportID)
	}
	if !decoded.Timestamp.Equal(original.Timestamp) {
		t.Errorf("Timestamp = %v, want %v", decoded.Timestamp, original.Timestamp)
	}
}

func TestReportExportMessageFromJSONInvalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"not json", []byte("not json at all")},
		{"wrong type", []byte(`{"report_id": 42}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReportExportMessageFromJSON(tt.data); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
