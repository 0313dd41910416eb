package amqp

import (
	"encoding/json"
	"time"
)

// ReportExportMessage queues a stored report snapshot for export. It carries
// only the snapshot id; the worker loads the full snapshot from the record
// store, so the message stays valid even if it is delivered late.
type ReportExportMessage struct {
	ReportID  string    `json:"report_id"`
	Timestamp time.Time `json:"timestamp"`
}

func NewReportExportMessage(reportID string) *ReportExportMessage {
	return &ReportExportMessage{
		ReportID:  reportID,
		Timestamp: time.Now(),
	}
}

func (m *ReportExportMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ReportExportMessageFromJSON(data []byte) (*ReportExportMessage, error) {
	var msg ReportExportMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
