package store

import (
	"encoding/json"
	"fmt"
	"time"

	"cashpilot/internal/core"
)

// RawTransaction is the wire shape of a stored transaction document.
//
// Historical records were written by a loosely-typed form: the type may live
// in a legacy `tipo` field, and the value may be a number, a numeric string,
// or missing entirely. Normalization happens once here so the engine only
// ever sees canonical records.
type RawTransaction struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Tipo      string          `json:"tipo"` // legacy field, superseded by Type
	Category  string          `json:"category"`
	Value     json.RawMessage `json:"value"`
	Date      string          `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Normalize converts the raw document into a canonical Transaction.
// Type wins over the legacy tipo field; the value is coerced via
// core.ToAmount, so malformed amounts become 0 rather than an error.
func (r RawTransaction) Normalize() core.Transaction {
	typ := r.Type
	if typ == "" {
		typ = r.Tipo
	}
	return core.Transaction{
		ID:        r.ID,
		Type:      typ,
		Category:  r.Category,
		Value:     core.ToAmount(decodeValue(r.Value)),
		Date:      r.Date,
		CreatedAt: r.CreatedAt,
	}
}

// DecodeTransaction parses and normalizes a single stored document.
func DecodeTransaction(doc []byte) (core.Transaction, error) {
	var raw RawTransaction
	if err := json.Unmarshal(doc, &raw); err != nil {
		return core.Transaction{}, fmt.Errorf("decode transaction document: %w", err)
	}
	return raw.Normalize(), nil
}

// DecodeTransactions parses and normalizes a stored document array.
func DecodeTransactions(doc []byte) ([]core.Transaction, error) {
	var raws []RawTransaction
	if err := json.Unmarshal(doc, &raws); err != nil {
		return nil, fmt.Errorf("decode transaction documents: %w", err)
	}
	out := make([]core.Transaction, len(raws))
	for i, r := range raws {
		out[i] = r.Normalize()
	}
	return out, nil
}

// decodeValue turns the raw JSON value field into something core.ToAmount
// understands: nil when absent, a float64, or a string.
func decodeValue(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return num
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return nil
}
