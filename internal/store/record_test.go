package store

import (
	"testing"
)

func TestDecodeTransaction(t *testing.T) {
	cases := []struct {
		name      string
		doc       string
		wantType  string
		wantValue float64
	}{
		{
			name:      "canonical record",
			doc:       `{"id":"a","type":"Entrada","category":"Salário","value":1000,"date":"2025-01-05"}`,
			wantType:  "Entrada",
			wantValue: 1000,
		},
		{
			name:      "legacy tipo field",
			doc:       `{"id":"b","tipo":"Saída","category":"Mercado","value":200,"date":"2025-01-10"}`,
			wantType:  "Saída",
			wantValue: 200,
		},
		{
			name:      "type wins over tipo",
			doc:       `{"id":"c","type":"Entrada","tipo":"Saída","value":5}`,
			wantType:  "Entrada",
			wantValue: 5,
		},
		{
			name:      "string value",
			doc:       `{"id":"d","type":"Saída","value":"12.5"}`,
			wantType:  "Saída",
			wantValue: 12.5,
		},
		{
			name:      "garbled value coerced to zero",
			doc:       `{"id":"e","type":"Saída","value":"abc"}`,
			wantType:  "Saída",
			wantValue: 0,
		},
		{
			name:      "missing value",
			doc:       `{"id":"f","type":"Saída"}`,
			wantType:  "Saída",
			wantValue: 0,
		},
		{
			name:      "null value",
			doc:       `{"id":"g","type":"Saída","value":null}`,
			wantType:  "Saída",
			wantValue: 0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeTransaction([]byte(tc.doc))
			if err != nil {
				t.Fatalf("DecodeTransaction: %v", err)
			}
			if got.Type != tc.wantType {
				t.Errorf("Type = %q, want %q", got.Type, tc.wantType)
			}
			if got.Value != tc.wantValue {
				t.Errorf("Value = %v, want %v", got.Value, tc.wantValue)
			}
		})
	}
}

func TestDecodeTransactionInvalid(t *testing.T) {
	if _, err := DecodeTransaction([]byte(`not json`)); err == nil {
		t.Fatal("expected error for invalid document")
	}
}

func TestDecodeTransactions(t *testing.T) {
	doc := `[
		{"id":"1","type":"Entrada","value":10},
		{"id":"2","tipo":"Saída","value":"2.5"}
	]`
	got, err := DecodeTransactions([]byte(doc))
	if err != nil {
		t.Fatalf("DecodeTransactions: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("decoded %d records, want 2", len(got))
	}
	if got[0].Value != 10 || got[1].Value != 2.5 {
		t.Errorf("values = %v, %v; want 10, 2.5", got[0].Value, got[1].Value)
	}
	if got[1].Type != "Saída" {
		t.Errorf("legacy tipo not normalized: %q", got[1].Type)
	}
}
