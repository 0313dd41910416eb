package core

import (
	"errors"
	"strings"
	"time"
)

const (
	// TypeEntrada labels income transactions, TypeSaida expense transactions.
	// Stored records may carry any casing; comparisons go through MatchesType.
	TypeEntrada = "Entrada"
	TypeSaida   = "Saída"

	// SentinelCategory is the grouping label for transactions without a category.
	SentinelCategory = "Sem categoria"

	// DateLayout is the calendar-day format used by Transaction.Date.
	DateLayout = "2006-01-02"
)

type (
	// Transaction is a single income or expense record as returned by the
	// record store after normalization. Value may still be negative or odd;
	// the engine tolerates it.
	Transaction struct {
		ID        string    `json:"id"`
		Type      string    `json:"type"`
		Category  string    `json:"category"`
		Value     float64   `json:"value"`
		Date      string    `json:"date"`
		CreatedAt time.Time `json:"createdAt"`
	}

	// FixedExpense is a recurring monthly obligation. It is not date-scoped
	// and contributes to every period's summary uniformly.
	FixedExpense struct {
		ID    string  `json:"id"`
		Name  string  `json:"name"`
		Value float64 `json:"value"`
	}

	// Category maps a name to a display color.
	Category struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Color string `json:"color"`
	}
)

var (
	ErrInvalidType  = errors.New("invalid transaction type")
	ErrInvalidDate  = errors.New("invalid date")
	ErrEmptyName    = errors.New("empty name")
	ErrInvalidMonth = errors.New("invalid month")
)

// MatchesType reports whether the transaction's type equals want,
// ignoring case. want is one of TypeEntrada or TypeSaida.
func (t Transaction) MatchesType(want string) bool {
	return strings.EqualFold(t.Type, want)
}

// GroupKey returns the grouping label for the transaction's category,
// falling back to SentinelCategory when none is set.
func (t Transaction) GroupKey() string {
	if t.Category == "" {
		return SentinelCategory
	}
	return t.Category
}

// Day parses the transaction's date as a calendar day. The second return
// is false when the date is missing or malformed.
func (t Transaction) Day() (time.Time, bool) {
	d, err := time.Parse(DateLayout, t.Date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Validate checks fields set by user input. The engine itself never calls
// this; stores do before accepting a create.
func (t Transaction) Validate() error {
	if !t.MatchesType(TypeEntrada) && !t.MatchesType(TypeSaida) {
		return ErrInvalidType
	}
	if t.Date != "" {
		if _, err := time.Parse(DateLayout, t.Date); err != nil {
			return ErrInvalidDate
		}
	}
	return nil
}

func (f FixedExpense) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	return nil
}
