// Package store defines the record-store boundary: the per-user document
// collections the engine reads from and writes to, and the normalization of
// loosely-typed stored records into canonical shapes.
package store

import (
	"context"
	"errors"

	"cashpilot/internal/core"
)

// Record kinds, matching the stored collection names.
const (
	KindTransactions  = "transactions"
	KindFixedExpenses = "fixed_expenses"
	KindCategories    = "categories"
	KindReports       = "reports"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrUnknownKind = errors.New("unknown record kind")
)

// Ports for the record-store collaborator. All operations may fail with a
// connectivity or permission error; callers propagate those untouched.
type (
	TransactionStore interface {
		ListTransactions(ctx context.Context) ([]core.Transaction, error)
		CreateTransaction(ctx context.Context, t core.Transaction) (id string, err error)
		UpdateTransaction(ctx context.Context, id string, t core.Transaction) error
		DeleteTransaction(ctx context.Context, id string) error
	}

	FixedExpenseStore interface {
		ListFixedExpenses(ctx context.Context) ([]core.FixedExpense, error)
		CreateFixedExpense(ctx context.Context, f core.FixedExpense) (id string, err error)
		UpdateFixedExpense(ctx context.Context, id string, f core.FixedExpense) error
		DeleteFixedExpense(ctx context.Context, id string) error
	}

	CategoryStore interface {
		ListCategories(ctx context.Context) ([]core.Category, error)
		CreateCategory(ctx context.Context, c core.Category) (id string, err error)
		UpdateCategory(ctx context.Context, id string, c core.Category) error
		DeleteCategory(ctx context.Context, id string) error
	}

	// ReportStore is append-only: snapshots are immutable once created.
	ReportStore interface {
		ListReports(ctx context.Context) ([]core.ReportSnapshot, error)
		GetReport(ctx context.Context, id string) (core.ReportSnapshot, error)
		CreateReport(ctx context.Context, r core.ReportSnapshot) (id string, err error)
	}
)
