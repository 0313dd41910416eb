// Package services orchestrates the record store and the aggregation engine:
// it fetches fresh snapshots, runs the pure computations, and writes results
// back. No state is cached between calls.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"cashpilot/internal/core"
	applog "cashpilot/internal/log"
	"cashpilot/internal/store"
)

// maxConcurrentDeletes bounds the fan-out of a bulk clear.
const maxConcurrentDeletes = 8

// Overview is the dashboard payload: aggregate totals plus per-type
// category breakdowns computed from one consistent snapshot.
type Overview struct {
	Summary       core.Summary         `json:"summary"`
	Incomes       []core.CategoryTotal `json:"incomes"`
	Expenses      []core.CategoryTotal `json:"expenses"`
	FixedExpenses []core.CategoryTotal `json:"fixedExpenses"`
}

// BulkResult reports the outcome of a bulk delete per record, so the caller
// can reconcile UI state precisely instead of assuming all-or-nothing.
type BulkResult struct {
	Succeeded []string `json:"succeeded"`
	Failed    []string `json:"failed"`
}

// FinanceService reads transactions, fixed expenses, and categories and
// feeds them through the engine.
type FinanceService struct {
	transactions  store.TransactionStore
	fixedExpenses store.FixedExpenseStore
	categories    store.CategoryStore
}

func NewFinanceService(transactions store.TransactionStore, fixedExpenses store.FixedExpenseStore, categories store.CategoryStore) *FinanceService {
	return &FinanceService{
		transactions:  transactions,
		fixedExpenses: fixedExpenses,
		categories:    categories,
	}
}

// fetchAll issues the three independent reads concurrently. Any store
// failure aborts the whole fetch; prior in-memory state is untouched since
// results only materialize on full success.
func (s *FinanceService) fetchAll(ctx context.Context) ([]core.Transaction, []core.FixedExpense, []core.Category, error) {
	var (
		txs   []core.Transaction
		fixed []core.FixedExpense
		cats  []core.Category
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txs, err = s.transactions.ListTransactions(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		fixed, err = s.fixedExpenses.ListFixedExpenses(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		cats, err = s.categories.ListCategories(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, nil, fmt.Errorf("fetch records: %w", err)
	}
	return txs, fixed, cats, nil
}

// Overview assembles the dashboard data from a fresh snapshot.
func (s *FinanceService) Overview(ctx context.Context) (Overview, error) {
	txs, fixed, cats, err := s.fetchAll(ctx)
	if err != nil {
		return Overview{}, err
	}

	fixedSlices := make([]core.CategoryTotal, len(fixed))
	for i, f := range fixed {
		fixedSlices[i] = core.CategoryTotal{
			Name:  f.Name,
			Value: core.ToAmount(f.Value),
			Color: core.PaletteColor(i),
		}
	}

	return Overview{
		Summary:       core.ComputeSummary(txs, fixed),
		Incomes:       core.GroupByCategoryWithColors(txs, core.TypeEntrada, cats),
		Expenses:      core.GroupByCategoryWithColors(txs, core.TypeSaida, cats),
		FixedExpenses: fixedSlices,
	}, nil
}

// Transactions lists the stored transactions with display filtering applied.
func (s *FinanceService) Transactions(ctx context.Context, f core.Filter) ([]core.Transaction, error) {
	txs, err := s.transactions.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return core.FilterTransactions(txs, f), nil
}

// CreateTransaction validates and stores a new transaction.
func (s *FinanceService) CreateTransaction(ctx context.Context, t core.Transaction) (string, error) {
	id, err := s.transactions.CreateTransaction(ctx, t)
	if err != nil {
		return "", fmt.Errorf("create transaction: %w", err)
	}
	return id, nil
}

// UpdateTransaction replaces a stored transaction.
func (s *FinanceService) UpdateTransaction(ctx context.Context, id string, t core.Transaction) error {
	if err := s.transactions.UpdateTransaction(ctx, id, t); err != nil {
		return fmt.Errorf("update transaction %s: %w", id, err)
	}
	return nil
}

// DeleteTransaction removes a single stored transaction.
func (s *FinanceService) DeleteTransaction(ctx context.Context, id string) error {
	if err := s.transactions.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("delete transaction %s: %w", id, err)
	}
	return nil
}

// ClearTransactions deletes every stored transaction, issuing the deletes
// concurrently. Partial failure is expected behavior of the underlying
// store: the result names each succeeded and failed id, and the caller must
// re-fetch the authoritative list rather than assume an empty one.
func (s *FinanceService) ClearTransactions(ctx context.Context) (BulkResult, error) {
	txs, err := s.transactions.ListTransactions(ctx)
	if err != nil {
		return BulkResult{}, fmt.Errorf("list transactions: %w", err)
	}

	var (
		mu     sync.Mutex
		result = BulkResult{Succeeded: []string{}, Failed: []string{}}
	)

	g := new(errgroup.Group)
	g.SetLimit(maxConcurrentDeletes)
	for _, t := range txs {
		id := t.ID
		g.Go(func() error {
			err := s.transactions.DeleteTransaction(ctx, id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				slog.WarnContext(ctx, "Bulk clear: delete failed", "id", id, applog.FieldError, err)
				result.Failed = append(result.Failed, id)
			} else {
				result.Succeeded = append(result.Succeeded, id)
			}
			return nil
		})
	}
	g.Wait()

	// Deterministic output regardless of goroutine scheduling.
	sort.Strings(result.Succeeded)
	sort.Strings(result.Failed)

	slog.InfoContext(ctx, "Bulk clear finished",
		"requested", len(txs),
		"succeeded", len(result.Succeeded),
		"failed", len(result.Failed))

	return result, nil
}
