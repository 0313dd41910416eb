// Package memory provides an in-process record store used for tests and
// local development. Records keep insertion order, matching the behavior of
// the remote per-user document store.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cashpilot/internal/core"
	"cashpilot/internal/store"
)

type Store struct {
	mu      sync.Mutex
	nextID  int
	txs     []core.Transaction
	fixed   []core.FixedExpense
	cats    []core.Category
	reports []core.ReportSnapshot

	// FailDeletes lists transaction IDs whose delete should fail, for
	// exercising partial bulk-clear outcomes in tests.
	FailDeletes map[string]bool

	now func() time.Time
}

var (
	_ store.TransactionStore  = (*Store)(nil)
	_ store.FixedExpenseStore = (*Store)(nil)
	_ store.CategoryStore     = (*Store)(nil)
	_ store.ReportStore       = (*Store)(nil)
)

func New() *Store {
	return &Store{now: time.Now}
}

// NewAt pins the clock used for CreatedAt stamps.
func NewAt(now func() time.Time) *Store {
	return &Store{now: now}
}

func (s *Store) newID(kind string) string {
	s.nextID++
	return fmt.Sprintf("%s:%d", kind, s.nextID)
}

func (s *Store) ListTransactions(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.txs...), nil
}

func (s *Store) CreateTransaction(_ context.Context, t core.Transaction) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.newID(store.KindTransactions)
	t.CreatedAt = s.now()
	s.txs = append(s.txs, t)
	return t.ID, nil
}

func (s *Store) UpdateTransaction(_ context.Context, id string, t core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.txs {
		if s.txs[i].ID == id {
			t.ID = id
			t.CreatedAt = s.txs[i].CreatedAt
			s.txs[i] = t
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) DeleteTransaction(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailDeletes[id] {
		return fmt.Errorf("delete transaction %s: simulated store failure", id)
	}
	for i := range s.txs {
		if s.txs[i].ID == id {
			s.txs = append(s.txs[:i], s.txs[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) ListFixedExpenses(_ context.Context) ([]core.FixedExpense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.FixedExpense(nil), s.fixed...), nil
}

func (s *Store) CreateFixedExpense(_ context.Context, f core.FixedExpense) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	f.ID = s.newID(store.KindFixedExpenses)
	s.fixed = append(s.fixed, f)
	return f.ID, nil
}

func (s *Store) UpdateFixedExpense(_ context.Context, id string, f core.FixedExpense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.fixed {
		if s.fixed[i].ID == id {
			f.ID = id
			s.fixed[i] = f
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) DeleteFixedExpense(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.fixed {
		if s.fixed[i].ID == id {
			s.fixed = append(s.fixed[:i], s.fixed[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) ListCategories(_ context.Context) ([]core.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Category(nil), s.cats...), nil
}

func (s *Store) CreateCategory(_ context.Context, c core.Category) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.newID(store.KindCategories)
	s.cats = append(s.cats, c)
	return c.ID, nil
}

func (s *Store) UpdateCategory(_ context.Context, id string, c core.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cats {
		if s.cats[i].ID == id {
			c.ID = id
			s.cats[i] = c
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) DeleteCategory(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cats {
		if s.cats[i].ID == id {
			s.cats = append(s.cats[:i], s.cats[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// ListReports returns snapshots newest first.
func (s *Store) ListReports(_ context.Context) ([]core.ReportSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.ReportSnapshot, len(s.reports))
	for i, r := range s.reports {
		out[len(s.reports)-1-i] = r
	}
	return out, nil
}

func (s *Store) GetReport(_ context.Context, id string) (core.ReportSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reports {
		if r.ID == id {
			return r, nil
		}
	}
	return core.ReportSnapshot{}, store.ErrNotFound
}

func (s *Store) CreateReport(_ context.Context, r core.ReportSnapshot) (string, error) {
	if !core.ValidMonth(r.Month) {
		return "", core.ErrInvalidMonth
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.newID(store.KindReports)
	r.CreatedAt = s.now()
	s.reports = append(s.reports, r)
	return r.ID, nil
}
