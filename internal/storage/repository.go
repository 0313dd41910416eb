// Package storage implements the record store on SQLite.
//
// Transaction rows keep the raw legacy columns (`type`, `tipo`, value as
// text) exactly as old clients wrote them; normalization to the canonical
// shape happens on read through the store adapter, never in SQL.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"cashpilot/internal/core"
	applog "cashpilot/internal/log"
	"cashpilot/internal/store"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

var (
	_ store.TransactionStore  = (*SQLiteRepository)(nil)
	_ store.FixedExpenseStore = (*SQLiteRepository)(nil)
	_ store.CategoryStore     = (*SQLiteRepository)(nil)
	_ store.ReportStore       = (*SQLiteRepository)(nil)
)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *SQLiteRepository) ListTransactions(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, type, tipo, category, value, date, created_at FROM transactions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var (
			id        int64
			typ, tipo string
			category  string
			value     string
			date      string
			createdAt time.Time
		)
		if err := rows.Scan(&id, &typ, &tipo, &category, &value, &date, &createdAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		raw := store.RawTransaction{
			ID:        strconv.FormatInt(id, 10),
			Type:      typ,
			Tipo:      tipo,
			Category:  category,
			Date:      date,
			CreatedAt: createdAt,
		}
		t := raw.Normalize()
		t.Value = core.ToAmount(value)
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) CreateTransaction(ctx context.Context, t core.Transaction) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (type, category, value, date, created_at) VALUES (?, ?, ?, ?, ?)`,
		t.Type, t.Category, strconv.FormatFloat(t.Value, 'f', -1, 64), t.Date, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("create transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("transaction id: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved",
		"id", id,
		"type", t.Type,
		applog.FieldCategory, t.Category,
		applog.FieldValue, t.Value)

	return strconv.FormatInt(id, 10), nil
}

func (r *SQLiteRepository) UpdateTransaction(ctx context.Context, id string, t core.Transaction) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE transactions SET type = ?, tipo = '', category = ?, value = ?, date = ? WHERE id = ?`,
		t.Type, t.Category, strconv.FormatFloat(t.Value, 'f', -1, 64), t.Date, id)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteRepository) DeleteTransaction(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteRepository) ListFixedExpenses(ctx context.Context) ([]core.FixedExpense, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, value FROM fixed_expenses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list fixed expenses: %w", err)
	}
	defer rows.Close()

	var out []core.FixedExpense
	for rows.Next() {
		var (
			id    int64
			f     core.FixedExpense
			value float64
		)
		if err := rows.Scan(&id, &f.Name, &value); err != nil {
			return nil, fmt.Errorf("scan fixed expense: %w", err)
		}
		f.ID = strconv.FormatInt(id, 10)
		f.Value = value
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) CreateFixedExpense(ctx context.Context, f core.FixedExpense) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO fixed_expenses (name, value) VALUES (?, ?)`, f.Name, f.Value)
	if err != nil {
		return "", fmt.Errorf("create fixed expense: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("fixed expense id: %w", err)
	}
	return strconv.FormatInt(id, 10), nil
}

func (r *SQLiteRepository) UpdateFixedExpense(ctx context.Context, id string, f core.FixedExpense) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE fixed_expenses SET name = ?, value = ? WHERE id = ?`, f.Name, f.Value, id)
	if err != nil {
		return fmt.Errorf("update fixed expense: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteRepository) DeleteFixedExpense(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM fixed_expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete fixed expense: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteRepository) ListCategories(ctx context.Context) ([]core.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, color FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []core.Category
	for rows.Next() {
		var (
			id int64
			c  core.Category
		)
		if err := rows.Scan(&id, &c.Name, &c.Color); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.ID = strconv.FormatInt(id, 10)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) CreateCategory(ctx context.Context, c core.Category) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (name, color) VALUES (?, ?)`, c.Name, c.Color)
	if err != nil {
		return "", fmt.Errorf("create category: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("category id: %w", err)
	}
	return strconv.FormatInt(id, 10), nil
}

func (r *SQLiteRepository) UpdateCategory(ctx context.Context, id string, c core.Category) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE categories SET name = ?, color = ? WHERE id = ?`, c.Name, c.Color, id)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteRepository) DeleteCategory(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return requireRow(res)
}

// ListReports returns snapshots newest first.
func (r *SQLiteRepository) ListReports(ctx context.Context) ([]core.ReportSnapshot, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, month, year, entradas, saidas, gastos_fixos, saldo, transactions, created_at
		 FROM reports ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var out []core.ReportSnapshot
	for rows.Next() {
		snap, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) GetReport(ctx context.Context, id string) (core.ReportSnapshot, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, month, year, entradas, saidas, gastos_fixos, saldo, transactions, created_at
		 FROM reports WHERE id = ?`, id)
	snap, err := scanReport(row)
	if err == sql.ErrNoRows {
		return core.ReportSnapshot{}, store.ErrNotFound
	}
	return snap, err
}

func (r *SQLiteRepository) CreateReport(ctx context.Context, snap core.ReportSnapshot) (string, error) {
	if !core.ValidMonth(snap.Month) {
		return "", core.ErrInvalidMonth
	}
	embedded, err := json.Marshal(snap.Transactions)
	if err != nil {
		return "", fmt.Errorf("encode embedded transactions: %w", err)
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO reports (month, year, entradas, saidas, gastos_fixos, saldo, transactions, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		snap.Month, snap.Year, snap.Entradas, snap.Saidas, snap.GastosFixos, snap.Saldo,
		string(embedded), time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("report id: %w", err)
	}

	slog.InfoContext(ctx, "Report snapshot saved",
		"id", id,
		applog.FieldMonth, snap.Month,
		applog.FieldYear, snap.Year,
		"transactions", len(snap.Transactions))

	return strconv.FormatInt(id, 10), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (core.ReportSnapshot, error) {
	var (
		id       int64
		snap     core.ReportSnapshot
		embedded string
	)
	if err := row.Scan(&id, &snap.Month, &snap.Year, &snap.Entradas, &snap.Saidas,
		&snap.GastosFixos, &snap.Saldo, &embedded, &snap.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return core.ReportSnapshot{}, err
		}
		return core.ReportSnapshot{}, fmt.Errorf("scan report: %w", err)
	}
	snap.ID = strconv.FormatInt(id, 10)
	txs, err := store.DecodeTransactions([]byte(embedded))
	if err != nil {
		return core.ReportSnapshot{}, err
	}
	snap.Transactions = txs
	return snap, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
