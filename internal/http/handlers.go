package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"cashpilot/internal/core"
	"cashpilot/internal/store"
)

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	ov, err := s.finance.Overview(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Overview error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load summary")
		return
	}
	writeJSON(w, http.StatusOK, ov.Summary)
}

func (s *Server) handleBreakdown(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	ov, err := s.finance.Overview(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Overview error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load breakdown")
		return
	}

	typ := strings.TrimSpace(r.URL.Query().Get("type"))
	switch {
	case typ == "" || strings.EqualFold(typ, core.TypeSaida):
		writeJSON(w, http.StatusOK, ov.Expenses)
	case strings.EqualFold(typ, core.TypeEntrada):
		writeJSON(w, http.StatusOK, ov.Incomes)
	case strings.EqualFold(typ, "fixed"):
		writeJSON(w, http.StatusOK, ov.FixedExpenses)
	default:
		writeError(w, http.StatusBadRequest, "unknown type: "+typ)
	}
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListTransactions(w, r)
	case http.MethodPost:
		s.handleCreateTransaction(w, r)
	case http.MethodDelete:
		s.handleClearTransactions(w, r)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost, http.MethodDelete)
	}
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := core.Filter{
		Search:   strings.TrimSpace(q.Get("search")),
		Category: strings.TrimSpace(q.Get("category")),
		Type:     strings.TrimSpace(q.Get("type")),
		Date:     strings.TrimSpace(q.Get("date")),
	}

	ts, err := s.finance.Transactions(r.Context(), f)
	if err != nil {
		slog.ErrorContext(r.Context(), "List transactions error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load transactions")
		return
	}
	writeJSON(w, http.StatusOK, ts)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	// Decode through the raw record adapter so legacy payloads (tipo field,
	// string values) are normalized the same way stored records are.
	var raw store.RawTransaction
	if err := readJSON(r, &raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t := raw.Normalize()
	id, err := s.finance.CreateTransaction(r.Context(), t)
	if err != nil {
		if errors.Is(err, core.ErrInvalidType) || errors.Is(err, core.ErrInvalidDate) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.ErrorContext(r.Context(), "Create transaction error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create transaction")
		return
	}

	t.ID = id
	writeJSON(w, http.StatusCreated, t)
}

func (s *Server) handleClearTransactions(w http.ResponseWriter, r *http.Request) {
	res, err := s.finance.ClearTransactions(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Clear transactions error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to clear transactions")
		return
	}

	status := http.StatusOK
	if len(res.Failed) > 0 {
		status = http.StatusMultiStatus
	}
	writeJSON(w, status, res)
}

func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListReports(w, r)
	case http.MethodPost:
		s.handleGenerateReport(w, r)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	snaps, err := s.reports.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List reports error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load reports")
		return
	}
	writeJSON(w, http.StatusOK, snaps)
}

type generateReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	var req generateReportRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snap, err := s.reports.Generate(r.Context(), req.Month, req.Year)
	if err != nil {
		if errors.Is(err, core.ErrInvalidMonth) {
			writeError(w, http.StatusUnprocessableEntity, "month must be between 0 and 11, got "+strconv.Itoa(req.Month))
			return
		}
		slog.ErrorContext(r.Context(), "Generate report error", "error", err, "month", req.Month, "year", req.Year)
		writeError(w, http.StatusInternalServerError, "failed to generate report")
		return
	}
	writeJSON(w, http.StatusCreated, snap)
}

func (s *Server) handleFixedExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		fes, err := s.fixedExpenses.ListFixedExpenses(r.Context())
		if err != nil {
			slog.ErrorContext(r.Context(), "List fixed expenses error", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to load fixed expenses")
			return
		}
		writeJSON(w, http.StatusOK, fes)
	case http.MethodPost:
		var fe core.FixedExpense
		if err := readJSON(r, &fe); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		id, err := s.fixedExpenses.CreateFixedExpense(r.Context(), fe)
		if err != nil {
			if errors.Is(err, core.ErrEmptyName) {
				writeError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			slog.ErrorContext(r.Context(), "Create fixed expense error", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to create fixed expense")
			return
		}
		fe.ID = id
		writeJSON(w, http.StatusCreated, fe)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		cats, err := s.categories.ListCategories(r.Context())
		if err != nil {
			slog.ErrorContext(r.Context(), "List categories error", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to load categories")
			return
		}
		writeJSON(w, http.StatusOK, cats)
	case http.MethodPost:
		var cat core.Category
		if err := readJSON(r, &cat); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if cat.Color == "" {
			cat.Color = core.DefaultCategoryColor
		}
		id, err := s.categories.CreateCategory(r.Context(), cat)
		if err != nil {
			if errors.Is(err, core.ErrEmptyName) {
				writeError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			slog.ErrorContext(r.Context(), "Create category error", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to create category")
			return
		}
		cat.ID = id
		writeJSON(w, http.StatusCreated, cat)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}
