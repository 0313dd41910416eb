package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"cashpilot/internal/core"
	"cashpilot/internal/store"
)

func pathID(r *http.Request, prefix string) string {
	return strings.TrimPrefix(r.URL.Path, prefix)
}

func (s *Server) handleTransactionByID(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "/api/transactions/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transaction id")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var raw store.RawTransaction
		if err := readJSON(r, &raw); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		t := raw.Normalize()
		if err := t.Validate(); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		if err := s.finance.UpdateTransaction(r.Context(), id, t); err != nil {
			s.writeStoreError(w, r, err, "update transaction")
			return
		}
		t.ID = id
		writeJSON(w, http.StatusOK, t)
	case http.MethodDelete:
		if err := s.finance.DeleteTransaction(r.Context(), id); err != nil {
			s.writeStoreError(w, r, err, "delete transaction")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		methodNotAllowed(w, http.MethodPut, http.MethodDelete)
	}
}

func (s *Server) handleFixedExpenseByID(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "/api/fixed-expenses/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing fixed expense id")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var fe core.FixedExpense
		if err := readJSON(r, &fe); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := fe.Validate(); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		if err := s.fixedExpenses.UpdateFixedExpense(r.Context(), id, fe); err != nil {
			s.writeStoreError(w, r, err, "update fixed expense")
			return
		}
		fe.ID = id
		writeJSON(w, http.StatusOK, fe)
	case http.MethodDelete:
		if err := s.fixedExpenses.DeleteFixedExpense(r.Context(), id); err != nil {
			s.writeStoreError(w, r, err, "delete fixed expense")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		methodNotAllowed(w, http.MethodPut, http.MethodDelete)
	}
}

func (s *Server) handleCategoryByID(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "/api/categories/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing category id")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var cat core.Category
		if err := readJSON(r, &cat); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if cat.Color == "" {
			cat.Color = core.DefaultCategoryColor
		}
		if err := cat.Validate(); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		if err := s.categories.UpdateCategory(r.Context(), id, cat); err != nil {
			s.writeStoreError(w, r, err, "update category")
			return
		}
		cat.ID = id
		writeJSON(w, http.StatusOK, cat)
	case http.MethodDelete:
		if err := s.categories.DeleteCategory(r.Context(), id); err != nil {
			s.writeStoreError(w, r, err, "delete category")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		methodNotAllowed(w, http.MethodPut, http.MethodDelete)
	}
}

func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error, action string) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	slog.ErrorContext(r.Context(), "Store error", "action", action, "error", err)
	writeError(w, http.StatusInternalServerError, "failed to "+action)
}
