package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bachex/bachex/internal/engine"
	"github.com/bachex/bachex/internal/middleware"
	"github.com/bachex/bachex/internal/models"
	"github.com/bachex/bachex/internal/storage"
)

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	transactions, err := s.store.ListTransactions(r.Context(), userID)
	if err != nil {
		slog.Error("Failed to list transactions", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string][]models.Transaction{"transactions": transactions})
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var t models.Transaction
	if err := decodeJSON(r, &t); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := engine.Validate(&t); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if t.Category == "" {
		t.Category = engine.SuggestCategory(t.Desc, engine.DefaultCategoryRules)
	}

	if err := s.store.CreateTransaction(r.Context(), userID, &t); err != nil {
		slog.Error("Failed to create transaction", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("Transaction created", "user_id", userID, "transaction_id", t.ID, "amount", t.Amount)
	writeJSON(w, http.StatusCreated, map[string]models.Transaction{"transaction": t})
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "transaction id must be an integer")
		return
	}

	err = s.store.DeleteTransaction(r.Context(), userID, id)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{"message": "transaction deleted"})
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, "transaction not found")
	default:
		slog.Error("Failed to delete transaction", "user_id", userID, "transaction_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
