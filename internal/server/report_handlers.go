package server

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/bachex/bachex/internal/engine"
	"github.com/bachex/bachex/internal/middleware"
	"github.com/bachex/bachex/internal/models"
)

type settleRequest struct {
	Friend string `json:"friend"`
}

type summaryResponse struct {
	Summary    engine.Summary         `json:"summary"`
	Categories []engine.CategoryTotal `json:"categories"`
	Timeline   []engine.DatePoint     `json:"timeline"`
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	transactions, friends, salary, err := s.loadBooks(r)
	if err != nil {
		slog.Error("Failed to load records for summary", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		Summary:    engine.Summarize(transactions, friends, salary),
		Categories: engine.CategoryTotals(transactions),
		Timeline:   engine.Timeline(transactions),
	})
}

func (s *Server) handleStatements(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	transactions, _, salary, err := s.loadBooks(r)
	if err != nil {
		slog.Error("Failed to load records for statements", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	statements := engine.MonthlyStatements(transactions, salary)
	writeJSON(w, http.StatusOK, map[string][]engine.MonthlyStatement{"statements": statements})
}

// handleCreateSettlement computes the friend's live balance and records the
// offsetting transaction. The balance is recomputed server side rather than
// trusted from the client, so a stale UI cannot settle the wrong amount.
func (s *Server) handleCreateSettlement(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req settleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Friend == "" {
		writeError(w, http.StatusBadRequest, "friend is required")
		return
	}

	transactions, friends, salary, err := s.loadBooks(r)
	if err != nil {
		slog.Error("Failed to load records for settlement", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !slices.Contains(friends, req.Friend) {
		writeError(w, http.StatusNotFound, "friend not found")
		return
	}

	summary := engine.Summarize(transactions, friends, salary)
	settlement := engine.NewSettlement(req.Friend, summary.Balances[req.Friend], time.Now().Format("2006-01-02"))

	if err := s.store.CreateTransaction(r.Context(), userID, &settlement); err != nil {
		slog.Error("Failed to record settlement", "user_id", userID, "friend", req.Friend, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("Settlement recorded", "user_id", userID, "friend", req.Friend, "amount", settlement.Amount)
	writeJSON(w, http.StatusCreated, map[string]models.Transaction{"transaction": settlement})
}

// handleMigrate copies the pre-auth shared namespace into the caller's own.
// Safe to call more than once: copies are idempotent upserts.
func (s *Server) handleMigrate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	report, err := s.store.CopyUserData(r.Context(), LegacyUserID, userID)
	if err != nil {
		slog.Error("Legacy migration failed", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("Legacy migration completed", "user_id", userID,
		"transactions", report.Transactions, "friends", report.Friends, "salary", report.Salary)
	writeJSON(w, http.StatusOK, report)
}

// loadBooks fetches the three collections every derived report needs.
func (s *Server) loadBooks(r *http.Request) ([]models.Transaction, []string, *models.Salary, error) {
	userID := middleware.GetUserID(r.Context())

	transactions, err := s.store.ListTransactions(r.Context(), userID)
	if err != nil {
		return nil, nil, nil, err
	}
	friends, err := s.store.ListFriends(r.Context(), userID)
	if err != nil {
		return nil, nil, nil, err
	}
	salary, err := s.store.GetSalary(r.Context(), userID)
	if err != nil {
		return nil, nil, nil, err
	}
	return transactions, friends, salary, nil
}
