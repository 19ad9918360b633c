package server

import (
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/bachex/bachex/internal/middleware"
	"github.com/bachex/bachex/internal/models"
)

func (s *Server) handleGetSalary(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	salary, err := s.store.GetSalary(r.Context(), userID)
	if err != nil {
		slog.Error("Failed to get salary", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if salary == nil {
		salary = &models.Salary{}
	}
	writeJSON(w, http.StatusOK, map[string]*models.Salary{"salary": salary})
}

func (s *Server) handleSetSalary(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var salary models.Salary
	if err := decodeJSON(r, &salary); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if math.IsNaN(salary.Amount) || math.IsInf(salary.Amount, 0) ||
		math.IsNaN(salary.PreviousBalance) || math.IsInf(salary.PreviousBalance, 0) {
		writeError(w, http.StatusBadRequest, "amounts must be finite numbers")
		return
	}
	if salary.Amount < 0 {
		writeError(w, http.StatusBadRequest, "salary amount must be non-negative")
		return
	}
	if salary.ReceivedDate == "" {
		salary.ReceivedDate = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", salary.ReceivedDate); err != nil {
		writeError(w, http.StatusBadRequest, "receivedDate must be in YYYY-MM-DD format")
		return
	}

	if err := s.store.SetSalary(r.Context(), userID, &salary); err != nil {
		slog.Error("Failed to set salary", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("Salary updated", "user_id", userID, "amount", salary.Amount)
	writeJSON(w, http.StatusOK, map[string]*models.Salary{"salary": &salary})
}

func (s *Server) handleDeleteSalary(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	if err := s.store.DeleteSalary(r.Context(), userID); err != nil {
		slog.Error("Failed to delete salary", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "salary cleared"})
}
