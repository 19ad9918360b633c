package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bachex/bachex/internal/middleware"
	"github.com/bachex/bachex/internal/storage"
)

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	categories, err := s.store.ListCategories(r.Context(), userID)
	if err != nil {
		slog.Error("Failed to list categories", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"categories": categories})
}

func (s *Server) handleAddCategory(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req nameRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		writeError(w, http.StatusBadRequest, "category name is required")
		return
	}

	err := s.store.AddCategory(r.Context(), userID, name)
	switch {
	case err == nil:
		slog.Info("Category added", "user_id", userID, "category", name)
		writeJSON(w, http.StatusCreated, map[string]string{"name": name})
	case errors.Is(err, storage.ErrDuplicate):
		writeError(w, http.StatusBadRequest, "category already exists")
	default:
		slog.Error("Failed to add category", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) handleRemoveCategory(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	name := r.PathValue("name")

	if err := s.store.RemoveCategory(r.Context(), userID, name); err != nil {
		slog.Error("Failed to remove category", "user_id", userID, "category", name, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "category removed"})
}
