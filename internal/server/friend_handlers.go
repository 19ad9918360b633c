package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bachex/bachex/internal/middleware"
	"github.com/bachex/bachex/internal/models"
	"github.com/bachex/bachex/internal/storage"
)

type nameRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleListFriends(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	friends, err := s.store.ListFriends(r.Context(), userID)
	if err != nil {
		slog.Error("Failed to list friends", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"friends": friends})
}

func (s *Server) handleAddFriend(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req nameRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		writeError(w, http.StatusBadRequest, "friend name is required")
		return
	}
	if name == models.Me {
		writeError(w, http.StatusBadRequest, "cannot add yourself as a friend")
		return
	}

	err := s.store.AddFriend(r.Context(), userID, name)
	switch {
	case err == nil:
		slog.Info("Friend added", "user_id", userID, "friend", name)
		writeJSON(w, http.StatusCreated, map[string]string{"name": name})
	case errors.Is(err, storage.ErrDuplicate):
		writeError(w, http.StatusBadRequest, "friend already exists")
	default:
		slog.Error("Failed to add friend", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) handleRemoveFriend(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	name := r.PathValue("name")

	if err := s.store.RemoveFriend(r.Context(), userID, name); err != nil {
		slog.Error("Failed to remove friend", "user_id", userID, "friend", name, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "friend removed"})
}
