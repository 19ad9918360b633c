// Package server implements the JSON REST surface: entity CRUD handlers,
// derived reports (summary, monthly statements), settlement recording and
// the one-time legacy migration. Handlers are stateless; all shared state
// lives behind the storage.Store.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bachex/bachex/internal/auth"
	"github.com/bachex/bachex/internal/middleware"
	"github.com/bachex/bachex/internal/storage"
)

// LegacyUserID is the fixed namespace the pre-auth deployment stored
// records under. POST /migrate copies it into the caller's namespace.
const LegacyUserID = "default_user"

// Server holds the handler dependencies.
type Server struct {
	store      storage.Store
	authn      auth.Authenticator
	jwtManager *auth.JWTManager
}

// New creates a Server with the given storage and auth backends.
func New(store storage.Store, authn auth.Authenticator, jwtManager *auth.JWTManager) *Server {
	return &Server{store: store, authn: authn, jwtManager: jwtManager}
}

// Handler builds the routing table. Register, login and password reset are
// open; everything else requires a bearer token.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	authed := middleware.RequireAuth(s.jwtManager)

	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.HandleFunc("POST /auth/logout", s.handleLogout)
	mux.Handle("GET /auth/me", authed(http.HandlerFunc(s.handleMe)))
	mux.HandleFunc("POST /reset-password", s.handleResetPassword)

	mux.Handle("GET /transactions", authed(http.HandlerFunc(s.handleListTransactions)))
	mux.Handle("POST /transactions", authed(http.HandlerFunc(s.handleCreateTransaction)))
	mux.Handle("DELETE /transactions/{id}", authed(http.HandlerFunc(s.handleDeleteTransaction)))

	mux.Handle("GET /friends", authed(http.HandlerFunc(s.handleListFriends)))
	mux.Handle("POST /friends", authed(http.HandlerFunc(s.handleAddFriend)))
	mux.Handle("DELETE /friends/{name}", authed(http.HandlerFunc(s.handleRemoveFriend)))

	mux.Handle("GET /salary", authed(http.HandlerFunc(s.handleGetSalary)))
	mux.Handle("POST /salary", authed(http.HandlerFunc(s.handleSetSalary)))
	mux.Handle("PUT /salary", authed(http.HandlerFunc(s.handleSetSalary)))
	mux.Handle("DELETE /salary", authed(http.HandlerFunc(s.handleDeleteSalary)))

	mux.Handle("GET /categories", authed(http.HandlerFunc(s.handleListCategories)))
	mux.Handle("POST /categories", authed(http.HandlerFunc(s.handleAddCategory)))
	mux.Handle("DELETE /categories/{name}", authed(http.HandlerFunc(s.handleRemoveCategory)))

	mux.Handle("POST /settlements", authed(http.HandlerFunc(s.handleCreateSettlement)))
	mux.Handle("GET /summary", authed(http.HandlerFunc(s.handleSummary)))
	mux.Handle("GET /statements", authed(http.HandlerFunc(s.handleStatements)))
	mux.Handle("POST /migrate", authed(http.HandlerFunc(s.handleMigrate)))

	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return mux
}
