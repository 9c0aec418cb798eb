package api

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"concierge-system/internal/domain"
)

const sessionCookie = "concierge_session"

// authenticator checks the shared staff credential and tracks issued tokens.
// TODO: replace the single shared password with per-user staff accounts.
type authenticator struct {
	password string
	ttl      time.Duration

	mu     sync.Mutex
	tokens map[string]time.Time
}

func newAuthenticator(password string) *authenticator {
	return &authenticator{
		password: password,
		ttl:      12 * time.Hour,
		tokens:   make(map[string]time.Time),
	}
}

func (a *authenticator) login(password string) (string, bool) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) != 1 {
		return "", false
	}
	token := uuid.NewString()
	a.mu.Lock()
	a.tokens[token] = time.Now().Add(a.ttl)
	a.mu.Unlock()
	return token, true
}

func (a *authenticator) valid(token string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	exp, ok := a.tokens[token]
	if !ok {
		return false
	}
	if time.Now().After(exp) {
		delete(a.tokens, token)
		return false
	}
	return true
}

func (s *Server) postLogin(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	token, ok := s.auth.login(req.Password)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid password"})
		return
	}
	writeJSON(w, http.StatusOK, domain.LoginResponse{Token: token})
}

func (s *Server) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" || !s.auth.valid(token) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			return
		}
		next(w, r)
	}
}

// sessionID returns the device session, issuing a cookie on first contact.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
	})
	return id
}
