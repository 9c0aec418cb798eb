// Package api exposes the guest and staff HTTP surface over the state
// container. Validation failures map to 400, unknown records to 404, and
// rejected lifecycle transitions to 409; store failures never surface here
// because mutations are optimistic and best-effort.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"concierge-system/internal/chat"
	"concierge-system/internal/common/logger"
	"concierge-system/internal/domain"
	"concierge-system/internal/service"
	"concierge-system/internal/state"
)

type Server struct {
	lg        *logger.Logger
	state     *state.Container
	requests  *service.RequestService
	feedbacks *service.FeedbackService
	menu      *service.MenuService
	settings  *service.SettingsService
	concierge *chat.Concierge
	auth      *authenticator
}

func NewServer(c *state.Container, concierge *chat.Concierge, adminPassword string, lg *logger.Logger) *Server {
	return &Server{
		lg:        lg,
		state:     c,
		requests:  service.NewRequestService(c),
		feedbacks: service.NewFeedbackService(c),
		menu:      service.NewMenuService(c),
		settings:  service.NewSettingsService(c),
		concierge: concierge,
		auth:      newAuthenticator(adminPassword),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Guest surface.
	mux.HandleFunc("GET /api/settings", s.getSettings)
	mux.HandleFunc("GET /api/menu", s.getMenu)
	mux.HandleFunc("POST /api/requests/order", s.postOrder)
	mux.HandleFunc("POST /api/requests/service", s.postService)
	mux.HandleFunc("POST /api/requests/checkout", s.postCheckout)
	mux.HandleFunc("POST /api/feedbacks", s.postFeedback)
	mux.HandleFunc("POST /api/chat", s.postChat)
	mux.HandleFunc("GET /api/session/room", s.getRoom)
	mux.HandleFunc("PUT /api/session/room", s.putRoom)
	mux.HandleFunc("GET /api/events", s.getEvents)

	// Staff surface.
	mux.HandleFunc("POST /api/admin/login", s.postLogin)
	mux.HandleFunc("GET /api/admin/requests", s.requireAdmin(s.adminListRequests))
	mux.HandleFunc("PATCH /api/admin/requests/{id}/status", s.requireAdmin(s.adminUpdateStatus))
	mux.HandleFunc("GET /api/admin/feedbacks", s.requireAdmin(s.adminListFeedbacks))
	mux.HandleFunc("POST /api/admin/menu", s.requireAdmin(s.adminUpsertMenuItem))
	mux.HandleFunc("PUT /api/admin/menu", s.requireAdmin(s.adminReplaceMenu))
	mux.HandleFunc("PUT /api/admin/menu/{id}", s.requireAdmin(s.adminUpdateMenuItem))
	mux.HandleFunc("DELETE /api/admin/menu/{id}", s.requireAdmin(s.adminDeleteMenuItem))
	mux.HandleFunc("PATCH /api/admin/menu/{id}/availability", s.requireAdmin(s.adminToggleAvailability))
	mux.HandleFunc("PUT /api/admin/settings", s.requireAdmin(s.adminReplaceSettings))

	return mux
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidTransition):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrRoomNumberRequired),
		errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrProblemRequired),
		errors.Is(err, domain.ErrTimeRequired),
		errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrMenuItemNameRequired),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidStatus):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		s.lg.Error("request_failed", err, nil)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
