package api

import (
	"net/http"

	"concierge-system/internal/domain"
)

func (s *Server) adminListRequests(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.requests.List())
}

func (s *Server) adminUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateStatusRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	id := r.PathValue("id")
	if err := s.requests.UpdateStatus(r.Context(), id, req.Status); err != nil {
		s.writeError(w, err)
		return
	}
	updated, _ := s.state.Request(id)
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) adminListFeedbacks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.feedbacks.List())
}

func (s *Server) adminUpsertMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := decode(r, &item); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	saved, err := s.menu.Upsert(r.Context(), item)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) adminReplaceMenu(w http.ResponseWriter, r *http.Request) {
	var items []domain.MenuItem
	if err := decode(r, &items); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if err := s.menu.Replace(r.Context(), items); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.menu.List())
}

func (s *Server) adminUpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := decode(r, &item); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	item.ID = r.PathValue("id")
	if _, ok := s.state.MenuItem(item.ID); !ok {
		s.writeError(w, domain.ErrNotFound)
		return
	}
	saved, err := s.menu.Upsert(r.Context(), item)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) adminDeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := s.menu.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) adminToggleAvailability(w http.ResponseWriter, r *http.Request) {
	item, err := s.menu.ToggleAvailability(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) adminReplaceSettings(w http.ResponseWriter, r *http.Request) {
	var hs domain.HotelSettings
	if err := decode(r, &hs); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, s.settings.Replace(r.Context(), hs))
}
