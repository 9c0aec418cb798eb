package api

import (
	"net/http"

	"concierge-system/internal/chat"
	"concierge-system/internal/domain"
)

func (s *Server) getSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.settings.View())
}

func (s *Server) getMenu(w http.ResponseWriter, r *http.Request) {
	if cat := r.URL.Query().Get("category"); cat != "" {
		items, err := s.menu.ListByCategory(domain.Category(cat))
		if err != nil {
			s.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
		return
	}
	writeJSON(w, http.StatusOK, s.menu.List())
}

func (s *Server) postOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	created, err := s.requests.SubmitOrder(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.rememberRoom(w, r, req.RoomNumber)
	writeJSON(w, http.StatusCreated, domain.CreateRequestResponse{ID: created.ID, Status: created.Status})
}

func (s *Server) postService(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateServiceRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	created, err := s.requests.SubmitService(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.rememberRoom(w, r, req.RoomNumber)
	writeJSON(w, http.StatusCreated, domain.CreateRequestResponse{ID: created.ID, Status: created.Status})
}

func (s *Server) postCheckout(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCheckoutRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	created, err := s.requests.SubmitCheckout(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.rememberRoom(w, r, req.RoomNumber)
	writeJSON(w, http.StatusCreated, domain.CreateRequestResponse{ID: created.ID, Status: created.Status})
}

func (s *Server) postFeedback(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateFeedbackRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	created, err := s.feedbacks.Submit(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.rememberRoom(w, r, req.RoomNumber)
	writeJSON(w, http.StatusCreated, map[string]string{"id": created.ID})
}

func (s *Server) postChat(w http.ResponseWriter, r *http.Request) {
	var req domain.ChatRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	lang := req.Language
	if lang == "" {
		lang = "EN"
	}
	hotelContext := chat.BuildContext(s.settings.Get(), s.menu.List(), lang)
	reply := s.concierge.Reply(r.Context(), req.Message, hotelContext)
	writeJSON(w, http.StatusOK, domain.ChatResponse{Reply: reply})
}

func (s *Server) getRoom(w http.ResponseWriter, r *http.Request) {
	sessionID := s.sessionID(w, r)
	writeJSON(w, http.StatusOK, map[string]string{
		"room_number": s.state.RoomNumber(r.Context(), sessionID),
	})
}

func (s *Server) putRoom(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RoomNumber string `json:"room_number"`
	}
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	sessionID := s.sessionID(w, r)
	s.state.SetRoomNumber(r.Context(), sessionID, req.RoomNumber)
	w.WriteHeader(http.StatusNoContent)
}

// rememberRoom persists the submitted room number for the session, so the
// guest does not retype it on the next request from the same device.
func (s *Server) rememberRoom(w http.ResponseWriter, r *http.Request, room string) {
	if room == "" {
		return
	}
	s.state.SetRoomNumber(r.Context(), s.sessionID(w, r), room)
}
