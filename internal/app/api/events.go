package api

import (
	"fmt"
	"net/http"
)

// getEvents streams collection-change names as server-sent events so a
// connected client knows to re-fetch whatever changed.
func (s *Server) getEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	changes, cancel := s.state.Watch()
	defer cancel()

	for {
		select {
		case <-r.Context().Done():
			return
		case collection, ok := <-changes:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: change\ndata: %s\n\n", collection)
			flusher.Flush()
		}
	}
}
