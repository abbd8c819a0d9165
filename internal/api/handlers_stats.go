package api

import (
	"encoding/json"
	"net/http"
	"time"
)

func (s *Server) handleNavStats(w http.ResponseWriter, r *http.Request) {
	if s.latency == nil {
		jsonError(w, "navigation stats unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"sessions": s.sessions.Count(),
		"stats":    s.latency.Snapshot(),
	})
}

// observe records the latency of one navigation operation.
func (s *Server) observe(op string, start time.Time) {
	d := time.Since(start)
	navDuration.WithLabelValues(op).Observe(d.Seconds())
	if s.latency != nil {
		s.latency.Record(op, d)
	}
}
