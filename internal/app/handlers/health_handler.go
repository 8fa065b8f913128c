package handlers

import (
	"net/http"
	"time"
)

type HealthHandler struct {
	startedAt time.Time
	now       func() time.Time
}

func NewHealthHandler(startedAt time.Time) *HealthHandler {
	return &HealthHandler{startedAt: startedAt, now: time.Now}
}

// Health godoc
// @Summary Liveness probe
// @Description Reports that the process is up and how long it has been running, in seconds.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Alive"
// @Router /health [get]
func (hh *HealthHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Uptime: hh.now().Sub(hh.startedAt).Seconds(),
	})
}
