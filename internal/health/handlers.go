package health

import (
	"net/http"
	"time"

	"github.com/noah-isme/backend-checkout/internal/common"
)

// Handler exposes the health endpoint.
type Handler struct {
	Started time.Time
}

type statusBody struct {
	Status    string  `json:"status"`
	Message   string  `json:"message"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}

// Status handles GET /api/health.
func (h Handler) Status(w http.ResponseWriter, _ *http.Request) {
	started := h.Started
	if started.IsZero() {
		started = time.Now()
	}
	common.JSON(w, http.StatusOK, statusBody{
		Status:    "OK",
		Message:   "Server is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(started).Seconds(),
	})
}
