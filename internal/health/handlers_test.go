package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/noah-isme/backend-checkout/internal/health"
)

func TestStatus(t *testing.T) {
	handler := health.Handler{Started: time.Now().Add(-3 * time.Second)}
	rr := httptest.NewRecorder()
	handler.Status(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	var body struct {
		Status    string  `json:"status"`
		Message   string  `json:"message"`
		Timestamp string  `json:"timestamp"`
		Uptime    float64 `json:"uptime"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Status != "OK" {
		t.Fatalf("unexpected status %q", body.Status)
	}
	if body.Message == "" || body.Timestamp == "" {
		t.Fatalf("incomplete body %#v", body)
	}
	if body.Uptime < 3 {
		t.Fatalf("expected uptime >= 3s got %v", body.Uptime)
	}
	if _, err := time.Parse(time.RFC3339, body.Timestamp); err != nil {
		t.Fatalf("timestamp not RFC3339: %v", err)
	}
}
