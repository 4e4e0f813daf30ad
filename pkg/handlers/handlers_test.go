package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/agent-registry/pkg/handlers"
)

func TestRespondJSON(t *testing.T) {
	w := httptest.NewRecorder()
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": "ok"})

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["message"] != "ok" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		detail    any
		wantLevel string
		wantBody  string
	}{
		{"not found", http.StatusNotFound, "Agent not found", "WARN", `{"detail":"Agent not found"}`},
		{"internal", http.StatusInternalServerError, "Internal Server Error", "ERROR", `{"detail":"Internal Server Error"}`},
		{"structured", http.StatusUnprocessableEntity, []string{"name"}, "WARN", `{"detail":["name"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			w := httptest.NewRecorder()

			handlers.RespondError(w, logger, tt.status, errors.New("cause"), tt.detail)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			if got := strings.TrimSpace(w.Body.String()); got != tt.wantBody {
				t.Errorf("body = %s, want %s", got, tt.wantBody)
			}
			if !strings.Contains(buf.String(), "level="+tt.wantLevel) || !strings.Contains(buf.String(), "cause") {
				t.Errorf("log = %q", buf.String())
			}
		})
	}
}
