package module_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/agent-registry/pkg/module"
)

func TestNew_InvalidPrefix(t *testing.T) {
	tests := []string{"", "agents", "/api/v1"}

	for _, prefix := range tests {
		t.Run(prefix, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("New(%q) did not panic", prefix)
				}
			}()
			module.New(prefix, http.NotFoundHandler())
		})
	}
}

func TestRouter_Mount_StripsPrefix(t *testing.T) {
	var seen string
	m := module.New("/agents", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.URL.Path
		w.Write([]byte("agents"))
	}))

	r := module.NewRouter()
	r.Mount(m)

	tests := []struct {
		path string
		want string
	}{
		{"/agents", "/"},
		{"/agents/", "/"},
		{"/agents/7", "/7"},
		{"/agents/mock/create", "/mock/create"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if seen != tt.want {
				t.Errorf("module path = %q, want %q", seen, tt.want)
			}
			body, _ := io.ReadAll(w.Result().Body)
			if string(body) != "agents" {
				t.Errorf("body = %q", string(body))
			}
		})
	}
}

func TestModule_Use(t *testing.T) {
	m := module.New("/agents", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	m.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Module", "agents")
			next.ServeHTTP(w, r)
		})
	})

	r := module.NewRouter()
	r.Mount(m)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/agents/1", nil))

	if w.Header().Get("X-Module") != "agents" {
		t.Error("module middleware not applied")
	}
}

func TestRouter_HandleNative(t *testing.T) {
	r := module.NewRouter()
	r.HandleNative("GET /healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("OK"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Body.String() != "OK" {
		t.Errorf("body = %q, want %q", w.Body.String(), "OK")
	}
}
