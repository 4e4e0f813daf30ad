package openapi_test

import (
	"slices"
	"testing"

	"github.com/JaimeStill/agent-registry/pkg/openapi"
)

var testEnv = &openapi.ConfigEnv{
	Title:       "TEST_OPENAPI_TITLE",
	Description: "TEST_OPENAPI_DESCRIPTION",
	Path:        "TEST_OPENAPI_PATH",
	Servers:     "TEST_OPENAPI_SERVERS",
}

func TestConfig_Defaults(t *testing.T) {
	var cfg openapi.Config
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Title != "Agent Registry API" || cfg.Description == "" {
		t.Errorf("metadata = %+v", cfg)
	}
	if cfg.Pattern() != "GET /openapi.json" {
		t.Errorf("Pattern() = %q, want GET /openapi.json", cfg.Pattern())
	}
	if len(cfg.Servers) != 0 {
		t.Errorf("Servers = %v, want none", cfg.Servers)
	}
}

func TestConfig_Env(t *testing.T) {
	t.Setenv("TEST_OPENAPI_TITLE", "Registry")
	t.Setenv("TEST_OPENAPI_PATH", "/docs/schema.json")
	t.Setenv("TEST_OPENAPI_SERVERS", " http://a:8000 , ,http://b:8000")

	cfg := openapi.Config{Title: "from file", Servers: []string{"http://file"}}
	if err := cfg.Finalize(testEnv); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Title != "Registry" || cfg.Path != "/docs/schema.json" {
		t.Errorf("cfg = %+v", cfg)
	}
	if want := []string{"http://a:8000", "http://b:8000"}; !slices.Equal(cfg.Servers, want) {
		t.Errorf("Servers = %v, want %v", cfg.Servers, want)
	}
}

func TestConfig_Merge(t *testing.T) {
	base := openapi.Config{Title: "base", Description: "kept", Path: "/openapi.json", Servers: []string{"http://base"}}

	base.Merge(&openapi.Config{Title: "overlay"})
	if base.Title != "overlay" || base.Description != "kept" || !slices.Equal(base.Servers, []string{"http://base"}) {
		t.Errorf("Merge() = %+v", base)
	}

	base.Merge(&openapi.Config{Path: "/v1.json", Servers: []string{"http://overlay"}})
	if base.Path != "/v1.json" || !slices.Equal(base.Servers, []string{"http://overlay"}) {
		t.Errorf("Merge() = %+v", base)
	}
}

func TestConfig_InvalidPath(t *testing.T) {
	for _, p := range []string{"openapi.json", "/openapi.yaml", "/docs/../openapi.json", "/docs//openapi.json"} {
		cfg := openapi.Config{Path: p}
		if err := cfg.Finalize(nil); err == nil {
			t.Errorf("Finalize() with path %q = nil, want error", p)
		}
	}
}

func TestConfig_Document(t *testing.T) {
	cfg := openapi.Config{Servers: []string{"http://localhost:8000", ""}}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	spec := cfg.Document("2.0.0")
	if spec.Info.Title != cfg.Title || spec.Info.Description != cfg.Description || spec.Info.Version != "2.0.0" {
		t.Errorf("Info = %+v", spec.Info)
	}
	if len(spec.Servers) != 1 || spec.Servers[0].URL != "http://localhost:8000" {
		t.Errorf("Servers = %+v", spec.Servers)
	}
}
