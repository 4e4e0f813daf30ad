package main

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/agent-registry/internal/config"
	"github.com/JaimeStill/agent-registry/pkg/database"
)

func getAvailablePort(t *testing.T) int {
	t.Helper()

	listener, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatalf("Failed to find available port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()
	return port
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{
		Server:   config.ServerConfig{Host: "127.0.0.1", Port: getAvailablePort(t)},
		Database: database.Config{Driver: database.DriverSQLite, Path: database.MemoryPath},
	}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	return cfg
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestConfigLoad_RepoConfig(t *testing.T) {
	cfg, err := config.Load("../../config.toml")
	if err != nil {
		t.Fatalf("config.Load() failed: %v", err)
	}
	if cfg.API.BasePath != "/agents" {
		t.Errorf("BasePath = %q, want /agents", cfg.API.BasePath)
	}
}

func TestServer_Lifecycle(t *testing.T) {
	cfg := testConfig(t)

	srv, err := NewServer(cfg)
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	if srv.infra.Lifecycle.Ready() {
		t.Error("Ready() = true before Start")
	}

	if err := srv.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	srv.infra.Lifecycle.WaitForStartup()

	base := fmt.Sprintf("http://%s", cfg.Server.Addr())

	if status, body := get(t, base+"/healthz"); status != http.StatusOK || body != "OK" {
		t.Errorf("healthz = %d %q", status, body)
	}
	if status, body := get(t, base+"/readyz"); status != http.StatusOK || body != "READY" {
		t.Errorf("readyz = %d %q", status, body)
	}
	if status, body := get(t, base+"/agents/"); status != http.StatusOK || strings.TrimSpace(body) != "[]" {
		t.Errorf("list = %d %q", status, body)
	}
	if status, _ := get(t, base+"/agents/mock/create"); status != http.StatusOK {
		t.Errorf("mock create = %d", status)
	}
	if status, body := get(t, base+"/agents/1"); status != http.StatusOK || !strings.Contains(body, "Mock Agent") {
		t.Errorf("get = %d %q", status, body)
	}

	if err := srv.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if srv.infra.Lifecycle.Ready() {
		t.Error("Ready() = true after Shutdown")
	}

	if _, err := http.Get(base + "/healthz"); err == nil {
		t.Error("server still accepting connections after Shutdown")
	}
}

func TestServer_StartPortInUse(t *testing.T) {
	cfg := testConfig(t)

	ln, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	srv, err := NewServer(cfg)
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	defer srv.Shutdown(time.Second)

	if err := srv.Start(); err == nil {
		t.Error("Start() expected error when port is in use")
	}
}
