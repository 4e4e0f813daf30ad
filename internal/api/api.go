// Package api assembles the agents HTTP module: domain systems, routes,
// middleware, and the generated OpenAPI document.
package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/agent-registry/internal/config"
	"github.com/JaimeStill/agent-registry/internal/infrastructure"
	"github.com/JaimeStill/agent-registry/pkg/middleware"
	"github.com/JaimeStill/agent-registry/pkg/module"
	"github.com/JaimeStill/agent-registry/pkg/openapi"
)

// NewModule builds the API module mounted at cfg.API.BasePath. Domain
// schemas are ensured before the module is returned.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)

	domain, err := NewDomain(runtime)
	if err != nil {
		return nil, err
	}

	spec := cfg.API.OpenAPI.Document(cfg.Version)

	mux := http.NewServeMux()
	registerRoutes(mux, spec, runtime, domain, cfg)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi: %w", err)
	}
	mux.HandleFunc(cfg.API.OpenAPI.Pattern(), openapi.ServeSpec(specBytes))

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.RequestID())
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.CORS(&cfg.API.CORS))

	return m, nil
}
