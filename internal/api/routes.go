package api

import (
	"net/http"

	"github.com/JaimeStill/agent-registry/internal/agents"
	"github.com/JaimeStill/agent-registry/internal/config"
	"github.com/JaimeStill/agent-registry/pkg/openapi"
	"github.com/JaimeStill/agent-registry/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
	cfg *config.Config,
) {
	agentsHandler := agents.NewHandler(domain.Agents, runtime.Logger, runtime.MaxBodySize)

	routes.Register(
		mux,
		cfg.API.BasePath,
		spec,
		agentsHandler.Routes(),
	)
}
