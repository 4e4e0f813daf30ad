package api

import (
	"context"
	"fmt"
	"time"

	"github.com/JaimeStill/agent-registry/internal/agents"
)

const schemaTimeout = 30 * time.Second

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Agents agents.System
}

// NewDomain creates all domain systems from the API runtime and ensures their schemas.
func NewDomain(runtime *Runtime) (*Domain, error) {
	agentsSys := agents.New(
		runtime.Database.Connection(),
		runtime.Database.Dialect(),
		runtime.Logger,
	)

	ctx, cancel := context.WithTimeout(runtime.Lifecycle.Context(), schemaTimeout)
	defer cancel()

	if err := agentsSys.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("agents: %w", err)
	}

	return &Domain{
		Agents: agentsSys,
	}, nil
}
