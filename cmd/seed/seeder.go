// Package main provides the seed command for populating the agent registry
// with initial or test data from YAML or JSONC fixture files.
package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/JaimeStill/agent-registry/internal/agents"
)

// Seeder defines the interface for database seeders.
// Each seeder is responsible for populating a specific domain's data.
type Seeder interface {
	// Name returns the unique identifier for this seeder.
	Name() string

	// Description returns a human-readable description of what this seeder does.
	Description() string

	// Seed validates its fixture and stores every entry through sys.
	Seed(ctx context.Context, sys agents.System) error
}

var seeders = map[string]Seeder{}

// registerSeeder adds a seeder to the global registry.
// Seeders self-register via init() functions.
func registerSeeder(s Seeder) {
	seeders[s.Name()] = s
}

func getSeeder(name string) (Seeder, bool) {
	s, ok := seeders[name]
	return s, ok
}

// listSeeders returns all registered seeders sorted by name.
func listSeeders() []Seeder {
	result := make([]Seeder, 0, len(seeders))
	for _, s := range seeders {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name() < result[j].Name() })
	return result
}

func runSeeder(ctx context.Context, sys agents.System, name string) error {
	seeder, ok := getSeeder(name)
	if !ok {
		return fmt.Errorf("seeder not found: %s", name)
	}

	if err := seeder.Seed(ctx, sys); err != nil {
		return fmt.Errorf("seed %s: %w", name, err)
	}
	return nil
}

// resetAgents deletes every stored agent.
func resetAgents(ctx context.Context, sys agents.System) (int, error) {
	existing, err := sys.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list agents: %w", err)
	}

	for _, a := range existing {
		if err := sys.Delete(ctx, a.ID); err != nil {
			return 0, fmt.Errorf("delete agent %d: %w", a.ID, err)
		}
	}
	return len(existing), nil
}
