package main

import (
	"context"
	"fmt"
	"log"

	"github.com/JaimeStill/agent-registry/internal/agents"
	"github.com/JaimeStill/agent-registry/internal/config"
	"github.com/JaimeStill/agent-registry/internal/infrastructure"
	"github.com/spf13/pflag"
)

func main() {
	var (
		configPath = pflag.StringP("config", "c", config.BaseConfigFile, "path to the TOML configuration file")
		file       = pflag.StringP("file", "f", "", "external seed file, YAML or JSONC (overrides embedded)")
		reset      = pflag.Bool("reset", false, "delete every existing agent before seeding")
		list       = pflag.Bool("list", false, "list available seeders")
	)
	pflag.Parse()

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range listSeeders() {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := run(context.Background(), cfg, *file, *reset); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	fmt.Println("agents seeded successfully")
}

func run(ctx context.Context, cfg *config.Config, file string, reset bool) error {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return err
	}
	defer infra.Database.Close()

	logger := infra.Logger.With("system", "seed")
	sys := agents.New(infra.Database.Connection(), infra.Database.Dialect(), infra.Logger)

	if err := sys.EnsureSchema(ctx); err != nil {
		return err
	}

	seeder, _ := getSeeder("agents")
	as := seeder.(*AgentSeeder)
	as.SetLogger(logger)
	if file != "" {
		as.SetFile(file)
	}

	// entries are validated before anything is deleted
	if _, err := as.load(); err != nil {
		return err
	}

	if reset {
		n, err := resetAgents(ctx, sys)
		if err != nil {
			return err
		}
		logger.Info("agents reset", "deleted", n)
	}

	return runSeeder(ctx, sys, "agents")
}
