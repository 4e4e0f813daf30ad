package main

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/JaimeStill/agent-registry/internal/agents"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

//go:embed seeds/*
var seedFiles embed.FS

const defaultAgentsSeed = "seeds/agents.yaml"

func init() {
	registerSeeder(&AgentSeeder{})
}

// AgentSeedData represents the structure of agent seed files.
type AgentSeedData struct {
	Agents []map[string]any `json:"agents" yaml:"agents"`
}

// AgentSeeder implements Seeder for agent records. It loads seed data from
// an embedded file or an external file path.
type AgentSeeder struct {
	file   string
	logger *slog.Logger
}

func (s *AgentSeeder) Name() string {
	return "agents"
}

func (s *AgentSeeder) Description() string {
	return "Seeds agent configuration records"
}

// SetFile configures an external seed file path, overriding the embedded default.
func (s *AgentSeeder) SetFile(path string) {
	s.file = path
}

// SetLogger configures the logger used to report created agents.
func (s *AgentSeeder) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Seed parses and validates every entry before creating any of them.
func (s *AgentSeeder) Seed(ctx context.Context, sys agents.System) error {
	cmds, err := s.load()
	if err != nil {
		return err
	}

	for i, cmd := range cmds {
		a, err := sys.Create(ctx, cmd)
		if err != nil {
			return fmt.Errorf("create agent %d (%s): %w", i, cmd.Name, err)
		}
		if s.logger != nil {
			s.logger.Info("agent seeded", "id", a.ID, "name", a.Name)
		}
	}
	return nil
}

func (s *AgentSeeder) load() ([]agents.Command, error) {
	name := s.file
	var content []byte
	var err error

	if name != "" {
		content, err = os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	} else {
		name = defaultAgentsSeed
		content, err = seedFiles.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read embedded seed file: %w", err)
		}
	}

	data, err := parseSeedData(name, content)
	if err != nil {
		return nil, err
	}
	return data.commands()
}

// parseSeedData decodes YAML for .yaml and .yml files and JSON with
// comments and trailing commas otherwise.
func parseSeedData(name string, content []byte) (*AgentSeedData, error) {
	var data AgentSeedData

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(content), &data); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	}
	return &data, nil
}

// commands validates each entry the same way request bodies are validated.
func (d *AgentSeedData) commands() ([]agents.Command, error) {
	cmds := make([]agents.Command, 0, len(d.Agents))

	for i, entry := range d.Agents {
		body, err := json.Marshal(entry)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}

		cmd, err := agents.ParseCommand(body)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}
