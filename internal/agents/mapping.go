package agents

import (
	"database/sql"
	"fmt"

	"github.com/JaimeStill/agent-registry/pkg/database"
	"github.com/JaimeStill/agent-registry/pkg/repository"
)

const columns = `id, name, system_message, human_input_mode,
	max_consecutive_auto_reply, code_execution_config, llm_config, description`

func schema(d database.Dialect) string {
	return fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS agents (
			id %s,
			name TEXT NOT NULL,
			system_message TEXT,
			human_input_mode TEXT,
			max_consecutive_auto_reply INTEGER,
			code_execution_config TEXT,
			llm_config TEXT,
			description TEXT
		)`, d.Identity)
}

func scanAgent(s repository.Scanner) (Agent, error) {
	var (
		a           Agent
		system      sql.NullString
		mode        sql.NullString
		maxReply    sql.NullInt64
		codeConfig  sql.NullString
		llmConfig   sql.NullString
		description sql.NullString
	)

	err := s.Scan(&a.ID, &a.Name, &system, &mode, &maxReply, &codeConfig, &llmConfig, &description)
	if err != nil {
		return a, err
	}

	if system.Valid {
		a.SystemMessage = &system.String
	}
	if description.Valid {
		a.Description = &description.String
	}
	if maxReply.Valid {
		n := int(maxReply.Int64)
		a.MaxConsecutiveAutoReply = &n
	}
	a.HumanInputMode = mode.String

	if a.CodeExecutionConfig, err = decodeConfig("code_execution_config", codeConfig); err != nil {
		return a, fmt.Errorf("agent %d: %w", a.ID, err)
	}
	if a.LLMConfig, err = decodeConfig("llm_config", llmConfig); err != nil {
		return a, fmt.Errorf("agent %d: %w", a.ID, err)
	}
	return a, nil
}

// commandArgs returns the bind values for the writable columns in column order.
func commandArgs(cmd Command) ([]any, error) {
	codeConfig, err := encodeConfig(cmd.CodeExecutionConfig)
	if err != nil {
		return nil, err
	}
	llmConfig, err := encodeConfig(cmd.LLMConfig)
	if err != nil {
		return nil, err
	}

	return []any{
		cmd.Name,
		nullString(cmd.SystemMessage),
		cmd.HumanInputMode,
		nullInt(cmd.MaxConsecutiveAutoReply),
		codeConfig,
		llmConfig,
		nullString(cmd.Description),
	}, nil
}
