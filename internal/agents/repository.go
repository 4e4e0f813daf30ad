package agents

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/agent-registry/pkg/database"
	"github.com/JaimeStill/agent-registry/pkg/repository"
)

type repo struct {
	db      *sql.DB
	dialect database.Dialect
	logger  *slog.Logger
}

// New creates a new agents repository implementing the System interface.
// Queries are written with ? placeholders and rebound for the dialect.
func New(db *sql.DB, dialect database.Dialect, logger *slog.Logger) System {
	return &repo{
		db:      db,
		dialect: dialect,
		logger:  logger.With("system", "agent"),
	}
}

func (r *repo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema(r.dialect)); err != nil {
		return fmt.Errorf("ensure agents schema: %w", err)
	}
	r.logger.Debug("agents schema ensured", "dialect", r.dialect.Name)
	return nil
}

func (r *repo) Create(ctx context.Context, cmd Command) (*Agent, error) {
	args, err := commandArgs(cmd)
	if err != nil {
		return nil, err
	}

	q := r.dialect.Rebind(`
		INSERT INTO agents (name, system_message, human_input_mode,
			max_consecutive_auto_reply, code_execution_config, llm_config, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + columns)

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Agent, error) {
		return repository.QueryOne(ctx, tx, q, args, scanAgent)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("agent created", "id", a.ID, "name", a.Name)
	return &a, nil
}

func (r *repo) List(ctx context.Context) ([]Agent, error) {
	q := `SELECT ` + columns + ` FROM agents ORDER BY id`

	agents, err := repository.QueryMany(ctx, r.db, q, nil, scanAgent)
	if err != nil {
		return nil, fmt.Errorf("query agents: %w", err)
	}
	return agents, nil
}

func (r *repo) Find(ctx context.Context, id int64) (*Agent, error) {
	q := r.dialect.Rebind(`SELECT ` + columns + ` FROM agents WHERE id = ?`)

	a, err := repository.QueryOne(ctx, r.db, q, []any{id}, scanAgent)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &a, nil
}

func (r *repo) Update(ctx context.Context, id int64, cmd Command) (*Agent, error) {
	args, err := commandArgs(cmd)
	if err != nil {
		return nil, err
	}

	q := r.dialect.Rebind(`
		UPDATE agents
		SET name = ?, system_message = ?, human_input_mode = ?,
			max_consecutive_auto_reply = ?, code_execution_config = ?,
			llm_config = ?, description = ?
		WHERE id = ?
		RETURNING ` + columns)

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Agent, error) {
		return repository.QueryOne(ctx, tx, q, append(args, id), scanAgent)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("agent updated", "id", a.ID, "name", a.Name)
	return &a, nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	q := r.dialect.Rebind(`DELETE FROM agents WHERE id = ?`)

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		err := repository.ExecExpectOne(ctx, tx, q, id)
		return struct{}{}, err
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("agent deleted", "id", id)
	return nil
}
