package agents

import "context"

// System defines the interface for agent storage and retrieval operations.
type System interface {
	// EnsureSchema creates the agents table when it does not already exist.
	EnsureSchema(ctx context.Context) error
	Create(ctx context.Context, cmd Command) (*Agent, error)
	// List returns every agent ordered by id. The result is never nil.
	List(ctx context.Context) ([]Agent, error)
	Find(ctx context.Context, id int64) (*Agent, error)
	Update(ctx context.Context, id int64, cmd Command) (*Agent, error)
	Delete(ctx context.Context, id int64) error
}
