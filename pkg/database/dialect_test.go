package database_test

import (
	"testing"

	"github.com/JaimeStill/agent-registry/pkg/database"
)

func TestDialect_Rebind(t *testing.T) {
	tests := []struct {
		name    string
		dialect database.Dialect
		query   string
		want    string
	}{
		{
			"sqlite unchanged",
			database.SQLite,
			"SELECT * FROM agents WHERE id = ? AND name = ?",
			"SELECT * FROM agents WHERE id = ? AND name = ?",
		},
		{
			"postgres numbered",
			database.Postgres,
			"UPDATE agents SET name = ?, description = ? WHERE id = ?",
			"UPDATE agents SET name = $1, description = $2 WHERE id = $3",
		},
		{
			"postgres skips quoted",
			database.Postgres,
			"SELECT '?' FROM agents WHERE id = ?",
			"SELECT '?' FROM agents WHERE id = $1",
		},
		{
			"no placeholders",
			database.Postgres,
			"SELECT 1",
			"SELECT 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.Rebind(tt.query); got != tt.want {
				t.Errorf("Rebind() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDriver_Dialect(t *testing.T) {
	if d := database.DriverSQLite.Dialect(); d.Name != "sqlite" {
		t.Errorf("sqlite dialect = %q", d.Name)
	}
	if d := database.DriverPgx.Dialect(); d.Name != "postgres" {
		t.Errorf("pgx dialect = %q", d.Name)
	}
	if err := database.Driver("oracle").Validate(); err == nil {
		t.Error("Validate() error = nil for unknown driver")
	}
}
