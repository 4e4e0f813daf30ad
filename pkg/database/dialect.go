package database

import (
	"fmt"
	"strconv"
	"strings"
)

// Driver names a registered database/sql driver.
type Driver string

// Supported drivers.
const (
	DriverSQLite Driver = "sqlite"
	DriverPgx    Driver = "pgx"
)

// Validate checks if the driver is supported.
func (d Driver) Validate() error {
	switch d {
	case DriverSQLite, DriverPgx:
		return nil
	default:
		return fmt.Errorf("invalid driver: %s (must be sqlite or pgx)", d)
	}
}

// Dialect returns the SQL dialect spoken by the driver.
func (d Driver) Dialect() Dialect {
	if d == DriverPgx {
		return Postgres
	}
	return SQLite
}

// Dialect captures the SQL differences between supported engines.
// Queries are written with ? placeholders and passed through Rebind.
type Dialect struct {
	Name string

	// Identity is the column definition for an auto-assigned integer primary key.
	Identity string

	numbered bool
}

// Supported dialects.
var (
	SQLite = Dialect{
		Name:     "sqlite",
		Identity: "INTEGER PRIMARY KEY AUTOINCREMENT",
	}
	Postgres = Dialect{
		Name:     "postgres",
		Identity: "BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY",
		numbered: true,
	}
)

// Rebind rewrites ? placeholders into the dialect's bind variable syntax.
// Placeholders inside single-quoted literals are left untouched.
func (d Dialect) Rebind(query string) string {
	if !d.numbered {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	quoted := false
	for i := 0; i < len(query); i++ {
		ch := query[i]
		switch {
		case ch == '\'':
			quoted = !quoted
			b.WriteByte(ch)
		case ch == '?' && !quoted:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}
