package provision

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/lib/pq" // postgres driver
)

// Postgres applies DDL over a direct connection instead of shelling out to
// psql. The base DSN carries host, port, user, and options; the database
// name is replaced per target.
type Postgres struct {
	// DSN is a postgres:// URL. Its path component is overwritten with the
	// target database name on each Apply.
	DSN string
}

// Apply connects to the target database and executes the DDL in one call.
// lib/pq sends the multi-statement text as a single simple query, so the
// server runs it as one implicit transaction per statement batch.
func (e *Postgres) Apply(ctx context.Context, targetDB, ddl string) error {
	dsn, err := e.targetDSN(targetDB)
	if err != nil {
		return err
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("opening %s: %w", targetDB, err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("applying ddl to %s: %w", targetDB, err)
	}
	return nil
}

// targetDSN rewrites the base DSN's database path to targetDB.
func (e *Postgres) targetDSN(targetDB string) (string, error) {
	u, err := url.Parse(e.DSN)
	if err != nil {
		return "", fmt.Errorf("parsing dsn: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("dsn scheme %q: want postgres:// or postgresql://", u.Scheme)
	}
	u.Path = "/" + targetDB
	return u.String(), nil
}
