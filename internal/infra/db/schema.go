package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// EnsureSchema creates the authors, magazines and articles tables when they
// do not exist yet. Existing tables are left untouched.
func EnsureSchema(ctx context.Context, database *sql.DB, dialect string) error {
	if _, err := driverName(dialect); err != nil {
		return err
	}
	script, err := schemaFS.ReadFile("schema/" + dialect + ".sql")
	if err != nil {
		return fmt.Errorf("read %s schema: %w", dialect, err)
	}
	for _, stmt := range splitStatements(string(script)) {
		if _, err := database.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply %s schema: %w", dialect, err)
		}
	}
	return nil
}

// splitStatements breaks a script on semicolons. The embedded scripts contain
// no semicolons inside literals.
func splitStatements(script string) []string {
	var stmts []string
	for _, part := range strings.Split(script, ";") {
		if s := strings.TrimSpace(part); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
