package schema

import (
	"context"
	"database/sql"
	"errors"
)

// Create creates the notes and users tables for the given dialect
func Create(ctx context.Context, db *sql.DB, dialect string) error {
	stmts, err := statements(dialect)
	if err != nil {
		return err
	}

	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return errors.New("create schema: " + err.Error())
		}
	}

	return nil
}
