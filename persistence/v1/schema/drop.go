package schema

import (
	"context"
	"database/sql"
	"errors"
)

func Drop(ctx context.Context, db *sql.DB) error {
	for _, s := range drops {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return errors.New("drop schema: " + err.Error())
		}
	}

	return nil
}
