package db

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// HasTable reports whether table exists in the current schema.
func HasTable(ctx context.Context, q sqlx.QueryerContext, table string) bool {
	var name sql.NullString
	err := q.QueryRowxContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)
	if err != nil {
		return false
	}
	return name.Valid && name.String != ""
}
