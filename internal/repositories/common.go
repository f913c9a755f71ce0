package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"globetrotter/internal/domain"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// Querier is satisfied by both *sqlx.DB and *sqlx.Tx.
type Querier = sqlx.ExtContext

const (
	mysqlDuplicateEntry   = 1062
	mysqlRowIsReferenced  = 1451
	mysqlNoReferencedRow  = 1452
	mysqlRowIsReferenced2 = 1217
	mysqlNoReferencedRow2 = 1216
)

// uniqueKeyMessages turns known unique keys into caller-facing messages.
var uniqueKeyMessages = map[string]string{
	"uq_users_email":      "email already registered",
	"uq_users_username":   "username already taken",
	"uq_stops_trip_order": "order_index already used in this trip",
	"uq_budgets_trip":     "trip already has a budget",
}

// mapSQLError converts driver errors into domain errors.
func mapSQLError(resource string, err error) error {
	if err == nil {
		return nil
	}
	var me *mysql.MySQLError
	if !errors.As(err, &me) {
		return err
	}
	switch me.Number {
	case mysqlDuplicateEntry:
		for key, msg := range uniqueKeyMessages {
			if strings.Contains(me.Message, key) {
				return domain.ConflictError{Resource: resource, Msg: msg, Err: err}
			}
		}
		return domain.ConflictError{Resource: resource, Msg: "already exists", Err: err}
	case mysqlRowIsReferenced, mysqlRowIsReferenced2:
		return domain.ConflictError{Resource: resource, Msg: "still referenced by other records", Err: err}
	case mysqlNoReferencedRow, mysqlNoReferencedRow2:
		return domain.NotFoundError{Resource: "referenced record", Err: err}
	}
	return err
}

func getOne[T any](ctx context.Context, q Querier, resource string, id int64, query string, args ...any) (T, error) {
	var out T
	if err := sqlx.GetContext(ctx, q, &out, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, domain.NotFoundError{Resource: resource, ID: id, Err: err}
		}
		return out, fmt.Errorf("get %s: %w", strings.ToLower(resource), err)
	}
	return out, nil
}

func selectMany[T any](ctx context.Context, q Querier, resource, query string, args ...any) ([]T, error) {
	out := []T{}
	if err := sqlx.SelectContext(ctx, q, &out, query, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", strings.ToLower(resource), err)
	}
	return out, nil
}

func insert(ctx context.Context, q Querier, resource, query string, args ...any) (int64, error) {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapSQLError(resource, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert %s: %w", strings.ToLower(resource), err)
	}
	return id, nil
}

// execOne runs an UPDATE/DELETE that must hit exactly one row.
func execOne(ctx context.Context, q Querier, resource string, id int64, query string, args ...any) error {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return mapSQLError(resource, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", strings.ToLower(resource), err)
	}
	if n == 0 {
		return domain.NotFoundError{Resource: resource, ID: id}
	}
	return nil
}

func execCount(ctx context.Context, q Querier, resource, query string, args ...any) (int64, error) {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapSQLError(resource, err)
	}
	return res.RowsAffected()
}

// inQuery expands "IN (?)" for ids and rebinds for the driver.
func inQuery(q Querier, query string, ids []int64) (string, []any, error) {
	query, args, err := sqlx.In(query, ids)
	if err != nil {
		return "", nil, err
	}
	return q.Rebind(query), args, nil
}
