// Package repo contains all database access logic for the Fairhaven Week API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ahalloran/fairhaven-week/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing one scan
// function per entity to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// The three resources share an identical create/read/update/delete shape and
// differ only in SQL text and row mapping. The helpers below own the common
// control flow once; each resource file contributes its queries and a scan
// function. op is the "repo.Type.Method" prefix used in wrapped errors.

// queryOne runs a single-row query and maps the result through scan.
// pgx.ErrNoRows is translated to domain.ErrNotFound by the scan functions.
func queryOne[T any](ctx context.Context, d db, op, q string, args pgx.NamedArgs, scan func(scanner) (T, error)) (T, error) {
	row := d.QueryRow(ctx, q, args)
	result, err := scan(row)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// queryAll runs a multi-row query and maps every row through scan.
func queryAll[T any](ctx context.Context, d db, op, q string, args pgx.NamedArgs, scan func(scanner) (T, error)) ([]T, error) {
	rows, err := d.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}
	return items, nil
}

// execExpectingRows runs a statement that must affect at least one row.
// Zero affected rows means the target id does not exist.
func execExpectingRows(ctx context.Context, d db, op, q string, args pgx.NamedArgs) error {
	tag, err := d.Exec(ctx, q, args)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return nil
}

// countRows returns the result of a COUNT(*) query.
func countRows(ctx context.Context, d db, op, q string) (int64, error) {
	var n int64
	if err := d.QueryRow(ctx, q).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

// notFoundAsDomain translates pgx's no-rows sentinel into the domain sentinel.
func notFoundAsDomain(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}
