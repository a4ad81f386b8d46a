// Package repository holds the parameterized SQL of the service.
//
// Every repository works against DBTX, which *pgxpool.Pool satisfies in
// production and pgxmock in tests. Lookups that find nothing return
// pgx.ErrNoRows annotated with the table name (sqlerr.WithTable) so the
// error handler can answer with "<Entity> not found".
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/deppfellow/recruitly/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of *pgxpool.Pool used by repositories.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// filter accumulates WHERE clauses with positional arguments. Clauses use
// %[1]d for the placeholder index, so one argument can be referenced twice.
type filter struct {
	clauses []string
	args    []any
}

func (f *filter) add(clause string, arg any) {
	f.args = append(f.args, arg)
	f.clauses = append(f.clauses, fmt.Sprintf(clause, len(f.args)))
}

func (f *filter) where() string {
	if len(f.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.clauses, " AND ")
}

// page appends LIMIT and OFFSET for q and returns the clause and arguments.
func (f *filter) page(q model.PaginationQuery) (string, []any) {
	_, limit := q.Normalized()
	args := append(f.args, limit, q.Offset())
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args)), args
}

func likePattern(q string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(strings.TrimSpace(q)) + "%"
}

// jsonArg maps an empty raw message to NULL so COALESCE keeps the stored value.
func jsonArg(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

// listPage selects one page of table with the window count as the last
// column. A page past the end has no row to carry that count, so the total
// is then read with a separate COUNT over the same filter.
func listPage[T any](
	ctx context.Context,
	db DBTX,
	table, columns, order string,
	f *filter,
	q model.PaginationQuery,
	scan func(row pgx.Row, extra ...any) (*T, error),
) ([]T, int64, error) {
	pageSQL, args := f.page(q)
	query := `SELECT ` + columns + `, COUNT(*) OVER() AS total FROM ` + table +
		f.where() + ` ORDER BY ` + order + pageSQL

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := []T{}
	var total int64
	for rows.Next() {
		item, err := scan(rows, &total)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if len(items) == 0 && q.Offset() > 0 {
		err := db.QueryRow(ctx, `SELECT COUNT(*) FROM `+table+f.where(), f.args...).Scan(&total)
		if err != nil {
			return nil, 0, err
		}
	}
	return items, total, nil
}

// collectAll scans every row with scan.
func collectAll[T any](rows pgx.Rows, scan func(row pgx.Row, extra ...any) (*T, error)) ([]T, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		item, err := scan(row)
		if err != nil {
			var zero T
			return zero, err
		}
		return *item, nil
	})
}

// prefixed qualifies a comma separated column list with alias.
func prefixed(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, col := range parts {
		parts[i] = alias + "." + strings.TrimSpace(col)
	}
	return strings.Join(parts, ", ")
}
