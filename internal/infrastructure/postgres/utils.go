package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier lo implementan *pgxpool.Pool y pgx.Tx; los repos funcionan dentro o fuera de una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// periodRange convierte AAAAMM en el rango [primer día del mes, primer día del mes siguiente).
func periodRange(period string) (from, to time.Time, err error) {
	from, err = time.Parse("200601", period)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("periodo %q: %w", period, err)
	}
	return from, from.AddDate(0, 1, 0), nil
}
