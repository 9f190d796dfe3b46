package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/contasunat/internal/application/reporting"
)

var _ reporting.SnapshotRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// ReadSnapshot abre una transacción READ ONLY / REPEATABLE READ y entrega a fn los repos atados a ella:
// saldos, tesorería y registros se leen de la misma foto aunque otro proceso siga registrando asientos.
func (r *TxRunner) ReadSnapshot(ctx context.Context, fn func(repos reporting.Repositories) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := reporting.Repositories{
		Companies: NewCompanyRepository(tx),
		Ledger:    NewLedgerRepository(tx),
		Journal:   NewJournalRepository(tx),
		Registers: NewRegisterRepository(tx),
		Treasury:  NewTreasuryRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
