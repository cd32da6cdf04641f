package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/olivarmoveis/contagem-api/internal/application/contagem"
	"github.com/olivarmoveis/contagem-api/internal/domain/repository"
)

var _ contagem.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repositórios atados à tx e faz
// Commit, ou Rollback se fn falhar.
func (r *TxRunner) Run(ctx context.Context, fn func(
	invRepo repository.InventarioRepository,
	itemRepo repository.ItemInventarioRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	invRepo := NewInventarioRepository(tx)
	itemRepo := NewItemInventarioRepository(tx)

	if err := fn(invRepo, itemRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
