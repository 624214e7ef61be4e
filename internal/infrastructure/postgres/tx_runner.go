package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	appstock "github.com/tu-usuario/estoque-pro/internal/application/stockentry"
	"github.com/tu-usuario/estoque-pro/internal/domain/repository"
)

var _ appstock.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. El commit de una entrada de estoque corre entero acá.
func (r *TxRunner) Run(ctx context.Context, fn func(
	inventoryRepo repository.InventoryRepository,
	estimateRepo repository.EstimateRepository,
	receivableRepo repository.ReceivableRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	inventoryRepo := NewInventoryRepository(tx)
	estimateRepo := NewEstimateRepository(tx)
	receivableRepo := NewReceivableRepository(tx)

	if err := fn(inventoryRepo, estimateRepo, receivableRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
