package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/skirent-api/internal/application/inventory"
	"github.com/jhoicas/skirent-api/internal/application/rental"
	"github.com/jhoicas/skirent-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and rental.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ rental.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// La entrada de auditoría escrita dentro de fn comparte durabilidad con la mutación de negocio.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	rentalRepo repository.RentalRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	rentalRepo := NewRentalRepository(tx)
	auditRepo := NewAuditLogRepository(tx)

	if err := fn(productRepo, rentalRepo, auditRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
