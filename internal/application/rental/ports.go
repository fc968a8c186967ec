package rental

import (
	"context"

	"github.com/jhoicas/skirent-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con repositorios atados a esa tx.
// Misma forma que inventory.TxRunner; el adaptador postgres satisface ambos puertos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		rentalRepo repository.RentalRepository,
		auditRepo repository.AuditLogRepository,
	) error) error
}
