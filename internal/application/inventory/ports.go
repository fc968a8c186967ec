package inventory

import (
	"context"

	"github.com/jhoicas/skirent-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad entre la mutación de contadores, la fila de renta y la entrada de auditoría.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		rentalRepo repository.RentalRepository,
		auditRepo repository.AuditLogRepository,
	) error) error
}
