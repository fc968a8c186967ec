package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/skirent-api/internal/application/dto"
	"github.com/jhoicas/skirent-api/internal/domain"
	"github.com/jhoicas/skirent-api/internal/domain/entity"
	"github.com/jhoicas/skirent-api/internal/domain/repository"
)

// UseCase libro de inventario: checkout informal (take) y su devolución
// (return-taken), de forma transaccional con bloqueo de fila (SELECT FOR UPDATE).
// La entrada de auditoría se escribe dentro de la misma transacción: si falla,
// la mutación de contadores se revierte con ella.
type UseCase struct {
	txRunner TxRunner
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner) *UseCase {
	return &UseCase{txRunner: txRunner}
}

// Take resta qty de available_quantity si hay stock en estante suficiente.
// Registra auditoría TAKE. Devuelve la proyección actualizada del producto.
func (uc *UseCase) Take(ctx context.Context, actorUserID, productID string, qty int) (*dto.ProductResponse, error) {
	if qty < 1 {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.ProductResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.RentalRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		// Bloquea la fila del producto para que dos Take concurrentes no
		// pasen ambos la verificación de stock con contadores viejos.
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.AvailableQuantity < qty {
			return domain.ErrInsufficientStock
		}
		product.AvailableQuantity -= qty
		product.UpdatedAt = time.Now()
		if err := productRepo.UpdateCounters(product); err != nil {
			return err
		}
		if err := auditRepo.Create(newAuditLog(actorUserID, product.ID, entity.AuditActionTake, qty, map[string]any{
			"name": product.Name,
		})); err != nil {
			return err
		}
		out = dto.NewProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReturnTaken devuelve unidades tomadas informalmente: suma qty a
// available_quantity si lo tomado (quantity - available - rented) alcanza.
// Registra auditoría RETURN_TAKEN.
func (uc *UseCase) ReturnTaken(ctx context.Context, actorUserID, productID string, qty int) (*dto.ProductResponse, error) {
	if qty < 1 {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.ProductResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.RentalRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		// Lo tomado es derivado, nunca almacenado; la resta es la única fuente.
		if product.TakenOut() < qty {
			return domain.ErrNothingTakenToReturn
		}
		product.AvailableQuantity += qty
		product.UpdatedAt = time.Now()
		if err := productRepo.UpdateCounters(product); err != nil {
			return err
		}
		if err := auditRepo.Create(newAuditLog(actorUserID, product.ID, entity.AuditActionReturnTaken, qty, map[string]any{
			"name": product.Name,
		})); err != nil {
			return err
		}
		out = dto.NewProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// newAuditLog arma una entrada de auditoría para una acción de inventario.
func newAuditLog(actorUserID, productID, action string, qty int, meta map[string]any) *entity.AuditLog {
	pid := productID
	q := qty
	return &entity.AuditLog{
		ID:          uuid.New().String(),
		ActorUserID: actorUserID,
		ProductID:   &pid,
		Action:      action,
		Qty:         &q,
		Meta:        meta,
		CreatedAt:   time.Now(),
	}
}
