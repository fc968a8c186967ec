package rental

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/skirent-api/internal/application/dto"
	"github.com/jhoicas/skirent-api/internal/domain"
	"github.com/jhoicas/skirent-api/internal/domain/entity"
	"github.com/jhoicas/skirent-api/internal/domain/repository"
)

// Límites de los listados de rentas.
const (
	myRentalsLimit  = 200
	allRentalsLimit = 500
)

// UseCase ciclo de vida de rentas formales: crear renta ACTIVE moviendo stock
// de available a rented, y cerrarla (RETURNED) en la devolución. Cada mutación
// corre en una transacción con la fila del producto bloqueada y la entrada de
// auditoría dentro de la misma tx.
type UseCase struct {
	txRunner   TxRunner
	rentalRepo repository.RentalRepository // lecturas fuera de transacción
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, rentalRepo repository.RentalRepository) *UseCase {
	return &UseCase{txRunner: txRunner, rentalRepo: rentalRepo}
}

// Rent crea una renta ACTIVE por days días: available -= qty, rented += qty y
// fila en rentals, como unidad atómica. Registra auditoría RENT.
func (uc *UseCase) Rent(ctx context.Context, actorUserID, productID string, qty, days int) (*dto.ProductResponse, error) {
	if qty < 1 || days < 1 {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.ProductResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		rentalRepo repository.RentalRepository,
		auditRepo repository.AuditLogRepository,
	) error {
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
		now := time.Now()
		product.AvailableQuantity -= qty
		product.RentedQuantity += qty
		product.UpdatedAt = now
		if err := productRepo.UpdateCounters(product); err != nil {
			return err
		}
		r := &entity.Rental{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			UserID:    actorUserID,
			Qty:       qty,
			StartDate: now,
			EndDate:   now.AddDate(0, 0, days),
			Status:    entity.RentalStatusActive,
			CreatedAt: now,
		}
		if err := rentalRepo.Create(r); err != nil {
			return err
		}
		if err := auditRepo.Create(newAuditLog(actorUserID, product.ID, entity.AuditActionRent, qty, map[string]any{
			"name":     product.Name,
			"days":     days,
			"rentalId": r.ID,
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

// ReturnRental cierra la renta ACTIVE más reciente de (producto, usuario):
// rented -= qty, available += qty, status RETURNED y returned_at. La renta
// candidata debe cubrir qty completo; devoluciones parciales contra una misma
// renta se rechazan (el caller debe emitir varias llamadas).
// Registra auditoría RETURN_RENTED.
func (uc *UseCase) ReturnRental(ctx context.Context, actorUserID, productID string, qty int) (*dto.ProductResponse, error) {
	if qty < 1 {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.ProductResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		rentalRepo repository.RentalRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.RentedQuantity < qty {
			return domain.ErrNotEnoughRented
		}
		candidate, err := rentalRepo.GetLatestActive(product.ID, actorUserID)
		if err != nil {
			return err
		}
		if candidate == nil {
			return domain.ErrNoActiveRental
		}
		if candidate.Qty < qty {
			return domain.ErrReturnQtyExceedsRental
		}
		now := time.Now()
		product.RentedQuantity -= qty
		product.AvailableQuantity += qty
		product.UpdatedAt = now
		if err := productRepo.UpdateCounters(product); err != nil {
			return err
		}
		candidate.Status = entity.RentalStatusReturned
		candidate.ReturnedAt = &now
		if err := rentalRepo.MarkReturned(candidate); err != nil {
			return err
		}
		if err := auditRepo.Create(newAuditLog(actorUserID, product.ID, entity.AuditActionReturnRented, qty, map[string]any{
			"name":     product.Name,
			"rentalId": candidate.ID,
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

// ListMy lista las rentas del usuario autenticado, más recientes primero.
func (uc *UseCase) ListMy(userID string) ([]dto.RentalResponse, error) {
	list, err := uc.rentalRepo.ListByUser(userID, myRentalsLimit)
	if err != nil {
		return nil, err
	}
	return toRentalResponses(list), nil
}

// List listado admin con filtros opcionales por estado, usuario y producto.
func (uc *UseCase) List(in dto.ListRentalsRequest) ([]dto.RentalResponse, error) {
	list, err := uc.rentalRepo.List(repository.RentalFilter{
		Status:    in.Status,
		UserID:    in.UserID,
		ProductID: in.ProductID,
	}, allRentalsLimit)
	if err != nil {
		return nil, err
	}
	return toRentalResponses(list), nil
}

func toRentalResponses(list []*entity.Rental) []dto.RentalResponse {
	items := make([]dto.RentalResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *dto.NewRentalResponse(r))
	}
	return items
}

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
