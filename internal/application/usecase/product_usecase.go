package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/skirent-api/internal/application/dto"
	"github.com/jhoicas/skirent-api/internal/application/inventory"
	"github.com/jhoicas/skirent-api/internal/domain"
	"github.com/jhoicas/skirent-api/internal/domain/entity"
	"github.com/jhoicas/skirent-api/internal/domain/repository"
)

// ProductUseCase operaciones admin sobre productos: crear, actualizar, eliminar,
// más el listado para cualquier usuario autenticado. Las mutaciones corren vía
// TxRunner para que la verificación del invariante, la escritura y la auditoría
// (solo en create) sean una unidad.
type ProductUseCase struct {
	txRunner    inventory.TxRunner
	productRepo repository.ProductRepository // lecturas fuera de transacción
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner inventory.TxRunner, productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, productRepo: productRepo}
}

// List devuelve todos los productos, más recientes primero.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *dto.NewProductResponse(p))
	}
	return items, nil
}

// Create crea un producto. Rechaza con ErrQuantityMismatch si los contadores no
// cumplen quantity == available + rented, y con ErrDuplicate si el nombre ya
// existe. Registra auditoría PRODUCT_CREATE en la misma transacción.
func (uc *ProductUseCase) Create(ctx context.Context, actorUserID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.AvailableQuantity+in.RentedQuantity != in.Quantity {
		return nil, domain.ErrQuantityMismatch
	}
	if !entity.ValidCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.ProductResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.RentalRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		existing, err := productRepo.GetByName(in.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		now := time.Now()
		product := &entity.Product{
			ID:                uuid.New().String(),
			Name:              in.Name,
			Category:          in.Category,
			Gender:            in.Gender,
			Type:              in.Type,
			Quantity:          in.Quantity,
			AvailableQuantity: in.AvailableQuantity,
			RentedQuantity:    in.RentedQuantity,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		// El constraint UNIQUE de name sigue siendo la fuente de verdad ante carreras.
		if err := productRepo.Create(product); err != nil {
			return err
		}
		qty := product.Quantity
		pid := product.ID
		if err := auditRepo.Create(&entity.AuditLog{
			ID:          uuid.New().String(),
			ActorUserID: actorUserID,
			ProductID:   &pid,
			Action:      entity.AuditActionProductCreate,
			Qty:         &qty,
			Meta: map[string]any{
				"name":     product.Name,
				"category": product.Category,
				"type":     product.Type,
			},
			CreatedAt: now,
		}); err != nil {
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

// Update aplica los campos presentes y re-valida el invariante sobre el merge:
// los contadores omitidos conservan su valor actual. Renombrar exige que el
// nuevo nombre no lo use otro producto. Sin entrada de auditoría.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.RentalRepository,
		_ repository.AuditLogRepository,
	) error {
		product, err := productRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if in.Name != nil && *in.Name != product.Name {
			other, err := productRepo.GetByName(*in.Name)
			if err != nil {
				return err
			}
			if other != nil && other.ID != product.ID {
				return domain.ErrDuplicate
			}
			product.Name = *in.Name
		}
		if in.Category != nil {
			if !entity.ValidCategory(*in.Category) {
				return domain.ErrInvalidInput
			}
			product.Category = *in.Category
		}
		if in.Gender != nil {
			product.Gender = in.Gender
		}
		if in.Type != nil {
			product.Type = *in.Type
		}
		if in.Quantity != nil {
			product.Quantity = *in.Quantity
		}
		if in.AvailableQuantity != nil {
			product.AvailableQuantity = *in.AvailableQuantity
		}
		if in.RentedQuantity != nil {
			product.RentedQuantity = *in.RentedQuantity
		}
		if !product.QuantityInvariantHolds() {
			return domain.ErrQuantityMismatch
		}
		product.UpdatedAt = time.Now()
		if err := productRepo.Update(product); err != nil {
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

// Delete elimina un producto si no tiene rentas ACTIVE que lo referencien.
// Rentas RETURNED no bloquean; el nombre en sus listados queda en null.
// Sin entrada de auditoría.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		rentalRepo repository.RentalRepository,
		_ repository.AuditLogRepository,
	) error {
		product, err := productRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		active, err := rentalRepo.HasActiveForProduct(product.ID)
		if err != nil {
			return err
		}
		if active {
			return domain.ErrActiveRentalExists
		}
		return productRepo.Delete(product.ID)
	})
}
