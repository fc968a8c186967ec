package repository

import "github.com/jhoicas/skirent-api/internal/domain/entity"

// RentalFilter filtros opcionales para el listado admin de rentas.
type RentalFilter struct {
	Status    string
	UserID    string
	ProductID string
}

// RentalRepository define el puerto de persistencia para Rental (DIP).
type RentalRepository interface {
	Create(rental *entity.Rental) error
	// GetLatestActive devuelve la renta ACTIVE más reciente (created_at DESC)
	// para (productID, userID) con returned_at NULL, o nil si no existe.
	GetLatestActive(productID, userID string) (*entity.Rental, error)
	MarkReturned(rental *entity.Rental) error
	HasActiveForProduct(productID string) (bool, error)
	ListByUser(userID string, limit int) ([]*entity.Rental, error)
	List(filter RentalFilter, limit int) ([]*entity.Rental, error)
}
