package repository

import "github.com/jhoicas/skirent-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate solo tiene sentido dentro de una transacción (SELECT FOR UPDATE).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	UpdateCounters(product *entity.Product) error
	Update(product *entity.Product) error
	List() ([]*entity.Product, error)
	Delete(id string) error
}
