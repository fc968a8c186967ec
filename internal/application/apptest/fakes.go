// Package apptest provee dobles en memoria para los tests de casos de uso:
// un Store con los tres repositorios y un TxRunner que serializa con mutex,
// emulando el bloqueo de fila (SELECT FOR UPDATE) de Postgres.
package apptest

import (
	"context"
	"sync"

	"github.com/jhoicas/skirent-api/internal/domain/entity"
	"github.com/jhoicas/skirent-api/internal/domain/repository"
)

// Store estado compartido en memoria. Los Get* devuelven copias y las
// escrituras persisten copias, como lo haría una fila leída y reescrita.
type Store struct {
	mu       sync.Mutex
	Products map[string]*entity.Product
	Users    map[string]*entity.User
	Rentals  []*entity.Rental
	Audits   []*entity.AuditLog
}

// NewStore construye un Store vacío.
func NewStore() *Store {
	return &Store{
		Products: make(map[string]*entity.Product),
		Users:    make(map[string]*entity.User),
	}
}

// SeedProduct inserta un producto directamente (sin pasar por el caso de uso).
func (s *Store) SeedProduct(p *entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Products[p.ID] = copyProduct(p)
}

// SeedUser inserta un usuario directamente (para resolver usernames en listados).
func (s *Store) SeedUser(u *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Users[u.ID] = u
}

// Run ejecuta fn bajo el mutex global: dos transacciones concurrentes sobre el
// mismo producto quedan serializadas, igual que con el bloqueo de fila real.
// No simula rollback; los casos de uso verifican antes de mutar.
func (s *Store) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	rentalRepo repository.RentalRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&productRepo{s}, &rentalRepo{s}, &auditRepo{s})
}

// ProductRepo devuelve el repositorio de productos fuera de transacción.
func (s *Store) ProductRepo() repository.ProductRepository { return &productRepo{s} }

// RentalRepo devuelve el repositorio de rentas fuera de transacción.
func (s *Store) RentalRepo() repository.RentalRepository { return &rentalRepo{s} }

// AuditRepo devuelve el repositorio de auditoría fuera de transacción.
func (s *Store) AuditRepo() repository.AuditLogRepository { return &auditRepo{s} }

// ──────────────────────────────────────────────────────────────────────────────
// ProductRepository
// ──────────────────────────────────────────────────────────────────────────────

type productRepo struct{ s *Store }

func (r *productRepo) Create(p *entity.Product) error {
	r.s.Products[p.ID] = copyProduct(p)
	return nil
}

func (r *productRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := r.s.Products[id]; ok {
		return copyProduct(p), nil
	}
	return nil, nil
}

func (r *productRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.s.Products {
		if p.Name == name {
			return copyProduct(p), nil
		}
	}
	return nil, nil
}

func (r *productRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *productRepo) UpdateCounters(p *entity.Product) error {
	if stored, ok := r.s.Products[p.ID]; ok {
		stored.Quantity = p.Quantity
		stored.AvailableQuantity = p.AvailableQuantity
		stored.RentedQuantity = p.RentedQuantity
		stored.UpdatedAt = p.UpdatedAt
	}
	return nil
}

func (r *productRepo) Update(p *entity.Product) error {
	r.s.Products[p.ID] = copyProduct(p)
	return nil
}

func (r *productRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.s.Products))
	for _, p := range r.s.Products {
		out = append(out, copyProduct(p))
	}
	return out, nil
}

func (r *productRepo) Delete(id string) error {
	delete(r.s.Products, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// RentalRepository
// ──────────────────────────────────────────────────────────────────────────────

type rentalRepo struct{ s *Store }

func (r *rentalRepo) Create(rental *entity.Rental) error {
	r.s.Rentals = append(r.s.Rentals, copyRental(rental))
	return nil
}

// GetLatestActive recorre en orden de inserción (cronológico) y se queda con
// la última renta ACTIVE que coincida, equivalente a ORDER BY created_at DESC.
func (r *rentalRepo) GetLatestActive(productID, userID string) (*entity.Rental, error) {
	var latest *entity.Rental
	for _, rt := range r.s.Rentals {
		if rt.ProductID == productID && rt.UserID == userID && rt.Active() {
			latest = rt
		}
	}
	return copyRental(latest), nil
}

func (r *rentalRepo) MarkReturned(rental *entity.Rental) error {
	for _, rt := range r.s.Rentals {
		if rt.ID == rental.ID {
			rt.Status = rental.Status
			rt.ReturnedAt = rental.ReturnedAt
		}
	}
	return nil
}

func (r *rentalRepo) HasActiveForProduct(productID string) (bool, error) {
	for _, rt := range r.s.Rentals {
		if rt.ProductID == productID && rt.Active() {
			return true, nil
		}
	}
	return false, nil
}

func (r *rentalRepo) ListByUser(userID string, limit int) ([]*entity.Rental, error) {
	return r.List(repository.RentalFilter{UserID: userID}, limit)
}

func (r *rentalRepo) List(filter repository.RentalFilter, limit int) ([]*entity.Rental, error) {
	out := make([]*entity.Rental, 0)
	for i := len(r.s.Rentals) - 1; i >= 0 && len(out) < limit; i-- {
		rt := r.s.Rentals[i]
		if filter.Status != "" && rt.Status != filter.Status {
			continue
		}
		if filter.UserID != "" && rt.UserID != filter.UserID {
			continue
		}
		if filter.ProductID != "" && rt.ProductID != filter.ProductID {
			continue
		}
		c := copyRental(rt)
		if p, ok := r.s.Products[rt.ProductID]; ok {
			name := p.Name
			c.ProductName = &name
		}
		out = append(out, c)
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// AuditLogRepository
// ──────────────────────────────────────────────────────────────────────────────

type auditRepo struct{ s *Store }

func (r *auditRepo) Create(log *entity.AuditLog) error {
	r.s.Audits = append(r.s.Audits, log)
	return nil
}

// ListRecent recorre de atrás hacia delante (más recientes primero) y resuelve
// el username del actor, equivalente al LEFT JOIN con users (vacío si no existe).
func (r *auditRepo) ListRecent(limit int) ([]*entity.AuditLog, error) {
	out := make([]*entity.AuditLog, 0)
	for i := len(r.s.Audits) - 1; i >= 0 && len(out) < limit; i-- {
		log := *r.s.Audits[i]
		if u, ok := r.s.Users[log.ActorUserID]; ok {
			log.ActorUsername = u.Username
		}
		out = append(out, &log)
	}
	return out, nil
}

func copyProduct(p *entity.Product) *entity.Product {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func copyRental(rt *entity.Rental) *entity.Rental {
	if rt == nil {
		return nil
	}
	c := *rt
	return &c
}
