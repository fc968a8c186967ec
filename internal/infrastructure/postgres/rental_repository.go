package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/skirent-api/internal/domain/entity"
	"github.com/jhoicas/skirent-api/internal/domain/repository"
)

var _ repository.RentalRepository = (*RentalRepo)(nil)

// RentalRepo implementación del puerto RentalRepository sobre PostgreSQL (usable con pool o tx).
// Los listados resuelven el nombre del producto con LEFT JOIN: si el producto
// fue eliminado, product_name llega NULL sin perder la identidad de la renta.
type RentalRepo struct {
	q Querier
}

// NewRentalRepository construye el adaptador de persistencia para rentas. Pasar pool o tx (Querier).
func NewRentalRepository(q Querier) *RentalRepo {
	return &RentalRepo{q: q}
}

// Create persiste una nueva renta ACTIVE.
func (r *RentalRepo) Create(rental *entity.Rental) error {
	query := `
		INSERT INTO rentals (id, product_id, user_id, qty, start_date, end_date, returned_at, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		rental.ID, rental.ProductID, rental.UserID, rental.Qty,
		rental.StartDate, rental.EndDate, rental.ReturnedAt, rental.Status, rental.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert rental: %w", err)
	}
	return nil
}

// GetLatestActive devuelve la renta ACTIVE más reciente de (producto, usuario)
// con returned_at NULL, o nil si no existe. Es el criterio de desambiguación
// cuando hay varias rentas abiertas del mismo par.
func (r *RentalRepo) GetLatestActive(productID, userID string) (*entity.Rental, error) {
	query := `
		SELECT id, product_id, user_id, qty, start_date, end_date, returned_at, status, created_at
		FROM rentals
		WHERE product_id = $1 AND user_id = $2 AND status = $3 AND returned_at IS NULL
		ORDER BY created_at DESC
		LIMIT 1`
	var rental entity.Rental
	err := r.q.QueryRow(context.Background(), query, productID, userID, entity.RentalStatusActive).Scan(
		&rental.ID, &rental.ProductID, &rental.UserID, &rental.Qty,
		&rental.StartDate, &rental.EndDate, &rental.ReturnedAt, &rental.Status, &rental.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest active rental: %w", err)
	}
	return &rental, nil
}

// MarkReturned cierra la renta: status RETURNED y returned_at. Terminal e inmutable después.
func (r *RentalRepo) MarkReturned(rental *entity.Rental) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE rentals SET status = $2, returned_at = $3 WHERE id = $1`,
		rental.ID, rental.Status, rental.ReturnedAt,
	)
	if err != nil {
		return fmt.Errorf("mark rental returned: %w", err)
	}
	return nil
}

// HasActiveForProduct indica si existe alguna renta ACTIVE del producto (bloquea el borrado).
func (r *RentalRepo) HasActiveForProduct(productID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM rentals WHERE product_id = $1 AND status = $2)`,
		productID, entity.RentalStatusActive,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check active rentals: %w", err)
	}
	return exists, nil
}

const rentalJoinColumns = `
	r.id, r.product_id, r.user_id, r.qty, r.start_date, r.end_date, r.returned_at, r.status, r.created_at, p.name`

// ListByUser lista las rentas de un usuario, más recientes primero.
func (r *RentalRepo) ListByUser(userID string, limit int) ([]*entity.Rental, error) {
	query := `
		SELECT ` + rentalJoinColumns + `
		FROM rentals r
		LEFT JOIN products p ON p.id = r.product_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list rentals by user: %w", err)
	}
	defer rows.Close()
	return scanRentals(rows)
}

// List listado admin con filtros opcionales por estado, usuario y producto.
func (r *RentalRepo) List(filter repository.RentalFilter, limit int) ([]*entity.Rental, error) {
	query := `
		SELECT ` + rentalJoinColumns + `
		FROM rentals r
		LEFT JOIN products p ON p.id = r.product_id
		WHERE 1=1`
	var args []any
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND r.status = $%d", len(args))
	}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		query += fmt.Sprintf(" AND r.user_id = $%d", len(args))
	}
	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		query += fmt.Sprintf(" AND r.product_id = $%d", len(args))
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY r.created_at DESC LIMIT $%d", len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list rentals: %w", err)
	}
	defer rows.Close()
	return scanRentals(rows)
}

func scanRentals(rows pgx.Rows) ([]*entity.Rental, error) {
	var list []*entity.Rental
	for rows.Next() {
		var rental entity.Rental
		if err := rows.Scan(&rental.ID, &rental.ProductID, &rental.UserID, &rental.Qty,
			&rental.StartDate, &rental.EndDate, &rental.ReturnedAt, &rental.Status,
			&rental.CreatedAt, &rental.ProductName); err != nil {
			return nil, fmt.Errorf("scan rental: %w", err)
		}
		list = append(list, &rental)
	}
	return list, rows.Err()
}
