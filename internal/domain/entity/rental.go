package entity

import "time"

// Estados del ciclo de vida de una renta. ACTIVE -> RETURNED, sin otras transiciones.
const (
	RentalStatusActive   = "ACTIVE"
	RentalStatusReturned = "RETURNED"
)

// Rental representa una renta formal con fechas de inicio/fin.
// ProductName se resuelve por join en los listados (nil si el producto fue eliminado);
// no se persiste en la tabla rentals.
type Rental struct {
	ID          string
	ProductID   string
	UserID      string
	Qty         int
	StartDate   time.Time
	EndDate     time.Time // StartDate + días solicitados
	ReturnedAt  *time.Time
	Status      string // ACTIVE | RETURNED
	CreatedAt   time.Time
	ProductName *string
}

// Active indica si la renta sigue abierta.
func (r *Rental) Active() bool {
	return r.Status == RentalStatusActive && r.ReturnedAt == nil
}
