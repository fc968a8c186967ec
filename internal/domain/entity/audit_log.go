package entity

import "time"

// Acciones auditables (tags estables, machine-checkable).
const (
	AuditActionProductCreate = "PRODUCT_CREATE"
	AuditActionTake          = "TAKE"
	AuditActionReturnTaken   = "RETURN_TAKEN"
	AuditActionRent          = "RENT"
	AuditActionReturnRented  = "RETURN_RENTED"
)

// AuditLog registro inmutable de una acción que afecta inventario (append-only).
// ActorUsername se resuelve por join con users en los listados; no se persiste aquí.
type AuditLog struct {
	ID            string
	ActorUserID   string
	ProductID     *string
	Action        string
	Qty           *int
	Meta          map[string]any // jsonb libre: nombre de producto, días, rentalId...
	CreatedAt     time.Time
	ActorUsername string
}
