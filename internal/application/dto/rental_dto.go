package dto

import "time"

// RentalResponse proyección de una renta. ProductName es null si el
// producto fue eliminado después de crearse la renta.
type RentalResponse struct {
	ID          string     `json:"id"`
	ProductID   string     `json:"productId"`
	ProductName *string    `json:"productName"`
	UserID      string     `json:"userId"`
	Qty         int        `json:"qty"`
	Status      string     `json:"status"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     time.Time  `json:"endDate"`
	ReturnedAt  *time.Time `json:"returnedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ListRentalsRequest filtros del listado admin (query params).
type ListRentalsRequest struct {
	Status    string `query:"status" validate:"omitempty,oneof=ACTIVE RETURNED"`
	UserID    string `query:"userId" validate:"omitempty,uuid"`
	ProductID string `query:"productId" validate:"omitempty,uuid"`
}
