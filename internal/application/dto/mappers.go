package dto

import "github.com/jhoicas/skirent-api/internal/domain/entity"

// NewProductResponse proyecta un Product de dominio.
func NewProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Category:          p.Category,
		Gender:            p.Gender,
		Type:              p.Type,
		Quantity:          p.Quantity,
		AvailableQuantity: p.AvailableQuantity,
		RentedQuantity:    p.RentedQuantity,
	}
}

// NewRentalResponse proyecta un Rental de dominio (con ProductName resuelto por join).
func NewRentalResponse(r *entity.Rental) *RentalResponse {
	if r == nil {
		return nil
	}
	return &RentalResponse{
		ID:          r.ID,
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		UserID:      r.UserID,
		Qty:         r.Qty,
		Status:      r.Status,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		ReturnedAt:  r.ReturnedAt,
		CreatedAt:   r.CreatedAt,
	}
}

// NewAuditLogResponse proyecta una entrada de auditoría.
func NewAuditLogResponse(l *entity.AuditLog) *AuditLogResponse {
	if l == nil {
		return nil
	}
	return &AuditLogResponse{
		ID:            l.ID,
		ActorUserID:   l.ActorUserID,
		ActorUserName: l.ActorUsername,
		ProductID:     l.ProductID,
		Action:        l.Action,
		Qty:           l.Qty,
		Meta:          l.Meta,
		CreatedAt:     l.CreatedAt,
	}
}
