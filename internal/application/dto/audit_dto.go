package dto

import "time"

// AuditLogResponse proyección de una entrada de auditoría.
type AuditLogResponse struct {
	ID            string         `json:"id"`
	ActorUserID   string         `json:"actorUserId"`
	ActorUserName string         `json:"actorUserName"`
	ProductID     *string        `json:"productId"`
	Action        string         `json:"action"`
	Qty           *int           `json:"qty"`
	Meta          map[string]any `json:"meta"`
	CreatedAt     time.Time      `json:"createdAt"`
}
