package repository

import "github.com/jhoicas/skirent-api/internal/domain/entity"

// AuditLogRepository define el puerto de persistencia para AuditLog (DIP).
// Append-only: no existe Update ni Delete.
type AuditLogRepository interface {
	Create(log *entity.AuditLog) error
	// ListRecent devuelve las entradas más recientes (created_at DESC) con
	// el username del actor resuelto vía join.
	ListRecent(limit int) ([]*entity.AuditLog, error)
}
