package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/skirent-api/internal/domain/entity"
	"github.com/jhoicas/skirent-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo implementación del puerto AuditLogRepository sobre PostgreSQL.
// Append-only: solo INSERT y SELECT; nunca UPDATE ni DELETE.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository construye el adaptador de persistencia para auditoría. Pasar pool o tx (Querier).
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create agrega una entrada de auditoría. Meta se persiste como jsonb.
func (r *AuditLogRepo) Create(log *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, actor_user_id, product_id, action, qty, meta, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.ActorUserID, log.ProductID, log.Action, log.Qty, log.Meta, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// ListRecent devuelve las entradas más recientes con el username del actor
// resuelto vía join (vacío si el usuario ya no existe).
func (r *AuditLogRepo) ListRecent(limit int) ([]*entity.AuditLog, error) {
	query := `
		SELECT l.id, l.actor_user_id, l.product_id, l.action, l.qty, l.meta, l.created_at,
		       COALESCE(u.username, '')
		FROM audit_logs l
		LEFT JOIN users u ON u.id = l.actor_user_id
		ORDER BY l.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditLog
	for rows.Next() {
		var log entity.AuditLog
		if err := rows.Scan(&log.ID, &log.ActorUserID, &log.ProductID, &log.Action,
			&log.Qty, &log.Meta, &log.CreatedAt, &log.ActorUsername); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		list = append(list, &log)
	}
	return list, rows.Err()
}
