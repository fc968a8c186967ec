package usecase

import (
	"github.com/jhoicas/skirent-api/internal/application/dto"
	"github.com/jhoicas/skirent-api/internal/domain/repository"
)

// Máximo de entradas devueltas por el listado de auditoría.
const auditLogsLimit = 200

// AuditUseCase listado admin del rastro de auditoría (solo lectura; las
// entradas se escriben desde los casos de uso de inventario y rentas).
type AuditUseCase struct {
	auditRepo repository.AuditLogRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(auditRepo repository.AuditLogRepository) *AuditUseCase {
	return &AuditUseCase{auditRepo: auditRepo}
}

// List devuelve las entradas más recientes con el username del actor resuelto.
func (uc *AuditUseCase) List() ([]dto.AuditLogResponse, error) {
	list, err := uc.auditRepo.ListRecent(auditLogsLimit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AuditLogResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *dto.NewAuditLogResponse(l))
	}
	return items, nil
}
