package repository

import (
	"context"

	"github.com/fotogestor/fotogestor-api/internal/domain/entity"
)

// ContractTemplateRepository porta de persistência dos modelos de contrato.
type ContractTemplateRepository interface {
	// ListActive devolve os modelos ativos (para renderização, indexados
	// por event_type_id na camada de aplicação).
	ListActive(ctx context.Context) ([]entity.ContractTemplate, error)
	List(ctx context.Context) ([]entity.ContractTemplate, error)
	Create(ctx context.Context, t *entity.ContractTemplate) (*entity.ContractTemplate, error)
	Update(ctx context.Context, t *entity.ContractTemplate) error
	Delete(ctx context.Context, id string) error
}
