package repository

import (
	"context"

	"github.com/fotogestor/fotogestor-api/internal/domain/entity"
)

// ContractRepository porta de persistência dos contratos ("contratos").
// Operações puras de passagem; o backend hospedado faz a consulta real.
type ContractRepository interface {
	// Insert persiste o contrato e devolve a linha criada pelo backend.
	Insert(ctx context.Context, c *entity.Contract) (*entity.Contract, error)
	GetByID(ctx context.Context, id string) (*entity.Contract, error)
	// ListByPhotographer lista os contratos do fotógrafo, mais recentes primeiro.
	ListByPhotographer(ctx context.Context, photographerID string) ([]entity.Contract, error)
	UpdateStatus(ctx context.Context, id, status string) error
	// Delete só retorna depois da confirmação do backend; a remoção da
	// visão local nunca é otimista.
	Delete(ctx context.Context, id string) error
}
