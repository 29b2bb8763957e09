package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fotogestor/fotogestor-api/internal/domain"
	"github.com/fotogestor/fotogestor-api/internal/domain/entity"
	"github.com/fotogestor/fotogestor-api/internal/domain/repository"
)

var _ repository.ContractRepository = (*ContractRepo)(nil)

// ContractRepo persistência dos contratos na tabela remota "contratos".
// Passagem pura: nenhuma regra de negócio aqui.
type ContractRepo struct {
	c *Client
}

// NewContractRepository constrói o adaptador.
func NewContractRepository(c *Client) *ContractRepo {
	return &ContractRepo{c: c}
}

// Insert persiste o contrato e devolve a linha criada.
func (r *ContractRepo) Insert(ctx context.Context, contract *entity.Contract) (*entity.Contract, error) {
	var rows []entity.Contract
	if err := r.c.From(tableContratos).Insert(ctx, contract, &rows); err != nil {
		return nil, fmt.Errorf("inserir contrato: %w", err)
	}
	if len(rows) == 0 {
		return contract, nil
	}
	return &rows[0], nil
}

// GetByID busca um contrato; devolve (nil, nil) se não existir.
func (r *ContractRepo) GetByID(ctx context.Context, id string) (*entity.Contract, error) {
	var rows []entity.Contract
	if err := r.c.From(tableContratos).Select("*").Eq("id", id).Limit(1).Get(ctx, &rows); err != nil {
		return nil, fmt.Errorf("buscar contrato: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// ListByPhotographer contratos do fotógrafo, mais recentes primeiro.
func (r *ContractRepo) ListByPhotographer(ctx context.Context, photographerID string) ([]entity.Contract, error) {
	var rows []entity.Contract
	err := r.c.From(tableContratos).Select("*").
		Eq("photographer_id", photographerID).
		Order("created_at", false).
		Get(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("listar contratos: %w", err)
	}
	return rows, nil
}

// UpdateStatus troca o rótulo de status do contrato.
func (r *ContractRepo) UpdateStatus(ctx context.Context, id, status string) error {
	body := map[string]any{"status": status, "updated_at": time.Now().UTC()}
	var rows []entity.Contract
	if err := r.c.From(tableContratos).Eq("id", id).Update(ctx, body, &rows); err != nil {
		return fmt.Errorf("atualizar status do contrato: %w", err)
	}
	if len(rows) == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove o contrato; só retorna após a confirmação do backend.
func (r *ContractRepo) Delete(ctx context.Context, id string) error {
	if err := r.c.From(tableContratos).Eq("id", id).Delete(ctx); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("excluir contrato: %w", err)
	}
	return nil
}
