package supabase

import (
	"context"
	"fmt"

	"github.com/fotogestor/fotogestor-api/internal/domain/entity"
	"github.com/fotogestor/fotogestor-api/internal/domain/repository"
)

var _ repository.ContractTemplateRepository = (*TemplateRepo)(nil)

// TemplateRepo persistência dos modelos de contrato.
type TemplateRepo struct {
	c *Client
}

// NewTemplateRepository constrói o adaptador.
func NewTemplateRepository(c *Client) *TemplateRepo {
	return &TemplateRepo{c: c}
}

// ListActive modelos ativos, para renderização.
func (r *TemplateRepo) ListActive(ctx context.Context) ([]entity.ContractTemplate, error) {
	var out []entity.ContractTemplate
	if err := r.c.From(tableContractTemplates).Select("*").IsTrue("is_active").Get(ctx, &out); err != nil {
		return nil, fmt.Errorf("listar modelos ativos: %w", err)
	}
	return out, nil
}

// List todos os modelos (tela de administração).
func (r *TemplateRepo) List(ctx context.Context) ([]entity.ContractTemplate, error) {
	var out []entity.ContractTemplate
	if err := r.c.From(tableContractTemplates).Select("*").Order("name", true).Get(ctx, &out); err != nil {
		return nil, fmt.Errorf("listar modelos: %w", err)
	}
	return out, nil
}

func (r *TemplateRepo) Create(ctx context.Context, t *entity.ContractTemplate) (*entity.ContractTemplate, error) {
	var rows []entity.ContractTemplate
	if err := r.c.From(tableContractTemplates).Insert(ctx, t, &rows); err != nil {
		return nil, fmt.Errorf("inserir modelo: %w", err)
	}
	return firstRow(rows, t)
}

func (r *TemplateRepo) Update(ctx context.Context, t *entity.ContractTemplate) error {
	// Somente as colunas editáveis; created_at da linha remota é preservado.
	row := map[string]any{
		"event_type_id": t.EventTypeID,
		"name":          t.Name,
		"content":       t.Content,
		"is_active":     t.IsActive,
	}
	if err := r.c.From(tableContractTemplates).Eq("id", t.ID).Update(ctx, row, nil); err != nil {
		return fmt.Errorf("atualizar modelo: %w", err)
	}
	return nil
}

func (r *TemplateRepo) Delete(ctx context.Context, id string) error {
	if err := r.c.From(tableContractTemplates).Eq("id", id).Delete(ctx); err != nil {
		return fmt.Errorf("excluir modelo: %w", err)
	}
	return nil
}
