package supabase

import (
	"context"
	"fmt"

	"github.com/fotogestor/fotogestor-api/internal/domain/entity"
	"github.com/fotogestor/fotogestor-api/internal/domain/repository"
)

var (
	_ repository.PhotographerRepository = (*PhotographerRepo)(nil)
	_ repository.BusinessInfoRepository = (*BusinessInfoRepo)(nil)
)

// PhotographerRepo perfil do fotógrafo na tabela remota.
type PhotographerRepo struct{ c *Client }

// NewPhotographerRepository constrói o adaptador.
func NewPhotographerRepository(c *Client) *PhotographerRepo { return &PhotographerRepo{c: c} }

// GetByUserID busca o perfil pelo usuário autenticado; (nil, nil) se não existir.
func (r *PhotographerRepo) GetByUserID(ctx context.Context, userID string) (*entity.Photographer, error) {
	var rows []entity.Photographer
	if err := r.c.From(tablePhotographers).Select("*").Eq("user_id", userID).Limit(1).Get(ctx, &rows); err != nil {
		return nil, fmt.Errorf("buscar photographer: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *PhotographerRepo) Create(ctx context.Context, p *entity.Photographer) (*entity.Photographer, error) {
	var rows []entity.Photographer
	if err := r.c.From(tablePhotographers).Insert(ctx, p, &rows); err != nil {
		return nil, fmt.Errorf("inserir photographer: %w", err)
	}
	return firstRow(rows, p)
}

// Update grava as colunas editáveis do perfil. user_id, email e created_at
// não viajam no PATCH.
func (r *PhotographerRepo) Update(ctx context.Context, p *entity.Photographer) error {
	row := map[string]any{
		"name":  p.Name,
		"phone": p.Phone,
	}
	if err := r.c.From(tablePhotographers).Eq("id", p.ID).Update(ctx, row, nil); err != nil {
		return fmt.Errorf("atualizar photographer: %w", err)
	}
	return nil
}

// BusinessInfoRepo dados do negócio na tabela remota.
type BusinessInfoRepo struct{ c *Client }

// NewBusinessInfoRepository constrói o adaptador.
func NewBusinessInfoRepository(c *Client) *BusinessInfoRepo { return &BusinessInfoRepo{c: c} }

// GetByPhotographer busca os dados do negócio; (nil, nil) se nunca preenchidos.
func (r *BusinessInfoRepo) GetByPhotographer(ctx context.Context, photographerID string) (*entity.BusinessInfo, error) {
	var rows []entity.BusinessInfo
	err := r.c.From(tableBusinessInfo).Select("*").Eq("photographer_id", photographerID).Limit(1).Get(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("buscar business_info: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// Upsert cria ou atualiza a linha única do fotógrafo.
func (r *BusinessInfoRepo) Upsert(ctx context.Context, b *entity.BusinessInfo) (*entity.BusinessInfo, error) {
	existing, err := r.GetByPhotographer(ctx, b.PhotographerID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		var rows []entity.BusinessInfo
		if err := r.c.From(tableBusinessInfo).Insert(ctx, b, &rows); err != nil {
			return nil, fmt.Errorf("inserir business_info: %w", err)
		}
		return firstRow(rows, b)
	}
	b.ID = existing.ID
	if err := r.c.From(tableBusinessInfo).Eq("id", b.ID).Update(ctx, b, nil); err != nil {
		return nil, fmt.Errorf("atualizar business_info: %w", err)
	}
	return b, nil
}
