package repository

import (
	"context"

	"github.com/fotogestor/fotogestor-api/internal/domain/entity"
)

// PhotographerRepository perfil do fotógrafo vinculado ao usuário autenticado.
type PhotographerRepository interface {
	GetByUserID(ctx context.Context, userID string) (*entity.Photographer, error)
	Create(ctx context.Context, p *entity.Photographer) (*entity.Photographer, error)
	Update(ctx context.Context, p *entity.Photographer) error
}

// BusinessInfoRepository dados do negócio do fotógrafo.
type BusinessInfoRepository interface {
	GetByPhotographer(ctx context.Context, photographerID string) (*entity.BusinessInfo, error)
	Upsert(ctx context.Context, b *entity.BusinessInfo) (*entity.BusinessInfo, error)
}
