package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fotogestor/fotogestor-api/internal/application/dto"
	"github.com/fotogestor/fotogestor-api/internal/domain/entity"
	"github.com/fotogestor/fotogestor-api/internal/domain/format"
	"github.com/fotogestor/fotogestor-api/internal/domain/repository"
)

// BusinessInfoUseCase dados do negócio do fotógrafo exibidos no contrato.
type BusinessInfoUseCase struct {
	repo repository.BusinessInfoRepository
}

// NewBusinessInfoUseCase constrói o caso de uso.
func NewBusinessInfoUseCase(repo repository.BusinessInfoRepository) *BusinessInfoUseCase {
	return &BusinessInfoUseCase{repo: repo}
}

// Get devolve os dados do negócio; nil quando nunca foram preenchidos.
func (uc *BusinessInfoUseCase) Get(ctx context.Context, photographerID string) (*entity.BusinessInfo, error) {
	return uc.repo.GetByPhotographer(ctx, photographerID)
}

// Save cria ou atualiza os dados do negócio. Telefone e documento são
// guardados só com dígitos; a formatação acontece na renderização.
func (uc *BusinessInfoUseCase) Save(ctx context.Context, photographerID string, in dto.BusinessInfoRequest) (*entity.BusinessInfo, error) {
	current, err := uc.repo.GetByPhotographer(ctx, photographerID)
	if err != nil {
		return nil, err
	}

	info := &entity.BusinessInfo{
		PhotographerID: photographerID,
		BusinessName:   in.BusinessName,
		Documento:      format.Digits(in.Documento),
		Endereco:       in.Endereco,
		Cidade:         in.Cidade,
		Telefone:       format.Digits(in.Telefone),
		Email:          in.Email,
		UpdatedAt:      time.Now().UTC(),
	}
	if current != nil {
		info.ID = current.ID
	} else {
		info.ID = uuid.New().String()
	}
	return uc.repo.Upsert(ctx, info)
}
