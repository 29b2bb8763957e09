// Package usecase casos de uso de administração do catálogo: tipos de evento,
// pacotes, formas de pagamento, vínculos de preço e modelos de contrato.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fotogestor/fotogestor-api/internal/application/dto"
	"github.com/fotogestor/fotogestor-api/internal/domain"
	"github.com/fotogestor/fotogestor-api/internal/domain/entity"
	"github.com/fotogestor/fotogestor-api/internal/domain/repository"
)

func boolOrTrue(b *bool) bool {
	if b == nil {
		return true
	}
	return *b
}

// EventTypeUseCase administração dos tipos de evento.
type EventTypeUseCase struct {
	repo repository.EventTypeRepository
}

// NewEventTypeUseCase constrói o caso de uso.
func NewEventTypeUseCase(repo repository.EventTypeRepository) *EventTypeUseCase {
	return &EventTypeUseCase{repo: repo}
}

func (uc *EventTypeUseCase) List(ctx context.Context) ([]entity.EventType, error) {
	return uc.repo.List(ctx)
}

func (uc *EventTypeUseCase) Create(ctx context.Context, in dto.EventTypeRequest) (*entity.EventType, error) {
	return uc.repo.Create(ctx, &entity.EventType{
		ID:        uuid.New().String(),
		Name:      in.Name,
		IsActive:  boolOrTrue(in.IsActive),
		CreatedAt: time.Now().UTC(),
	})
}

func (uc *EventTypeUseCase) Update(ctx context.Context, id string, in dto.EventTypeRequest) error {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return err
	}
	for _, e := range list {
		if e.ID == id {
			e.Name = in.Name
			e.IsActive = boolOrTrue(in.IsActive)
			return uc.repo.Update(ctx, &e)
		}
	}
	return domain.ErrNotFound
}

func (uc *EventTypeUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// PackageUseCase administração dos pacotes.
type PackageUseCase struct {
	repo repository.PackageRepository
}

// NewPackageUseCase constrói o caso de uso.
func NewPackageUseCase(repo repository.PackageRepository) *PackageUseCase {
	return &PackageUseCase{repo: repo}
}

func (uc *PackageUseCase) List(ctx context.Context) ([]entity.Package, error) {
	return uc.repo.List(ctx)
}

func (uc *PackageUseCase) Create(ctx context.Context, in dto.PackageRequest) (*entity.Package, error) {
	return uc.repo.Create(ctx, &entity.Package{
		ID:          uuid.New().String(),
		EventTypeID: in.EventTypeID,
		Name:        in.Name,
		Price:       in.Price,
		Features:    in.Features,
		IsActive:    boolOrTrue(in.IsActive),
		CreatedAt:   time.Now().UTC(),
	})
}

func (uc *PackageUseCase) Update(ctx context.Context, id string, in dto.PackageRequest) error {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return err
	}
	for _, p := range list {
		if p.ID == id {
			p.EventTypeID = in.EventTypeID
			p.Name = in.Name
			p.Price = in.Price
			p.Features = in.Features
			p.IsActive = boolOrTrue(in.IsActive)
			return uc.repo.Update(ctx, &p)
		}
	}
	return domain.ErrNotFound
}

func (uc *PackageUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// PaymentMethodUseCase administração das formas de pagamento.
type PaymentMethodUseCase struct {
	repo repository.PaymentMethodRepository
}

// NewPaymentMethodUseCase constrói o caso de uso.
func NewPaymentMethodUseCase(repo repository.PaymentMethodRepository) *PaymentMethodUseCase {
	return &PaymentMethodUseCase{repo: repo}
}

func (uc *PaymentMethodUseCase) List(ctx context.Context) ([]entity.PaymentMethod, error) {
	return uc.repo.List(ctx)
}

func (uc *PaymentMethodUseCase) Create(ctx context.Context, in dto.PaymentMethodRequest) (*entity.PaymentMethod, error) {
	return uc.repo.Create(ctx, &entity.PaymentMethod{
		ID:                 uuid.New().String(),
		Name:               in.Name,
		DiscountPercentage: in.DiscountPercentage,
		Installments:       in.Installments,
		PaymentSchedule:    in.PaymentSchedule,
		IsActive:           boolOrTrue(in.IsActive),
		CreatedAt:          time.Now().UTC(),
	})
}

func (uc *PaymentMethodUseCase) Update(ctx context.Context, id string, in dto.PaymentMethodRequest) error {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return err
	}
	for _, m := range list {
		if m.ID == id {
			m.Name = in.Name
			m.DiscountPercentage = in.DiscountPercentage
			m.Installments = in.Installments
			m.PaymentSchedule = in.PaymentSchedule
			m.IsActive = boolOrTrue(in.IsActive)
			return uc.repo.Update(ctx, &m)
		}
	}
	return domain.ErrNotFound
}

func (uc *PaymentMethodUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// LinkUseCase administração dos vínculos pacote/forma de pagamento.
type LinkUseCase struct {
	repo repository.PackagePaymentMethodRepository
}

// NewLinkUseCase constrói o caso de uso.
func NewLinkUseCase(repo repository.PackagePaymentMethodRepository) *LinkUseCase {
	return &LinkUseCase{repo: repo}
}

func (uc *LinkUseCase) List(ctx context.Context) ([]entity.PackagePaymentMethod, error) {
	return uc.repo.List(ctx)
}

func (uc *LinkUseCase) ListByPackage(ctx context.Context, packageID string) ([]entity.PackagePaymentMethod, error) {
	return uc.repo.ListByPackage(ctx, packageID)
}

// Create cria o vínculo; devolve domain.ErrDuplicate se o par já existe:
// cada par (pacote, forma de pagamento) tem exatamente um preço resolvido.
func (uc *LinkUseCase) Create(ctx context.Context, in dto.PackagePaymentMethodRequest) (*entity.PackagePaymentMethod, error) {
	existing, err := uc.repo.ListByPackage(ctx, in.PackageID)
	if err != nil {
		return nil, err
	}
	for _, l := range existing {
		if l.PaymentMethodID == in.PaymentMethodID {
			return nil, domain.ErrDuplicate
		}
	}
	return uc.repo.Create(ctx, &entity.PackagePaymentMethod{
		ID:              uuid.New().String(),
		PackageID:       in.PackageID,
		PaymentMethodID: in.PaymentMethodID,
		FinalPrice:      in.FinalPrice,
	})
}

func (uc *LinkUseCase) Update(ctx context.Context, id string, in dto.PackagePaymentMethodRequest) error {
	return uc.repo.Update(ctx, &entity.PackagePaymentMethod{ID: id, FinalPrice: in.FinalPrice})
}

func (uc *LinkUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// TemplateUseCase administração dos modelos de contrato.
type TemplateUseCase struct {
	repo repository.ContractTemplateRepository
}

// NewTemplateUseCase constrói o caso de uso.
func NewTemplateUseCase(repo repository.ContractTemplateRepository) *TemplateUseCase {
	return &TemplateUseCase{repo: repo}
}

func (uc *TemplateUseCase) List(ctx context.Context) ([]entity.ContractTemplate, error) {
	return uc.repo.List(ctx)
}

func (uc *TemplateUseCase) Create(ctx context.Context, in dto.TemplateRequest) (*entity.ContractTemplate, error) {
	return uc.repo.Create(ctx, &entity.ContractTemplate{
		ID:          uuid.New().String(),
		EventTypeID: in.EventTypeID,
		Name:        in.Name,
		Content:     in.Content,
		IsActive:    boolOrTrue(in.IsActive),
		CreatedAt:   time.Now().UTC(),
	})
}

func (uc *TemplateUseCase) Update(ctx context.Context, id string, in dto.TemplateRequest) error {
	return uc.repo.Update(ctx, &entity.ContractTemplate{
		ID:          id,
		EventTypeID: in.EventTypeID,
		Name:        in.Name,
		Content:     in.Content,
		IsActive:    boolOrTrue(in.IsActive),
	})
}

func (uc *TemplateUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
