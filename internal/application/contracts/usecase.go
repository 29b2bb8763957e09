// Package contracts casos de uso do ciclo de vida do contrato: criação com
// preço derivado, listagem, troca de status, exclusão e renderização do
// documento textual.
package contracts

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fotogestor/fotogestor-api/internal/application/catalog"
	"github.com/fotogestor/fotogestor-api/internal/application/dto"
	"github.com/fotogestor/fotogestor-api/internal/domain"
	"github.com/fotogestor/fotogestor-api/internal/domain/entity"
	"github.com/fotogestor/fotogestor-api/internal/domain/format"
	"github.com/fotogestor/fotogestor-api/internal/domain/render"
	"github.com/fotogestor/fotogestor-api/internal/domain/repository"
)

// UseCase orquestra contratos sobre as portas de persistência remotas.
type UseCase struct {
	contracts repository.ContractRepository
	templates repository.ContractTemplateRepository
	loader    *catalog.Loader
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	contracts repository.ContractRepository,
	templates repository.ContractTemplateRepository,
	loader *catalog.Loader,
) *UseCase {
	return &UseCase{contracts: contracts, templates: templates, loader: loader}
}

// Create valida o formulário, recalcula o preço no servidor e persiste o
// contrato como snapshot imutável em status draft.
//
// Devolve (nil, fields, nil) quando há erros de validação campo a campo;
// nesse caso nenhuma escrita chega ao backend. O preço final enviado pelo
// cliente, se houver, é ignorado: final_price é sempre derivado do vínculo
// pacote/forma de pagamento e do desconto.
func (uc *UseCase) Create(ctx context.Context, photographerID string, in *dto.CreateContractRequest) (*entity.Contract, map[string]string, error) {
	cat, err := uc.loader.Load(ctx)
	if err != nil {
		return nil, nil, err
	}

	et := cat.EventType(in.EventTypeID)
	if et == nil {
		return nil, nil, domain.ErrNotFound
	}

	if fields := ValidateCreate(in, et.Kind()); len(fields) > 0 {
		return nil, fields, nil
	}

	// A seleção reaplica os filtros do catálogo: pacote do tipo errado ou
	// forma de pagamento sem vínculo jamais chegam ao preço.
	sel := catalog.NewSelection(cat)
	if err := sel.SelectEventType(in.EventTypeID); err != nil {
		return nil, nil, err
	}
	if err := sel.SelectPackage(in.PackageID); err != nil {
		return nil, nil, err
	}
	if err := sel.SetDiscount(in.DiscountPercentage); err != nil {
		return nil, nil, err
	}
	if err := sel.SelectPaymentMethod(in.PaymentMethodID); err != nil {
		return nil, nil, err
	}

	pkg := cat.Package(in.PackageID)
	link := cat.LinkFor(in.PackageID, in.PaymentMethodID)
	methodName := ""
	if link != nil && link.PaymentMethod != nil {
		methodName = link.PaymentMethod.Name
	}
	q := sel.Quote()

	now := time.Now().UTC()
	contract := &entity.Contract{
		ID:             uuid.New().String(),
		PhotographerID: photographerID,

		NomeCompleto:   in.NomeCompleto,
		CPF:            format.Digits(in.CPF),
		Email:          in.Email,
		Whatsapp:       format.Digits(in.Whatsapp),
		Endereco:       in.Endereco,
		Cidade:         in.Cidade,
		DataNascimento: in.DataNascimento,

		EventTypeID:   et.ID,
		TipoEvento:    et.Name,
		DataEvento:    in.DataEvento,
		HorarioEvento: in.HorarioEvento,
		LocalFesta:    in.LocalFesta,

		NomeNoivos:         in.NomeNoivos,
		NomeAniversariante: in.NomeAniversariante,
		LocalPreWedding:    in.LocalPreWedding,
		LocalMakingOf:      in.LocalMakingOf,
		LocalCerimonia:     in.LocalCerimonia,

		PackageID:          pkg.ID,
		PackageName:        pkg.Name,
		PackageFeatures:    pkg.Features,
		PaymentMethodID:    in.PaymentMethodID,
		PaymentMethodName:  methodName,
		PackagePrice:       q.PackagePrice,
		DiscountPercentage: q.DiscountPercentage,
		FinalPrice:         q.FinalPrice,
		AdjustedPrice:      q.AdjustedPrice,

		Status:    entity.StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := uc.contracts.Insert(ctx, contract)
	if err != nil {
		return nil, nil, err
	}
	return created, nil, nil
}

// List contratos do fotógrafo, mais recentes primeiro.
func (uc *UseCase) List(ctx context.Context, photographerID string) ([]entity.Contract, error) {
	return uc.contracts.ListByPhotographer(ctx, photographerID)
}

// Get busca um contrato; (nil, nil) se não existir.
func (uc *UseCase) Get(ctx context.Context, id string) (*entity.Contract, error) {
	return uc.contracts.GetByID(ctx, id)
}

// UpdateStatus troca o rótulo de status. Nenhuma regra de transição é
// imposta além do rótulo pertencer à lista fechada.
func (uc *UseCase) UpdateStatus(ctx context.Context, id, status string) error {
	if !entity.ValidStatus(status) {
		return domain.ErrInvalidStatus
	}
	return uc.contracts.UpdateStatus(ctx, id, status)
}

// Delete exclui o contrato. Só retorna depois da confirmação do backend;
// o chamador remove da lista apenas quando Delete devolve nil.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.contracts.Delete(ctx, id)
}

// Render gera o texto do contrato a partir do modelo ativo do tipo de evento.
func (uc *UseCase) Render(ctx context.Context, id string) (string, error) {
	contract, err := uc.contracts.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if contract == nil {
		return "", domain.ErrNotFound
	}

	tpls, err := uc.templates.ListActive(ctx)
	if err != nil {
		return "", err
	}
	byEventType := make(map[string]*entity.ContractTemplate, len(tpls))
	for i := range tpls {
		if _, ok := byEventType[tpls[i].EventTypeID]; !ok {
			byEventType[tpls[i].EventTypeID] = &tpls[i]
		}
	}

	return render.Contract(contract, byEventType)
}
