package contracts_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fotogestor/fotogestor-api/internal/application/catalog"
	"github.com/fotogestor/fotogestor-api/internal/application/contracts"
	"github.com/fotogestor/fotogestor-api/internal/application/dto"
	"github.com/fotogestor/fotogestor-api/internal/domain"
	"github.com/fotogestor/fotogestor-api/internal/domain/entity"
)

// ── Fakes em memória ─────────────────────────────────────────────────────────

type fakeCatalogRepo struct{}

func (fakeCatalogRepo) ListEventTypes(context.Context) ([]entity.EventType, error) {
	return []entity.EventType{
		{ID: "et-casamento", Name: "Casamento", IsActive: true},
		{ID: "et-ensaio", Name: "Ensaio", IsActive: true},
	}, nil
}

func (fakeCatalogRepo) ListPackages(context.Context) ([]entity.Package, error) {
	return []entity.Package{
		{ID: "pkg-1", EventTypeID: "et-casamento", Name: "Essencial", Price: decimal.RequireFromString("1200"), Features: []string{"Álbum"}},
	}, nil
}

func (fakeCatalogRepo) ListPaymentMethods(context.Context) ([]entity.PaymentMethod, error) {
	return []entity.PaymentMethod{{ID: "pm-pix", Name: "PIX"}, {ID: "pm-boleto", Name: "Boleto"}}, nil
}

func (fakeCatalogRepo) ListPackagePaymentMethods(context.Context) ([]entity.PackagePaymentMethod, error) {
	pm := entity.PaymentMethod{ID: "pm-pix", Name: "PIX"}
	return []entity.PackagePaymentMethod{
		{ID: "lk-1", PackageID: "pkg-1", PaymentMethodID: "pm-pix", FinalPrice: decimal.RequireFromString("1000"), PaymentMethod: &pm},
	}, nil
}

type fakeContractRepo struct {
	inserted  []*entity.Contract
	byID      map[string]*entity.Contract
	deleteErr error
	deleted   []string
	statuses  map[string]string
}

func newFakeContractRepo() *fakeContractRepo {
	return &fakeContractRepo{byID: map[string]*entity.Contract{}, statuses: map[string]string{}}
}

func (f *fakeContractRepo) Insert(_ context.Context, c *entity.Contract) (*entity.Contract, error) {
	f.inserted = append(f.inserted, c)
	f.byID[c.ID] = c
	return c, nil
}

func (f *fakeContractRepo) GetByID(_ context.Context, id string) (*entity.Contract, error) {
	return f.byID[id], nil
}

func (f *fakeContractRepo) ListByPhotographer(_ context.Context, photographerID string) ([]entity.Contract, error) {
	var out []entity.Contract
	for _, c := range f.byID {
		if c.PhotographerID == photographerID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeContractRepo) UpdateStatus(_ context.Context, id, status string) error {
	f.statuses[id] = status
	return nil
}

func (f *fakeContractRepo) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	delete(f.byID, id)
	return nil
}

type fakeTemplateRepo struct {
	templates []entity.ContractTemplate
}

func (f *fakeTemplateRepo) ListActive(context.Context) ([]entity.ContractTemplate, error) {
	return f.templates, nil
}
func (f *fakeTemplateRepo) List(context.Context) ([]entity.ContractTemplate, error) {
	return f.templates, nil
}
func (f *fakeTemplateRepo) Create(_ context.Context, t *entity.ContractTemplate) (*entity.ContractTemplate, error) {
	f.templates = append(f.templates, *t)
	return t, nil
}
func (f *fakeTemplateRepo) Update(context.Context, *entity.ContractTemplate) error { return nil }
func (f *fakeTemplateRepo) Delete(context.Context, string) error                   { return nil }

func buildUseCase(repo *fakeContractRepo, tpls *fakeTemplateRepo) *contracts.UseCase {
	return contracts.NewUseCase(repo, tpls, catalog.NewLoader(fakeCatalogRepo{}))
}

func validRequest() *dto.CreateContractRequest {
	return &dto.CreateContractRequest{
		NomeCompleto:       "Ana Souza",
		CPF:                "123.456.789-01",
		Email:              "ana@example.com",
		Whatsapp:           "(11) 98765-4321",
		Endereco:           "Rua das Flores, 10",
		Cidade:             "São Paulo",
		EventTypeID:        "et-casamento",
		DataEvento:         "2026-10-05",
		NomeNoivos:         "Ana e Bruno",
		PackageID:          "pkg-1",
		PaymentMethodID:    "pm-pix",
		DiscountPercentage: decimal.RequireFromString("10"),
	}
}

// ── Tests ────────────────────────────────────────────────────────────────────

// O preço persistido é sempre derivado no servidor: vínculo 1000, desconto
// 10% -> 900. O snapshot congela rótulos e serviços do catálogo.
func TestCreate_PrecoDerivadoESnapshot(t *testing.T) {
	repo := newFakeContractRepo()
	uc := buildUseCase(repo, &fakeTemplateRepo{})

	created, fields, err := uc.Create(context.Background(), "ph-1", validRequest())
	require.NoError(t, err)
	require.Empty(t, fields)
	require.NotNil(t, created)

	assert.True(t, created.FinalPrice.Equal(decimal.RequireFromString("900")))
	assert.True(t, created.AdjustedPrice.Equal(created.FinalPrice))
	assert.True(t, created.PackagePrice.Equal(decimal.RequireFromString("1200")))
	assert.Equal(t, entity.StatusDraft, created.Status)
	assert.Equal(t, "Casamento", created.TipoEvento)
	assert.Equal(t, "Essencial", created.PackageName)
	assert.Equal(t, "PIX", created.PaymentMethodName)
	assert.Equal(t, []string{"Álbum"}, created.PackageFeatures)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	// CPF e WhatsApp guardados só com dígitos.
	assert.Equal(t, "12345678901", created.CPF)
	assert.Equal(t, "11987654321", created.Whatsapp)
}

// Campo inválido bloqueia localmente: nada é escrito no backend.
func TestCreate_ValidacaoBloqueiaEscrita(t *testing.T) {
	repo := newFakeContractRepo()
	uc := buildUseCase(repo, &fakeTemplateRepo{})

	in := validRequest()
	in.CPF = "123"
	in.Email = "não-é-email"

	created, fields, err := uc.Create(context.Background(), "ph-1", in)
	require.NoError(t, err)
	assert.Nil(t, created)
	assert.Contains(t, fields, "cpf")
	assert.Contains(t, fields, "email")
	assert.Empty(t, repo.inserted, "nenhuma escrita pode chegar ao backend com formulário inválido")
}

// Casamento exige o nome dos noivos.
func TestCreate_CampoCondicionalPorTipo(t *testing.T) {
	repo := newFakeContractRepo()
	uc := buildUseCase(repo, &fakeTemplateRepo{})

	in := validRequest()
	in.NomeNoivos = ""

	_, fields, err := uc.Create(context.Background(), "ph-1", in)
	require.NoError(t, err)
	assert.Contains(t, fields, "nome_noivos")
	assert.Empty(t, repo.inserted)
}

// Par (pacote, forma) sem vínculo jamais vira contrato.
func TestCreate_FormaIncompativel(t *testing.T) {
	repo := newFakeContractRepo()
	uc := buildUseCase(repo, &fakeTemplateRepo{})

	in := validRequest()
	in.PaymentMethodID = "pm-boleto"

	_, _, err := uc.Create(context.Background(), "ph-1", in)
	assert.ErrorIs(t, err, domain.ErrIncompatiblePaymentMethod)
	assert.Empty(t, repo.inserted)
}

func TestUpdateStatus_RotuloFechado(t *testing.T) {
	repo := newFakeContractRepo()
	uc := buildUseCase(repo, &fakeTemplateRepo{})

	require.NoError(t, uc.UpdateStatus(context.Background(), "c-1", entity.StatusSigned))
	assert.Equal(t, entity.StatusSigned, repo.statuses["c-1"])

	err := uc.UpdateStatus(context.Background(), "c-1", "pago")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

// Exclusão sem confirmação do backend devolve o erro ao chamador; a remoção
// da visão local só acontece com Delete nil.
func TestDelete_SomenteAposConfirmacao(t *testing.T) {
	repo := newFakeContractRepo()
	repo.deleteErr = errors.New("timeout do backend")
	uc := buildUseCase(repo, &fakeTemplateRepo{})

	err := uc.Delete(context.Background(), "c-1")
	assert.Error(t, err)
	assert.Empty(t, repo.deleted)

	repo.deleteErr = nil
	require.NoError(t, uc.Delete(context.Background(), "c-1"))
	assert.Equal(t, []string{"c-1"}, repo.deleted)
}

func TestRender_UsaModeloDoTipo(t *testing.T) {
	repo := newFakeContractRepo()
	tpls := &fakeTemplateRepo{templates: []entity.ContractTemplate{
		{ID: "tpl-1", EventTypeID: "et-casamento", Content: "Contrato de {{nome_completo}}, total {{package_price}}.", IsActive: true},
	}}
	uc := buildUseCase(repo, tpls)

	created, _, err := uc.Create(context.Background(), "ph-1", validRequest())
	require.NoError(t, err)

	text, err := uc.Render(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Contrato de Ana Souza, total R$ 1.200,00.", text)
}

func TestRender_SemModelo(t *testing.T) {
	repo := newFakeContractRepo()
	uc := buildUseCase(repo, &fakeTemplateRepo{})

	created, _, err := uc.Create(context.Background(), "ph-1", validRequest())
	require.NoError(t, err)

	_, err = uc.Render(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestRender_ContratoInexistente(t *testing.T) {
	uc := buildUseCase(newFakeContractRepo(), &fakeTemplateRepo{})
	_, err := uc.Render(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
