package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fotogestor/fotogestor-api/internal/application/analytics"
	"github.com/fotogestor/fotogestor-api/internal/domain/entity"
	"github.com/fotogestor/fotogestor-api/pkg/logger"
)

type fakeContractRepo struct {
	contracts []entity.Contract
	err       error
}

func (f *fakeContractRepo) Insert(_ context.Context, c *entity.Contract) (*entity.Contract, error) {
	return c, nil
}
func (f *fakeContractRepo) GetByID(context.Context, string) (*entity.Contract, error) {
	return nil, nil
}
func (f *fakeContractRepo) ListByPhotographer(context.Context, string) ([]entity.Contract, error) {
	return f.contracts, f.err
}
func (f *fakeContractRepo) UpdateStatus(context.Context, string, string) error { return nil }
func (f *fakeContractRepo) Delete(context.Context, string) error               { return nil }

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func contract(status, price string, createdAt time.Time) entity.Contract {
	return entity.Contract{
		Status:     status,
		FinalPrice: decimal.RequireFromString(price),
		CreatedAt:  createdAt,
	}
}

func TestGetSummary_AgregaPorStatus(t *testing.T) {
	now := time.Now()
	lastMonth := now.AddDate(0, -1, 0)
	repo := &fakeContractRepo{contracts: []entity.Contract{
		contract(entity.StatusSigned, "1000", now),
		contract(entity.StatusSigned, "500.50", lastMonth),
		contract(entity.StatusDraft, "300", now),
		contract(entity.StatusSent, "200", lastMonth),
		contract(entity.StatusCancelled, "999", now),
	}}

	out, err := analytics.NewDashboardUseCase(repo, testLogger()).GetSummary(context.Background(), "ph-1")
	require.NoError(t, err)

	assert.Equal(t, 5, out.TotalContracts)
	assert.Equal(t, 2, out.ByStatus[entity.StatusSigned])
	assert.Equal(t, 1, out.ByStatus[entity.StatusDraft])
	assert.Equal(t, 1, out.ByStatus[entity.StatusSent])
	assert.Equal(t, 1, out.ByStatus[entity.StatusCancelled])

	// Receita realizada = assinados; pendente = rascunho + enviado.
	// Cancelado não conta em nenhuma.
	assert.True(t, out.SignedRevenue.Equal(decimal.RequireFromString("1500.50")))
	assert.True(t, out.PendingRevenue.Equal(decimal.RequireFromString("500")))

	// Contratos do mês corrente por data de criação.
	assert.Equal(t, 3, out.MonthContracts)
	assert.NotEmpty(t, out.DateLabel)
}

// Falha de leitura degrada para resumo vazio: o painel abre mesmo com o
// backend fora do ar.
func TestGetSummary_DegradaComBackendFora(t *testing.T) {
	repo := &fakeContractRepo{err: errors.New("backend fora do ar")}

	out, err := analytics.NewDashboardUseCase(repo, testLogger()).GetSummary(context.Background(), "ph-1")
	require.NoError(t, err)

	assert.Equal(t, 0, out.TotalContracts)
	assert.True(t, out.SignedRevenue.IsZero())
	assert.True(t, out.PendingRevenue.IsZero())
	assert.Equal(t, 0, out.MonthContracts)
}

func TestGetSummary_SemContratos(t *testing.T) {
	out, err := analytics.NewDashboardUseCase(&fakeContractRepo{}, testLogger()).GetSummary(context.Background(), "ph-1")
	require.NoError(t, err)
	assert.Equal(t, 0, out.TotalContracts)
	assert.Contains(t, out.ByStatus, entity.StatusDraft)
}
