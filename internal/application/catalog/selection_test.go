package catalog_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fotogestor/fotogestor-api/internal/application/catalog"
	"github.com/fotogestor/fotogestor-api/internal/domain"
)

func loadedCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.NewLoader(testRepo()).Load(context.Background())
	require.NoError(t, err)
	return cat
}

func TestSelection_FluxoCompleto(t *testing.T) {
	sel := catalog.NewSelection(loadedCatalog(t))
	assert.Equal(t, catalog.StageEmpty, sel.Stage())

	require.NoError(t, sel.SelectEventType("et-casamento"))
	assert.Equal(t, catalog.StageEventType, sel.Stage())

	require.NoError(t, sel.SelectPackage("pkg-essencial"))
	assert.Equal(t, catalog.StagePackage, sel.Stage())

	require.NoError(t, sel.SetDiscount(decimal.RequireFromString("10")))
	require.NoError(t, sel.SelectPaymentMethod("pm-pix"))
	assert.Equal(t, catalog.StagePriced, sel.Stage())
	assert.True(t, sel.Quote().FinalPrice.Equal(decimal.RequireFromString("900")))
}

// Trocar o tipo de evento zera pacote, forma de pagamento e preço.
func TestSelection_TrocaDeTipoReiniciaCascata(t *testing.T) {
	sel := catalog.NewSelection(loadedCatalog(t))
	require.NoError(t, sel.SelectEventType("et-casamento"))
	require.NoError(t, sel.SelectPackage("pkg-essencial"))
	require.NoError(t, sel.SelectPaymentMethod("pm-pix"))
	require.Equal(t, catalog.StagePriced, sel.Stage())

	require.NoError(t, sel.SelectEventType("et-ensaio"))

	assert.Equal(t, catalog.StageEventType, sel.Stage())
	assert.Empty(t, sel.PackageID())
	assert.Empty(t, sel.PaymentMethodID())
	assert.True(t, sel.Quote().FinalPrice.IsZero(), "preço não pode ficar parcialmente velho")
}

// Trocar o pacote zera forma de pagamento e preço, mantendo o tipo.
func TestSelection_TrocaDePacoteReiniciaPagamento(t *testing.T) {
	sel := catalog.NewSelection(loadedCatalog(t))
	require.NoError(t, sel.SelectEventType("et-casamento"))
	require.NoError(t, sel.SelectPackage("pkg-essencial"))
	require.NoError(t, sel.SelectPaymentMethod("pm-pix"))

	require.NoError(t, sel.SelectPackage("pkg-essencial"))

	assert.Equal(t, "et-casamento", sel.EventTypeID())
	assert.Empty(t, sel.PaymentMethodID())
	assert.True(t, sel.Quote().FinalPrice.IsZero())
}

func TestSelection_PacoteDeOutroTipo(t *testing.T) {
	sel := catalog.NewSelection(loadedCatalog(t))
	require.NoError(t, sel.SelectEventType("et-casamento"))

	err := sel.SelectPackage("pkg-ensaio")
	assert.ErrorIs(t, err, domain.ErrPackageNotInEventType)
	assert.Empty(t, sel.PackageID())
}

// Forma de pagamento sem vínculo: seleção limpa e preço zerado, nunca um
// orçamento para combinação não configurada.
func TestSelection_FormaSemVinculo(t *testing.T) {
	sel := catalog.NewSelection(loadedCatalog(t))
	require.NoError(t, sel.SelectEventType("et-casamento"))
	require.NoError(t, sel.SelectPackage("pkg-essencial"))

	err := sel.SelectPaymentMethod("pm-cartao")
	assert.ErrorIs(t, err, domain.ErrIncompatiblePaymentMethod)
	assert.Empty(t, sel.PaymentMethodID())
	assert.True(t, sel.Quote().FinalPrice.IsZero())
}

func TestSelection_OrdemObrigatoria(t *testing.T) {
	sel := catalog.NewSelection(loadedCatalog(t))

	assert.ErrorIs(t, sel.SelectPackage("pkg-essencial"), domain.ErrInvalidInput)
	assert.ErrorIs(t, sel.SelectPaymentMethod("pm-pix"), domain.ErrInvalidInput)
}

// Ajustar o desconto com o par completo recalcula o preço na hora.
func TestSelection_DescontoRecalcula(t *testing.T) {
	sel := catalog.NewSelection(loadedCatalog(t))
	require.NoError(t, sel.SelectEventType("et-casamento"))
	require.NoError(t, sel.SelectPackage("pkg-essencial"))
	require.NoError(t, sel.SelectPaymentMethod("pm-pix"))
	require.True(t, sel.Quote().FinalPrice.Equal(decimal.RequireFromString("1000")))

	require.NoError(t, sel.SetDiscount(decimal.RequireFromString("25")))
	assert.True(t, sel.Quote().FinalPrice.Equal(decimal.RequireFromString("750")))

	assert.ErrorIs(t, sel.SetDiscount(decimal.RequireFromString("101")), domain.ErrInvalidDiscount)
}
