package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fotogestor/fotogestor-api/internal/domain"
	"github.com/fotogestor/fotogestor-api/internal/domain/entity"
	"github.com/fotogestor/fotogestor-api/internal/domain/pricing"
)

func pkgLink(base string) (*entity.Package, *entity.PackagePaymentMethod) {
	pkg := &entity.Package{ID: "pkg-1", EventTypeID: "et-1", Name: "Essencial", Price: decimal.RequireFromString("1200")}
	link := &entity.PackagePaymentMethod{ID: "lk-1", PackageID: "pkg-1", PaymentMethodID: "pm-1", FinalPrice: decimal.RequireFromString(base)}
	return pkg, link
}

// Lei de preço: final = base * (1 - desconto/100), base = preço do vínculo.
func TestCalculate_DescontoSobreBaseDoVinculo(t *testing.T) {
	pkg, link := pkgLink("1000")

	q, err := pricing.Calculate(pkg, link, decimal.RequireFromString("10"))
	require.NoError(t, err)

	assert.True(t, q.BasePrice.Equal(decimal.RequireFromString("1000")))
	assert.True(t, q.DiscountAmount.Equal(decimal.RequireFromString("100")))
	assert.True(t, q.FinalPrice.Equal(decimal.RequireFromString("900")))
	assert.True(t, q.AdjustedPrice.Equal(q.FinalPrice), "adjusted_price acompanha final_price")
	assert.True(t, q.PackagePrice.Equal(pkg.Price), "package_price é informativo, vem do pacote")
}

// Desconto 0 preserva a base; desconto 100 zera o final.
func TestCalculate_LimitesDeDesconto(t *testing.T) {
	pkg, link := pkgLink("850.50")

	q, err := pricing.Calculate(pkg, link, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, q.FinalPrice.Equal(decimal.RequireFromString("850.50")))

	q, err = pricing.Calculate(pkg, link, decimal.RequireFromString("100"))
	require.NoError(t, err)
	assert.True(t, q.FinalPrice.IsZero())
}

func TestCalculate_DescontoForaDoIntervalo(t *testing.T) {
	pkg, link := pkgLink("1000")

	_, err := pricing.Calculate(pkg, link, decimal.RequireFromString("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidDiscount)

	_, err = pricing.Calculate(pkg, link, decimal.RequireFromString("100.01"))
	assert.ErrorIs(t, err, domain.ErrInvalidDiscount)
}

// Par (pacote, forma) sem vínculo: orçamento zerado e erro de incompatibilidade.
func TestCalculate_ParSemVinculo(t *testing.T) {
	pkg, _ := pkgLink("1000")

	q, err := pricing.Calculate(pkg, nil, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrIncompatiblePaymentMethod)
	assert.True(t, q.FinalPrice.IsZero())
	assert.True(t, q.BasePrice.IsZero())

	// Vínculo de outro pacote também não serve.
	foreign := &entity.PackagePaymentMethod{ID: "lk-2", PackageID: "pkg-99", PaymentMethodID: "pm-1", FinalPrice: decimal.RequireFromString("500")}
	q, err = pricing.Calculate(pkg, foreign, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrIncompatiblePaymentMethod)
	assert.True(t, q.FinalPrice.IsZero())
}

// O percentual de desconto da forma de pagamento não participa do cálculo:
// o preço do vínculo já é o preço resolvido do par.
func TestCalculate_DescontoDaFormaNaoEntra(t *testing.T) {
	pkg, link := pkgLink("1000")
	link.PaymentMethod = &entity.PaymentMethod{
		ID:                 "pm-1",
		Name:               "PIX",
		DiscountPercentage: decimal.RequireFromString("50"),
	}

	q, err := pricing.Calculate(pkg, link, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, q.FinalPrice.Equal(decimal.RequireFromString("1000")))
}

func TestCalculate_PacoteNulo(t *testing.T) {
	_, err := pricing.Calculate(nil, nil, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
