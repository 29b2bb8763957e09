// Package pricing calcula o preço de um orçamento a partir do pacote, do
// vínculo pacote/forma de pagamento e do percentual de desconto.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/fotogestor/fotogestor-api/internal/domain"
	"github.com/fotogestor/fotogestor-api/internal/domain/entity"
)

var oneHundred = decimal.NewFromInt(100)

// Quote resultado do cálculo de preço.
//
// PackagePrice é informativo (preço base do pacote, independente do caminho
// de desconto). FinalPrice e AdjustedPrice carregam o mesmo valor derivado.
type Quote struct {
	PackagePrice       decimal.Decimal `json:"package_price"`
	BasePrice          decimal.Decimal `json:"base_price"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	FinalPrice         decimal.Decimal `json:"final_price"`
	AdjustedPrice      decimal.Decimal `json:"adjusted_price"`
}

// Zero orçamento com todos os campos de preço zerados. É o estado exigido
// quando o par (pacote, forma de pagamento) não está configurado.
func Zero() *Quote {
	z := decimal.Zero
	return &Quote{PackagePrice: z, BasePrice: z, DiscountPercentage: z, DiscountAmount: z, FinalPrice: z, AdjustedPrice: z}
}

// Calculate computa o orçamento para o par (pacote, vínculo) com o desconto dado.
//
//	base     = link.FinalPrice
//	desconto = base * discountPct / 100
//	final    = base - desconto
//
// O DiscountPercentage da forma de pagamento nunca entra no cálculo: o
// final_price do vínculo já é o preço resolvido do par.
//
// Se link é nil ou não pertence ao pacote, devolve Zero() e
// domain.ErrIncompatiblePaymentMethod: um orçamento jamais pode ser exibido
// para uma combinação não configurada. Desconto fora de [0,100] devolve
// domain.ErrInvalidDiscount.
func Calculate(pkg *entity.Package, link *entity.PackagePaymentMethod, discountPct decimal.Decimal) (*Quote, error) {
	if pkg == nil {
		return Zero(), domain.ErrInvalidInput
	}
	if discountPct.IsNegative() || discountPct.GreaterThan(oneHundred) {
		return Zero(), domain.ErrInvalidDiscount
	}
	if link == nil || link.PackageID != pkg.ID {
		return Zero(), domain.ErrIncompatiblePaymentMethod
	}

	base := link.FinalPrice
	discountAmount := base.Mul(discountPct).Div(oneHundred)
	final := base.Sub(discountAmount)

	return &Quote{
		PackagePrice:       pkg.Price,
		BasePrice:          base,
		DiscountPercentage: discountPct,
		DiscountAmount:     discountAmount,
		FinalPrice:         final,
		AdjustedPrice:      final,
	}, nil
}
