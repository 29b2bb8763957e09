package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod forma de pagamento genérica (à vista, parcelado...), não específica de pacote.
//
// DiscountPercentage existe na tabela mas NÃO participa do cálculo de preço:
// o preço autoritativo de um par (pacote, forma de pagamento) é sempre o
// final_price do vínculo PackagePaymentMethod. Comportamento preservado do
// sistema original.
type PaymentMethod struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	Installments       int             `json:"installments"`
	PaymentSchedule    []string        `json:"payment_schedule"`
	IsActive           bool            `json:"is_active"`
	CreatedAt          time.Time       `json:"created_at,omitempty"`
}

// PackagePaymentMethod vínculo (pacote, forma de pagamento) com o preço resolvido.
// Invariante: FinalPrice é o preço autoritativo do par; sobrepõe qualquer
// desconto declarado na forma de pagamento.
type PackagePaymentMethod struct {
	ID              string          `json:"id"`
	PackageID       string          `json:"package_id"`
	PaymentMethodID string          `json:"payment_method_id"`
	FinalPrice      decimal.Decimal `json:"final_price"`

	// PaymentMethod embed do join feito pelo backend (package_payment_methods?select=*,payment_methods(*)).
	PaymentMethod *PaymentMethod `json:"payment_methods,omitempty"`
}
