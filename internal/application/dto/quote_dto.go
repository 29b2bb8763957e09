package dto

import "github.com/shopspring/decimal"

// QuoteRequest pedido de cálculo de orçamento para um par
// (pacote, forma de pagamento) com desconto opcional.
type QuoteRequest struct {
	EventTypeID        string          `json:"event_type_id" validate:"required"`
	PackageID          string          `json:"package_id" validate:"required"`
	PaymentMethodID    string          `json:"payment_method_id" validate:"required"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
}
