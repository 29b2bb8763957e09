package dto

import "github.com/shopspring/decimal"

// EventTypeRequest criação/edição de tipo de evento.
type EventTypeRequest struct {
	Name     string `json:"name" validate:"required"`
	IsActive *bool  `json:"is_active"`
}

// PackageRequest criação/edição de pacote.
type PackageRequest struct {
	EventTypeID string          `json:"event_type_id" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Features    []string        `json:"features"`
	IsActive    *bool           `json:"is_active"`
}

// PaymentMethodRequest criação/edição de forma de pagamento.
type PaymentMethodRequest struct {
	Name               string          `json:"name" validate:"required"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	Installments       int             `json:"installments" validate:"min=0"`
	PaymentSchedule    []string        `json:"payment_schedule"`
	IsActive           *bool           `json:"is_active"`
}

// PackagePaymentMethodRequest criação/edição de vínculo com preço resolvido.
type PackagePaymentMethodRequest struct {
	PackageID       string          `json:"package_id" validate:"required"`
	PaymentMethodID string          `json:"payment_method_id" validate:"required"`
	FinalPrice      decimal.Decimal `json:"final_price"`
}

// TemplateRequest criação/edição de modelo de contrato.
type TemplateRequest struct {
	EventTypeID string `json:"event_type_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Content     string `json:"content" validate:"required"`
	IsActive    *bool  `json:"is_active"`
}

// BusinessInfoRequest edição dos dados do negócio.
type BusinessInfoRequest struct {
	BusinessName string `json:"business_name" validate:"required"`
	Documento    string `json:"documento"`
	Endereco     string `json:"endereco"`
	Cidade       string `json:"cidade"`
	Telefone     string `json:"telefone"`
	Email        string `json:"email" validate:"omitempty,email"`
}
