package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Package oferta fechada de serviço fotográfico, vinculada a exatamente um tipo de evento.
// Price é o preço base informativo; o preço efetivo de um orçamento sai sempre
// do vínculo PackagePaymentMethod.
type Package struct {
	ID          string          `json:"id"`
	EventTypeID string          `json:"event_type_id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Features    []string        `json:"features"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at,omitempty"`
}
