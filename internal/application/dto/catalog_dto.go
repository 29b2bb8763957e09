package dto

import "github.com/fotogestor/fotogestor-api/internal/domain/entity"

// CatalogResponse catálogo completo do formulário de orçamento. As quatro
// listas são carregadas em paralelo e entregues juntas, nunca um catálogo
// parcialmente inicializado.
type CatalogResponse struct {
	EventTypes     []entity.EventType            `json:"event_types"`
	Packages       []entity.Package              `json:"packages"`
	PaymentMethods []entity.PaymentMethod        `json:"payment_methods"`
	Links          []entity.PackagePaymentMethod `json:"package_payment_methods"`
}
