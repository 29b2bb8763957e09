package repository

import (
	"context"

	"github.com/fotogestor/fotogestor-api/internal/domain/entity"
)

// CatalogRepository consultas read-only do catálogo (somente registros ativos).
// Todas as chamadas atravessam a rede até o backend hospedado; por isso todas
// recebem context.
type CatalogRepository interface {
	ListEventTypes(ctx context.Context) ([]entity.EventType, error)
	ListPackages(ctx context.Context) ([]entity.Package, error)
	ListPaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error)
	// ListPackagePaymentMethods devolve os vínculos com a forma de pagamento
	// embutida (join feito pelo backend).
	ListPackagePaymentMethods(ctx context.Context) ([]entity.PackagePaymentMethod, error)
}
