package repository

import (
	"context"

	"github.com/fotogestor/fotogestor-api/internal/domain/entity"
)

// EventTypeRepository administração dos tipos de evento.
type EventTypeRepository interface {
	List(ctx context.Context) ([]entity.EventType, error)
	Create(ctx context.Context, e *entity.EventType) (*entity.EventType, error)
	Update(ctx context.Context, e *entity.EventType) error
	Delete(ctx context.Context, id string) error
}

// PackageRepository administração dos pacotes.
type PackageRepository interface {
	List(ctx context.Context) ([]entity.Package, error)
	Create(ctx context.Context, p *entity.Package) (*entity.Package, error)
	Update(ctx context.Context, p *entity.Package) error
	Delete(ctx context.Context, id string) error
}

// PaymentMethodRepository administração das formas de pagamento.
type PaymentMethodRepository interface {
	List(ctx context.Context) ([]entity.PaymentMethod, error)
	Create(ctx context.Context, m *entity.PaymentMethod) (*entity.PaymentMethod, error)
	Update(ctx context.Context, m *entity.PaymentMethod) error
	Delete(ctx context.Context, id string) error
}

// PackagePaymentMethodRepository administração dos vínculos pacote/forma de
// pagamento com preço resolvido.
type PackagePaymentMethodRepository interface {
	List(ctx context.Context) ([]entity.PackagePaymentMethod, error)
	ListByPackage(ctx context.Context, packageID string) ([]entity.PackagePaymentMethod, error)
	Create(ctx context.Context, l *entity.PackagePaymentMethod) (*entity.PackagePaymentMethod, error)
	Update(ctx context.Context, l *entity.PackagePaymentMethod) error
	Delete(ctx context.Context, id string) error
}
