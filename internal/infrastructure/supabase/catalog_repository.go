package supabase

import (
	"context"
	"fmt"

	"github.com/fotogestor/fotogestor-api/internal/domain/entity"
	"github.com/fotogestor/fotogestor-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo leituras do catálogo (somente registros ativos), usadas pelo
// carregamento do formulário de orçamento.
type CatalogRepo struct {
	c *Client
}

// NewCatalogRepository constrói o adaptador.
func NewCatalogRepository(c *Client) *CatalogRepo {
	return &CatalogRepo{c: c}
}

// ListEventTypes tipos de evento ativos, em ordem alfabética.
func (r *CatalogRepo) ListEventTypes(ctx context.Context) ([]entity.EventType, error) {
	var out []entity.EventType
	err := r.c.From(tableEventTypes).Select("*").IsTrue("is_active").Order("name", true).Get(ctx, &out)
	if err != nil {
		return nil, fmt.Errorf("listar event_types: %w", err)
	}
	return out, nil
}

// ListPackages pacotes ativos.
func (r *CatalogRepo) ListPackages(ctx context.Context) ([]entity.Package, error) {
	var out []entity.Package
	err := r.c.From(tablePackages).Select("*").IsTrue("is_active").Order("name", true).Get(ctx, &out)
	if err != nil {
		return nil, fmt.Errorf("listar packages: %w", err)
	}
	return out, nil
}

// ListPaymentMethods formas de pagamento ativas.
func (r *CatalogRepo) ListPaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error) {
	var out []entity.PaymentMethod
	err := r.c.From(tablePaymentMethods).Select("*").IsTrue("is_active").Order("name", true).Get(ctx, &out)
	if err != nil {
		return nil, fmt.Errorf("listar payment_methods: %w", err)
	}
	return out, nil
}

// ListPackagePaymentMethods vínculos com a forma de pagamento embutida pelo backend.
func (r *CatalogRepo) ListPackagePaymentMethods(ctx context.Context) ([]entity.PackagePaymentMethod, error) {
	var out []entity.PackagePaymentMethod
	err := r.c.From(tablePackagePaymentLinks).Select(selectLinkWithMethod).Get(ctx, &out)
	if err != nil {
		return nil, fmt.Errorf("listar package_payment_methods: %w", err)
	}
	return out, nil
}
