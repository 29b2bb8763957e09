package supabase

import (
	"context"
	"fmt"

	"github.com/fotogestor/fotogestor-api/internal/domain/entity"
	"github.com/fotogestor/fotogestor-api/internal/domain/repository"
)

var (
	_ repository.EventTypeRepository            = (*EventTypeRepo)(nil)
	_ repository.PackageRepository              = (*PackageRepo)(nil)
	_ repository.PaymentMethodRepository        = (*PaymentMethodRepo)(nil)
	_ repository.PackagePaymentMethodRepository = (*PackagePaymentMethodRepo)(nil)
)

// EventTypeRepo administração dos tipos de evento (inclui inativos).
type EventTypeRepo struct{ c *Client }

// NewEventTypeRepository constrói o adaptador.
func NewEventTypeRepository(c *Client) *EventTypeRepo { return &EventTypeRepo{c: c} }

func (r *EventTypeRepo) List(ctx context.Context) ([]entity.EventType, error) {
	var out []entity.EventType
	if err := r.c.From(tableEventTypes).Select("*").Order("name", true).Get(ctx, &out); err != nil {
		return nil, fmt.Errorf("listar event_types: %w", err)
	}
	return out, nil
}

func (r *EventTypeRepo) Create(ctx context.Context, e *entity.EventType) (*entity.EventType, error) {
	var rows []entity.EventType
	if err := r.c.From(tableEventTypes).Insert(ctx, e, &rows); err != nil {
		return nil, fmt.Errorf("inserir event_type: %w", err)
	}
	return firstRow(rows, e)
}

func (r *EventTypeRepo) Update(ctx context.Context, e *entity.EventType) error {
	if err := r.c.From(tableEventTypes).Eq("id", e.ID).Update(ctx, e, nil); err != nil {
		return fmt.Errorf("atualizar event_type: %w", err)
	}
	return nil
}

func (r *EventTypeRepo) Delete(ctx context.Context, id string) error {
	if err := r.c.From(tableEventTypes).Eq("id", id).Delete(ctx); err != nil {
		return fmt.Errorf("excluir event_type: %w", err)
	}
	return nil
}

// PackageRepo administração dos pacotes.
type PackageRepo struct{ c *Client }

// NewPackageRepository constrói o adaptador.
func NewPackageRepository(c *Client) *PackageRepo { return &PackageRepo{c: c} }

func (r *PackageRepo) List(ctx context.Context) ([]entity.Package, error) {
	var out []entity.Package
	if err := r.c.From(tablePackages).Select("*").Order("name", true).Get(ctx, &out); err != nil {
		return nil, fmt.Errorf("listar packages: %w", err)
	}
	return out, nil
}

func (r *PackageRepo) Create(ctx context.Context, p *entity.Package) (*entity.Package, error) {
	var rows []entity.Package
	if err := r.c.From(tablePackages).Insert(ctx, p, &rows); err != nil {
		return nil, fmt.Errorf("inserir package: %w", err)
	}
	return firstRow(rows, p)
}

func (r *PackageRepo) Update(ctx context.Context, p *entity.Package) error {
	if err := r.c.From(tablePackages).Eq("id", p.ID).Update(ctx, p, nil); err != nil {
		return fmt.Errorf("atualizar package: %w", err)
	}
	return nil
}

func (r *PackageRepo) Delete(ctx context.Context, id string) error {
	if err := r.c.From(tablePackages).Eq("id", id).Delete(ctx); err != nil {
		return fmt.Errorf("excluir package: %w", err)
	}
	return nil
}

// PaymentMethodRepo administração das formas de pagamento.
type PaymentMethodRepo struct{ c *Client }

// NewPaymentMethodRepository constrói o adaptador.
func NewPaymentMethodRepository(c *Client) *PaymentMethodRepo { return &PaymentMethodRepo{c: c} }

func (r *PaymentMethodRepo) List(ctx context.Context) ([]entity.PaymentMethod, error) {
	var out []entity.PaymentMethod
	if err := r.c.From(tablePaymentMethods).Select("*").Order("name", true).Get(ctx, &out); err != nil {
		return nil, fmt.Errorf("listar payment_methods: %w", err)
	}
	return out, nil
}

func (r *PaymentMethodRepo) Create(ctx context.Context, m *entity.PaymentMethod) (*entity.PaymentMethod, error) {
	var rows []entity.PaymentMethod
	if err := r.c.From(tablePaymentMethods).Insert(ctx, m, &rows); err != nil {
		return nil, fmt.Errorf("inserir payment_method: %w", err)
	}
	return firstRow(rows, m)
}

func (r *PaymentMethodRepo) Update(ctx context.Context, m *entity.PaymentMethod) error {
	if err := r.c.From(tablePaymentMethods).Eq("id", m.ID).Update(ctx, m, nil); err != nil {
		return fmt.Errorf("atualizar payment_method: %w", err)
	}
	return nil
}

func (r *PaymentMethodRepo) Delete(ctx context.Context, id string) error {
	if err := r.c.From(tablePaymentMethods).Eq("id", id).Delete(ctx); err != nil {
		return fmt.Errorf("excluir payment_method: %w", err)
	}
	return nil
}

// PackagePaymentMethodRepo administração dos vínculos pacote/forma de pagamento.
type PackagePaymentMethodRepo struct{ c *Client }

// NewPackagePaymentMethodRepository constrói o adaptador.
func NewPackagePaymentMethodRepository(c *Client) *PackagePaymentMethodRepo {
	return &PackagePaymentMethodRepo{c: c}
}

func (r *PackagePaymentMethodRepo) List(ctx context.Context) ([]entity.PackagePaymentMethod, error) {
	var out []entity.PackagePaymentMethod
	if err := r.c.From(tablePackagePaymentLinks).Select(selectLinkWithMethod).Get(ctx, &out); err != nil {
		return nil, fmt.Errorf("listar package_payment_methods: %w", err)
	}
	return out, nil
}

func (r *PackagePaymentMethodRepo) ListByPackage(ctx context.Context, packageID string) ([]entity.PackagePaymentMethod, error) {
	var out []entity.PackagePaymentMethod
	err := r.c.From(tablePackagePaymentLinks).Select(selectLinkWithMethod).Eq("package_id", packageID).Get(ctx, &out)
	if err != nil {
		return nil, fmt.Errorf("listar vínculos do pacote: %w", err)
	}
	return out, nil
}

func (r *PackagePaymentMethodRepo) Create(ctx context.Context, l *entity.PackagePaymentMethod) (*entity.PackagePaymentMethod, error) {
	// O campo embutido PaymentMethod não existe na tabela; inserir só as colunas.
	row := map[string]any{
		"id":                l.ID,
		"package_id":        l.PackageID,
		"payment_method_id": l.PaymentMethodID,
		"final_price":       l.FinalPrice,
	}
	var rows []entity.PackagePaymentMethod
	if err := r.c.From(tablePackagePaymentLinks).Insert(ctx, row, &rows); err != nil {
		return nil, fmt.Errorf("inserir vínculo: %w", err)
	}
	return firstRow(rows, l)
}

func (r *PackagePaymentMethodRepo) Update(ctx context.Context, l *entity.PackagePaymentMethod) error {
	row := map[string]any{"final_price": l.FinalPrice}
	if err := r.c.From(tablePackagePaymentLinks).Eq("id", l.ID).Update(ctx, row, nil); err != nil {
		return fmt.Errorf("atualizar vínculo: %w", err)
	}
	return nil
}

func (r *PackagePaymentMethodRepo) Delete(ctx context.Context, id string) error {
	if err := r.c.From(tablePackagePaymentLinks).Eq("id", id).Delete(ctx); err != nil {
		return fmt.Errorf("excluir vínculo: %w", err)
	}
	return nil
}

// firstRow devolve a primeira linha da resposta de um insert; se o backend
// não devolveu representação, cai no valor enviado.
func firstRow[T any](rows []T, sent *T) (*T, error) {
	if len(rows) > 0 {
		return &rows[0], nil
	}
	return sent, nil
}
