// Package catalog carrega o catálogo do formulário de orçamento e mantém o
// estado da seleção (tipo de evento → pacote → forma de pagamento → preço).
package catalog

import (
	"context"
	"fmt"

	"github.com/fotogestor/fotogestor-api/internal/domain/entity"
	"github.com/fotogestor/fotogestor-api/internal/domain/repository"
)

// Catalog catálogo consistente e completo: as quatro listas vêm do mesmo
// carregamento. Nunca é exposto parcialmente preenchido.
type Catalog struct {
	EventTypes     []entity.EventType
	Packages       []entity.Package
	PaymentMethods []entity.PaymentMethod
	Links          []entity.PackagePaymentMethod
}

// EventType busca um tipo de evento pelo ID; nil se não estiver no catálogo.
func (c *Catalog) EventType(id string) *entity.EventType {
	for i := range c.EventTypes {
		if c.EventTypes[i].ID == id {
			return &c.EventTypes[i]
		}
	}
	return nil
}

// Package busca um pacote pelo ID; nil se não estiver no catálogo.
func (c *Catalog) Package(id string) *entity.Package {
	for i := range c.Packages {
		if c.Packages[i].ID == id {
			return &c.Packages[i]
		}
	}
	return nil
}

// PackagesFor pacotes do tipo de evento dado. Pacotes de outros tipos nunca
// aparecem; o filtro antecede a exibição.
func (c *Catalog) PackagesFor(eventTypeID string) []entity.Package {
	out := make([]entity.Package, 0)
	for _, p := range c.Packages {
		if p.EventTypeID == eventTypeID {
			out = append(out, p)
		}
	}
	return out
}

// PaymentMethodsFor formas de pagamento que têm vínculo configurado com o
// pacote dado. Uma forma sem vínculo não é oferecida.
func (c *Catalog) PaymentMethodsFor(packageID string) []entity.PaymentMethod {
	out := make([]entity.PaymentMethod, 0)
	for _, l := range c.Links {
		if l.PackageID != packageID {
			continue
		}
		if l.PaymentMethod != nil {
			out = append(out, *l.PaymentMethod)
			continue
		}
		// Vínculo sem embed (carga antiga): resolver pela lista de formas.
		for _, m := range c.PaymentMethods {
			if m.ID == l.PaymentMethodID {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// LinkFor devolve o vínculo do par (pacote, forma de pagamento); nil quando o
// par não foi configurado.
func (c *Catalog) LinkFor(packageID, paymentMethodID string) *entity.PackagePaymentMethod {
	for i := range c.Links {
		if c.Links[i].PackageID == packageID && c.Links[i].PaymentMethodID == paymentMethodID {
			return &c.Links[i]
		}
	}
	return nil
}

// Loader carrega o catálogo com quatro buscas paralelas ao backend.
type Loader struct {
	repo repository.CatalogRepository
}

// NewLoader constrói o carregador.
func NewLoader(repo repository.CatalogRepository) *Loader {
	return &Loader{repo: repo}
}

// Load dispara as quatro consultas em paralelo e junta os resultados.
// Qualquer falha aborta o carregamento inteiro: o formulário jamais recebe um
// catálogo inconsistente (ex.: pacotes sem os tipos de evento correspondentes).
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	type eventTypesResult struct {
		rows []entity.EventType
		err  error
	}
	type packagesResult struct {
		rows []entity.Package
		err  error
	}
	type methodsResult struct {
		rows []entity.PaymentMethod
		err  error
	}
	type linksResult struct {
		rows []entity.PackagePaymentMethod
		err  error
	}

	etCh := make(chan eventTypesResult, 1)
	pkgCh := make(chan packagesResult, 1)
	pmCh := make(chan methodsResult, 1)
	lkCh := make(chan linksResult, 1)

	go func() {
		rows, err := l.repo.ListEventTypes(ctx)
		etCh <- eventTypesResult{rows, err}
	}()
	go func() {
		rows, err := l.repo.ListPackages(ctx)
		pkgCh <- packagesResult{rows, err}
	}()
	go func() {
		rows, err := l.repo.ListPaymentMethods(ctx)
		pmCh <- methodsResult{rows, err}
	}()
	go func() {
		rows, err := l.repo.ListPackagePaymentMethods(ctx)
		lkCh <- linksResult{rows, err}
	}()

	et := <-etCh
	pkg := <-pkgCh
	pm := <-pmCh
	lk := <-lkCh

	if et.err != nil {
		return nil, fmt.Errorf("catálogo: tipos de evento: %w", et.err)
	}
	if pkg.err != nil {
		return nil, fmt.Errorf("catálogo: pacotes: %w", pkg.err)
	}
	if pm.err != nil {
		return nil, fmt.Errorf("catálogo: formas de pagamento: %w", pm.err)
	}
	if lk.err != nil {
		return nil, fmt.Errorf("catálogo: vínculos: %w", lk.err)
	}

	return &Catalog{
		EventTypes:     et.rows,
		Packages:       pkg.rows,
		PaymentMethods: pm.rows,
		Links:          lk.rows,
	}, nil
}
