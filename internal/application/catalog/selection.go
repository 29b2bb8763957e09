package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/fotogestor/fotogestor-api/internal/domain"
	"github.com/fotogestor/fotogestor-api/internal/domain/entity"
	"github.com/fotogestor/fotogestor-api/internal/domain/pricing"
)

// Stage estágio do pipeline de seleção do orçamento.
type Stage int

const (
	StageEmpty     Stage = iota // nada selecionado
	StageEventType              // tipo de evento escolhido, sem pacote
	StagePackage                // pacote escolhido, sem forma de pagamento
	StagePriced                 // par completo, preço calculado
)

// Selection máquina de estados explícita do pipeline
// tipo de evento → pacote → forma de pagamento → preço.
//
// Qualquer transição a montante recalcula deterministicamente o estado a
// jusante: o que depende da escolha alterada volta a "não selecionado",
// nunca fica parcialmente velho. Substitui a cascata de resets espalhada
// por handlers de input do sistema original.
type Selection struct {
	cat *Catalog

	eventTypeID     string
	packageID       string
	paymentMethodID string
	discount        decimal.Decimal
	quote           *pricing.Quote
}

// NewSelection cria a seleção vazia sobre um catálogo carregado.
func NewSelection(cat *Catalog) *Selection {
	return &Selection{cat: cat, discount: decimal.Zero, quote: pricing.Zero()}
}

// Stage devolve o estágio atual.
func (s *Selection) Stage() Stage {
	switch {
	case s.eventTypeID == "":
		return StageEmpty
	case s.packageID == "":
		return StageEventType
	case s.paymentMethodID == "":
		return StagePackage
	default:
		return StagePriced
	}
}

// EventTypeID tipo de evento selecionado ("" se nenhum).
func (s *Selection) EventTypeID() string { return s.eventTypeID }

// PackageID pacote selecionado ("" se nenhum).
func (s *Selection) PackageID() string { return s.packageID }

// PaymentMethodID forma de pagamento selecionada ("" se nenhuma).
func (s *Selection) PaymentMethodID() string { return s.paymentMethodID }

// Discount percentual de desconto vigente.
func (s *Selection) Discount() decimal.Decimal { return s.discount }

// Quote orçamento vigente; zerado enquanto o par não está completo.
func (s *Selection) Quote() *pricing.Quote { return s.quote }

// Packages pacotes oferecíveis no estado atual.
func (s *Selection) Packages() []entity.Package {
	if s.eventTypeID == "" {
		return nil
	}
	return s.cat.PackagesFor(s.eventTypeID)
}

// PaymentMethods formas de pagamento oferecíveis no estado atual.
func (s *Selection) PaymentMethods() []entity.PaymentMethod {
	if s.packageID == "" {
		return nil
	}
	return s.cat.PaymentMethodsFor(s.packageID)
}

// SelectEventType escolhe o tipo de evento e zera pacote, forma de pagamento
// e preço.
func (s *Selection) SelectEventType(id string) error {
	if s.cat.EventType(id) == nil {
		return domain.ErrNotFound
	}
	s.eventTypeID = id
	s.resetPackage()
	return nil
}

// SelectPackage escolhe o pacote; exige tipo de evento selecionado e que o
// pacote pertença a ele. Zera forma de pagamento e preço.
func (s *Selection) SelectPackage(id string) error {
	if s.eventTypeID == "" {
		return domain.ErrInvalidInput
	}
	pkg := s.cat.Package(id)
	if pkg == nil {
		return domain.ErrNotFound
	}
	if pkg.EventTypeID != s.eventTypeID {
		return domain.ErrPackageNotInEventType
	}
	s.packageID = id
	s.resetPaymentMethod()
	return nil
}

// SelectPaymentMethod escolhe a forma de pagamento e calcula o preço. Se o
// par (pacote, forma) não tem vínculo configurado, a seleção da forma é
// limpa e todos os campos de preço voltam a zero.
func (s *Selection) SelectPaymentMethod(id string) error {
	if s.packageID == "" {
		return domain.ErrInvalidInput
	}
	pkg := s.cat.Package(s.packageID)
	link := s.cat.LinkFor(s.packageID, id)
	q, err := pricing.Calculate(pkg, link, s.discount)
	if err != nil {
		s.resetPaymentMethod()
		return err
	}
	s.paymentMethodID = id
	s.quote = q
	return nil
}

// SetDiscount ajusta o percentual de desconto e, se o par já está completo,
// recalcula o preço.
func (s *Selection) SetDiscount(d decimal.Decimal) error {
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(100)) {
		return domain.ErrInvalidDiscount
	}
	s.discount = d
	if s.paymentMethodID == "" {
		return nil
	}
	pkg := s.cat.Package(s.packageID)
	link := s.cat.LinkFor(s.packageID, s.paymentMethodID)
	q, err := pricing.Calculate(pkg, link, s.discount)
	if err != nil {
		s.resetPaymentMethod()
		return err
	}
	s.quote = q
	return nil
}

func (s *Selection) resetPackage() {
	s.packageID = ""
	s.resetPaymentMethod()
}

func (s *Selection) resetPaymentMethod() {
	s.paymentMethodID = ""
	s.quote = pricing.Zero()
}
