package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fotogestor/fotogestor-api/internal/application/catalog"
	"github.com/fotogestor/fotogestor-api/internal/application/dto"
)

// CatalogHandler catálogo do formulário de orçamento e cálculo de preço.
type CatalogHandler struct {
	loader *catalog.Loader
}

// NewCatalogHandler constrói o handler.
func NewCatalogHandler(loader *catalog.Loader) *CatalogHandler {
	return &CatalogHandler{loader: loader}
}

// Get godoc
// @Summary      Catálogo completo do formulário
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CatalogResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/catalog [get]
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	cat, err := h.loader.Load(requestCtx(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.CatalogResponse{
		EventTypes:     cat.EventTypes,
		Packages:       cat.Packages,
		PaymentMethods: cat.PaymentMethods,
		Links:          cat.Links,
	})
}

// Quote godoc
// @Summary      Calcular orçamento de um par pacote/forma de pagamento
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuoteRequest  true  "seleção"
// @Success      200   {object}  pricing.Quote
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/quotes [post]
func (h *CatalogHandler) Quote(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.EventTypeID == "" || in.PackageID == "" || in.PaymentMethodID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "event_type_id, package_id e payment_method_id são obrigatórios"})
	}

	cat, err := h.loader.Load(requestCtx(c))
	if err != nil {
		return fail(c, err)
	}

	sel := catalog.NewSelection(cat)
	if err := sel.SelectEventType(in.EventTypeID); err != nil {
		return fail(c, err)
	}
	if err := sel.SelectPackage(in.PackageID); err != nil {
		return fail(c, err)
	}
	if err := sel.SetDiscount(in.DiscountPercentage); err != nil {
		return fail(c, err)
	}
	if err := sel.SelectPaymentMethod(in.PaymentMethodID); err != nil {
		return fail(c, err)
	}

	return c.JSON(sel.Quote())
}
