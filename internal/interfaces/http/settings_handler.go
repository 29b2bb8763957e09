package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fotogestor/fotogestor-api/internal/application/dto"
	"github.com/fotogestor/fotogestor-api/internal/application/usecase"
)

// Handlers de administração do catálogo (protegidos). CRUD fino sobre os
// casos de uso; a validação estrutural fica nos casos de uso e no backend.

// EventTypeHandler tipos de evento.
type EventTypeHandler struct {
	uc *usecase.EventTypeUseCase
}

// NewEventTypeHandler constrói o handler.
func NewEventTypeHandler(uc *usecase.EventTypeUseCase) *EventTypeHandler {
	return &EventTypeHandler{uc: uc}
}

func (h *EventTypeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(requestCtx(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

func (h *EventTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.EventTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name é obrigatório"})
	}
	out, err := h.uc.Create(requestCtx(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *EventTypeHandler) Update(c *fiber.Ctx) error {
	var in dto.EventTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.Update(requestCtx(c), c.Params("id"), in); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *EventTypeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(requestCtx(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PackageHandler pacotes.
type PackageHandler struct {
	uc *usecase.PackageUseCase
}

// NewPackageHandler constrói o handler.
func NewPackageHandler(uc *usecase.PackageUseCase) *PackageHandler {
	return &PackageHandler{uc: uc}
}

func (h *PackageHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(requestCtx(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

func (h *PackageHandler) Create(c *fiber.Ctx) error {
	var in dto.PackageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" || in.EventTypeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name e event_type_id são obrigatórios"})
	}
	out, err := h.uc.Create(requestCtx(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *PackageHandler) Update(c *fiber.Ctx) error {
	var in dto.PackageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.Update(requestCtx(c), c.Params("id"), in); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PackageHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(requestCtx(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PaymentMethodHandler formas de pagamento.
type PaymentMethodHandler struct {
	uc *usecase.PaymentMethodUseCase
}

// NewPaymentMethodHandler constrói o handler.
func NewPaymentMethodHandler(uc *usecase.PaymentMethodUseCase) *PaymentMethodHandler {
	return &PaymentMethodHandler{uc: uc}
}

func (h *PaymentMethodHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(requestCtx(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

func (h *PaymentMethodHandler) Create(c *fiber.Ctx) error {
	var in dto.PaymentMethodRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name é obrigatório"})
	}
	out, err := h.uc.Create(requestCtx(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *PaymentMethodHandler) Update(c *fiber.Ctx) error {
	var in dto.PaymentMethodRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.Update(requestCtx(c), c.Params("id"), in); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PaymentMethodHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(requestCtx(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LinkHandler vínculos pacote/forma de pagamento (preço resolvido do par).
type LinkHandler struct {
	uc *usecase.LinkUseCase
}

// NewLinkHandler constrói o handler.
func NewLinkHandler(uc *usecase.LinkUseCase) *LinkHandler {
	return &LinkHandler{uc: uc}
}

func (h *LinkHandler) List(c *fiber.Ctx) error {
	if pkg := c.Query("package_id"); pkg != "" {
		out, err := h.uc.ListByPackage(requestCtx(c), pkg)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.List(requestCtx(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

func (h *LinkHandler) Create(c *fiber.Ctx) error {
	var in dto.PackagePaymentMethodRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.PackageID == "" || in.PaymentMethodID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "package_id e payment_method_id são obrigatórios"})
	}
	out, err := h.uc.Create(requestCtx(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *LinkHandler) Update(c *fiber.Ctx) error {
	var in dto.PackagePaymentMethodRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.Update(requestCtx(c), c.Params("id"), in); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *LinkHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(requestCtx(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// TemplateHandler modelos de contrato.
type TemplateHandler struct {
	uc *usecase.TemplateUseCase
}

// NewTemplateHandler constrói o handler.
func NewTemplateHandler(uc *usecase.TemplateUseCase) *TemplateHandler {
	return &TemplateHandler{uc: uc}
}

func (h *TemplateHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(requestCtx(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

func (h *TemplateHandler) Create(c *fiber.Ctx) error {
	var in dto.TemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" || in.EventTypeID == "" || in.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, event_type_id e content são obrigatórios"})
	}
	out, err := h.uc.Create(requestCtx(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *TemplateHandler) Update(c *fiber.Ctx) error {
	var in dto.TemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.Update(requestCtx(c), c.Params("id"), in); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *TemplateHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(requestCtx(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
