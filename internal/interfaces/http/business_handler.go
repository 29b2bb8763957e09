package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fotogestor/fotogestor-api/internal/application/auth"
	"github.com/fotogestor/fotogestor-api/internal/application/dto"
	"github.com/fotogestor/fotogestor-api/internal/application/usecase"
)

// BusinessHandler dados do negócio do fotógrafo.
type BusinessHandler struct {
	uc     *usecase.BusinessInfoUseCase
	authUC *auth.UseCase
}

// NewBusinessHandler constrói o handler.
func NewBusinessHandler(uc *usecase.BusinessInfoUseCase, authUC *auth.UseCase) *BusinessHandler {
	return &BusinessHandler{uc: uc, authUC: authUC}
}

func (h *BusinessHandler) photographerID(c *fiber.Ctx) (string, error) {
	p, err := h.authUC.Photographer(requestCtx(c), &auth.User{ID: GetUserID(c), Email: GetUserEmail(c)})
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

// Get godoc
// @Summary      Dados do negócio
// @Tags         business-info
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  entity.BusinessInfo
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/business-info [get]
func (h *BusinessHandler) Get(c *fiber.Ctx) error {
	pid, err := h.photographerID(c)
	if err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Get(requestCtx(c), pid)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "dados do negócio ainda não preenchidos"})
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Salvar dados do negócio
// @Tags         business-info
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BusinessInfoRequest  true  "dados do negócio"
// @Success      200   {object}  entity.BusinessInfo
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/business-info [put]
func (h *BusinessHandler) Save(c *fiber.Ctx) error {
	var in dto.BusinessInfoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.BusinessName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "business_name é obrigatório"})
	}
	pid, err := h.photographerID(c)
	if err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Save(requestCtx(c), pid, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
