package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fotogestor/fotogestor-api/internal/application/auth"
	"github.com/fotogestor/fotogestor-api/internal/application/contracts"
	"github.com/fotogestor/fotogestor-api/internal/application/dto"
)

// ContractHandler ciclo de vida dos contratos.
type ContractHandler struct {
	uc     *contracts.UseCase
	authUC *auth.UseCase
}

// NewContractHandler constrói o handler.
func NewContractHandler(uc *contracts.UseCase, authUC *auth.UseCase) *ContractHandler {
	return &ContractHandler{uc: uc, authUC: authUC}
}

// photographerID resolve o perfil do fotógrafo do usuário autenticado.
func (h *ContractHandler) photographerID(c *fiber.Ctx) (string, error) {
	p, err := h.authUC.Photographer(requestCtx(c), &auth.User{ID: GetUserID(c), Email: GetUserEmail(c)})
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

// Create godoc
// @Summary      Criar contrato
// @Tags         contratos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContractRequest  true  "formulário do contrato"
// @Success      201   {object}  entity.Contract
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/contratos [post]
func (h *ContractHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContractRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}

	pid, err := h.photographerID(c)
	if err != nil {
		return fail(c, err)
	}

	created, fields, err := h.uc.Create(requestCtx(c), pid, &in)
	if err != nil {
		return fail(c, err)
	}
	if len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Code:    "VALIDATION",
			Message: "formulário com campos inválidos",
			Fields:  fields,
		})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// List godoc
// @Summary      Listar contratos do fotógrafo
// @Tags         contratos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Contract
// @Router       /api/contratos [get]
func (h *ContractHandler) List(c *fiber.Ctx) error {
	pid, err := h.photographerID(c)
	if err != nil {
		return fail(c, err)
	}
	out, err := h.uc.List(requestCtx(c), pid)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter contrato
// @Tags         contratos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do contrato"
// @Success      200  {object}  entity.Contract
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contratos/{id} [get]
func (h *ContractHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.Get(requestCtx(c), id)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contrato não encontrado"})
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Trocar status do contrato
// @Tags         contratos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                           true  "ID do contrato"
// @Param        body  body  dto.UpdateContractStatusRequest  true  "novo status"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contratos/{id}/status [patch]
func (h *ContractHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateContractStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.UpdateStatus(requestCtx(c), c.Params("id"), in.Status); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Excluir contrato
// @Tags         contratos
// @Security     Bearer
// @Param        id  path  string  true  "ID do contrato"
// @Success      204
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/contratos/{id} [delete]
func (h *ContractHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(requestCtx(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Documento godoc
// @Summary      Documento textual do contrato
// @Tags         contratos
// @Security     Bearer
// @Produce      plain
// @Param        id   path  string  true  "ID do contrato"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contratos/{id}/documento [get]
func (h *ContractHandler) Documento(c *fiber.Ctx) error {
	text, err := h.uc.Render(requestCtx(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(text)
}
