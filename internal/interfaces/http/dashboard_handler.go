package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fotogestor/fotogestor-api/internal/application/analytics"
	"github.com/fotogestor/fotogestor-api/internal/application/auth"
)

// DashboardHandler resumo dos contratos e da receita.
type DashboardHandler struct {
	uc     *analytics.DashboardUseCase
	authUC *auth.UseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, authUC *auth.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, authUC: authUC}
}

// Summary godoc
// @Summary      Resumo do painel
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	p, err := h.authUC.Photographer(requestCtx(c), &auth.User{ID: GetUserID(c), Email: GetUserEmail(c)})
	if err != nil {
		return fail(c, err)
	}
	out, err := h.uc.GetSummary(requestCtx(c), p.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
