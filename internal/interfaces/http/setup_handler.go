package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/fotogestor/fotogestor-api/internal/application/dto"
	"github.com/fotogestor/fotogestor-api/internal/infrastructure/supabase"
	"github.com/fotogestor/fotogestor-api/pkg/config"
)

// SetupHandler configuração das credenciais do backend hospedado em runtime.
// Fica fora do grupo protegido: é o caminho de recuperação quando as
// credenciais estão ausentes ou erradas.
type SetupHandler struct {
	cfg    *config.Config
	client *supabase.Client
}

// NewSetupHandler constrói o handler de setup.
func NewSetupHandler(cfg *config.Config, client *supabase.Client) *SetupHandler {
	return &SetupHandler{cfg: cfg, client: client}
}

// setupRequest credenciais enviadas pelo formulário de setup.
type setupRequest struct {
	URL     string `json:"url"`
	AnonKey string `json:"anon_key"`
}

// setupStatusResponse estado atual da configuração do backend.
type setupStatusResponse struct {
	Configured bool   `json:"configured"`
	URL        string `json:"url,omitempty"`
}

// Status godoc
// @Summary      Estado da configuração do backend
// @Tags         setup
// @Produce      json
// @Success      200  {object}  setupStatusResponse
// @Router       /api/setup/status [get]
func (h *SetupHandler) Status(c *fiber.Ctx) error {
	resolved := h.cfg.Resolve(nil)
	return c.JSON(setupStatusResponse{
		Configured: resolved.Validate() == nil,
		URL:        resolved.URL,
	})
}

// Configure godoc
// @Summary      Validar e persistir credenciais do backend
// @Tags         setup
// @Accept       json
// @Produce      json
// @Param        body  body  setupRequest  true  "url, anon_key"
// @Success      200   {object}  setupStatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/setup [post]
func (h *SetupHandler) Configure(c *fiber.Ctx) error {
	var in setupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}

	// Probe primeiro: nada é persistido ou aplicado com credencial não validada.
	if err := config.Probe(c.UserContext(), in.URL, in.AnonKey); err != nil {
		switch {
		case errors.Is(err, config.ErrMissingCredentials):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "url e anon_key são obrigatórios"})
		case errors.Is(err, config.ErrInvalidKey):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_KEY", Message: "o backend recusou a chave informada"})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND", Message: "backend inacessível com a URL informada"})
		}
	}

	creds := config.BackendCredentials{URL: in.URL, AnonKey: in.AnonKey}
	if err := config.SavePersisted(h.cfg.SettingsPath, creds); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.client.UpdateCredentials(supabase.Config{URL: in.URL, AnonKey: in.AnonKey})

	return c.JSON(setupStatusResponse{Configured: true, URL: in.URL})
}
