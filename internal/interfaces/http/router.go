package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fotogestor/fotogestor-api/internal/application/analytics"
	"github.com/fotogestor/fotogestor-api/internal/application/auth"
	"github.com/fotogestor/fotogestor-api/internal/application/catalog"
	"github.com/fotogestor/fotogestor-api/internal/application/contracts"
	"github.com/fotogestor/fotogestor-api/internal/application/usecase"
	"github.com/fotogestor/fotogestor-api/internal/infrastructure/supabase"
	"github.com/fotogestor/fotogestor-api/pkg/config"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	Cfg            *config.Config
	BackendClient  *supabase.Client
	AuthUC         *auth.UseCase
	CatalogLoader  *catalog.Loader
	ContractUC     *contracts.UseCase
	DashboardUC    *analytics.DashboardUseCase
	EventTypeUC    *usecase.EventTypeUseCase
	PackageUC      *usecase.PackageUseCase
	PaymentUC      *usecase.PaymentMethodUseCase
	LinkUC         *usecase.LinkUseCase
	TemplateUC     *usecase.TemplateUseCase
	BusinessInfoUC *usecase.BusinessInfoUseCase
	JWTSecret      string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Setup (público): caminho de recuperação de credenciais do backend.
	setupHandler := NewSetupHandler(deps.Cfg, deps.BackendClient)
	api.Get("/setup/status", setupHandler.Status)
	api.Post("/setup", setupHandler.Configure)

	// Auth (público para entrar; logout e sessão exigem token)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/signup", authHandler.SignUp)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.AuthUC))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/session", authHandler.Session)
	protected.Put("/auth/profile", authHandler.UpdateProfile)

	// Catálogo e orçamento
	catalogHandler := NewCatalogHandler(deps.CatalogLoader)
	protected.Get("/catalog", catalogHandler.Get)
	protected.Post("/quotes", catalogHandler.Quote)

	// Administração do catálogo
	eventTypes := protected.Group("/event-types")
	eventTypeHandler := NewEventTypeHandler(deps.EventTypeUC)
	eventTypes.Get("/", eventTypeHandler.List)
	eventTypes.Post("/", eventTypeHandler.Create)
	eventTypes.Put("/:id", eventTypeHandler.Update)
	eventTypes.Delete("/:id", eventTypeHandler.Delete)

	packages := protected.Group("/packages")
	packageHandler := NewPackageHandler(deps.PackageUC)
	packages.Get("/", packageHandler.List)
	packages.Post("/", packageHandler.Create)
	packages.Put("/:id", packageHandler.Update)
	packages.Delete("/:id", packageHandler.Delete)

	methods := protected.Group("/payment-methods")
	paymentHandler := NewPaymentMethodHandler(deps.PaymentUC)
	methods.Get("/", paymentHandler.List)
	methods.Post("/", paymentHandler.Create)
	methods.Put("/:id", paymentHandler.Update)
	methods.Delete("/:id", paymentHandler.Delete)

	links := protected.Group("/package-payment-methods")
	linkHandler := NewLinkHandler(deps.LinkUC)
	links.Get("/", linkHandler.List)
	links.Post("/", linkHandler.Create)
	links.Put("/:id", linkHandler.Update)
	links.Delete("/:id", linkHandler.Delete)

	templates := protected.Group("/contract-templates")
	templateHandler := NewTemplateHandler(deps.TemplateUC)
	templates.Get("/", templateHandler.List)
	templates.Post("/", templateHandler.Create)
	templates.Put("/:id", templateHandler.Update)
	templates.Delete("/:id", templateHandler.Delete)

	// Dados do negócio
	businessHandler := NewBusinessHandler(deps.BusinessInfoUC, deps.AuthUC)
	protected.Get("/business-info", businessHandler.Get)
	protected.Put("/business-info", businessHandler.Save)

	// Contratos
	contratos := protected.Group("/contratos")
	contractHandler := NewContractHandler(deps.ContractUC, deps.AuthUC)
	contratos.Post("/", contractHandler.Create)
	contratos.Get("/", contractHandler.List)
	contratos.Get("/:id", contractHandler.GetByID)
	contratos.Patch("/:id/status", contractHandler.UpdateStatus)
	contratos.Delete("/:id", contractHandler.Delete)
	contratos.Get("/:id/documento", contractHandler.Documento)

	// Painel
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.AuthUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)
}
