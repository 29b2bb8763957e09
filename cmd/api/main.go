package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/fotogestor/fotogestor-api/internal/application/analytics"
	"github.com/fotogestor/fotogestor-api/internal/application/auth"
	appcatalog "github.com/fotogestor/fotogestor-api/internal/application/catalog"
	"github.com/fotogestor/fotogestor-api/internal/application/contracts"
	"github.com/fotogestor/fotogestor-api/internal/application/usecase"
	"github.com/fotogestor/fotogestor-api/internal/infrastructure/supabase"
	httpRouter "github.com/fotogestor/fotogestor-api/internal/interfaces/http"
	"github.com/fotogestor/fotogestor-api/pkg/config"
	"github.com/fotogestor/fotogestor-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	// Credenciais do backend: runtime (via /api/setup) > persistidas > env.
	resolved := cfg.Resolve(nil)
	if err := resolved.Validate(); err != nil {
		log.Warn().Err(err).Msg("backend não configurado; apenas /api/setup disponível até configurar")
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := config.Probe(ctx, resolved.URL, resolved.AnonKey); err != nil {
			log.Warn().Err(err).Msg("probe do backend falhou; verifique as credenciais em /api/setup")
		}
		cancel()
	}

	backend := supabase.NewClient(supabase.Config{URL: resolved.URL, AnonKey: resolved.AnonKey})

	catalogRepo := supabase.NewCatalogRepository(backend)
	contractRepo := supabase.NewContractRepository(backend)
	templateRepo := supabase.NewTemplateRepository(backend)
	eventTypeRepo := supabase.NewEventTypeRepository(backend)
	packageRepo := supabase.NewPackageRepository(backend)
	paymentRepo := supabase.NewPaymentMethodRepository(backend)
	linkRepo := supabase.NewPackagePaymentMethodRepository(backend)
	photographerRepo := supabase.NewPhotographerRepository(backend)
	businessRepo := supabase.NewBusinessInfoRepository(backend)
	authGateway := supabase.NewAuthClient(backend)

	notifier := auth.NewNotifier()
	authUC := auth.NewUseCase(authGateway, photographerRepo, notifier)

	// Log estruturado de login/logout a partir do stream de eventos de auth.
	authEvents, unsubscribe := notifier.Subscribe()
	defer unsubscribe()
	go func() {
		for e := range authEvents {
			log.Info().
				Str("event", string(e.Type)).
				Str("user_id", e.UserID).
				Str("email", e.Email).
				Msg("evento de autenticação")
		}
	}()

	loader := appcatalog.NewLoader(catalogRepo)
	contractUC := contracts.NewUseCase(contractRepo, templateRepo, loader)
	dashboardUC := appanalytics.NewDashboardUseCase(contractRepo, log)
	eventTypeUC := usecase.NewEventTypeUseCase(eventTypeRepo)
	packageUC := usecase.NewPackageUseCase(packageRepo)
	paymentUC := usecase.NewPaymentMethodUseCase(paymentRepo)
	linkUC := usecase.NewLinkUseCase(linkRepo)
	templateUC := usecase.NewTemplateUseCase(templateRepo)
	businessUC := usecase.NewBusinessInfoUseCase(businessRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "FotoGestor API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Cfg:            cfg,
		BackendClient:  backend,
		AuthUC:         authUC,
		CatalogLoader:  loader,
		ContractUC:     contractUC,
		DashboardUC:    dashboardUC,
		EventTypeUC:    eventTypeUC,
		PackageUC:      packageUC,
		PaymentUC:      paymentUC,
		LinkUC:         linkUC,
		TemplateUC:     templateUC,
		BusinessInfoUC: businessUC,
		JWTSecret:      cfg.Supabase.JWTSecret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
