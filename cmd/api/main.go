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
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Axioma-api/internal/application/analytics"
	"github.com/jhoicas/Axioma-api/internal/application/auth"
	"github.com/jhoicas/Axioma-api/internal/application/orders"
	"github.com/jhoicas/Axioma-api/internal/application/ports"
	"github.com/jhoicas/Axioma-api/internal/application/tenant"
	"github.com/jhoicas/Axioma-api/internal/application/usecase"
	infracache "github.com/jhoicas/Axioma-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/Axioma-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Axioma-api/internal/infrastructure/postgres"
	infrastorage "github.com/jhoicas/Axioma-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Axioma-api/internal/interfaces/http"
	"github.com/jhoicas/Axioma-api/pkg/config"
	"github.com/jhoicas/Axioma-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// ── Repositorios ───────────────────────────────────────────────────────────
	orgRepo := postgres.NewOrganizationRepository(pool)
	membershipRepo := postgres.NewMembershipRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	entityRepo := postgres.NewEntityRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// ── Caché del dashboard: Redis si está configurado ─────────────────────────
	var dashboardCache ports.DashboardCache = infracache.NoopCache{}
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, el dashboard se calculará en cada petición")
		}
		cancel()
		dashboardCache = infracache.NewRedisDashboardCache(rdb, cfg.Redis.TTL)
	}

	// ── Almacenamiento de logos ────────────────────────────────────────────────
	var logoStorage ports.LogoStorage
	switch cfg.Storage.Driver {
	case "supabase":
		logoStorage = infrastorage.NewSupabaseStorage(cfg.Storage.SupabaseURL, cfg.Storage.ServiceKey, cfg.Storage.Bucket)
	default:
		logoStorage = infrastorage.NewLocalStorage(cfg.Storage.LocalDir, cfg.Storage.PublicBaseURL)
	}

	// ── Casos de uso ───────────────────────────────────────────────────────────
	orgUC := usecase.NewOrganizationUseCase(txRunner, orgRepo, membershipRepo, logoStorage)
	entityUC := usecase.NewEntityUseCase(entityRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	orderUC := orders.NewOrderUseCase(txRunner, entityRepo, productRepo, orderRepo, paymentRepo, dashboardCache, log.Named("orders"))
	paymentUC := orders.NewPaymentUseCase(txRunner, dashboardCache, log.Named("payments"))
	pdfUC := orders.NewPDFUseCase(orgRepo, entityRepo, orderRepo, paymentRepo, infrapdf.NewMarotoPDFGenerator())
	dashboardUC := analytics.NewDashboardUseCase(dashboardRepo, dashboardCache, log)

	var authUC *auth.AuthUseCase
	if cfg.Auth.LocalEnabled {
		authUC = auth.NewAuthUseCase(userRepo, auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		})
		log.Warn().Msg("emisor local de tokens habilitado (solo desarrollo)")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log.Named("http")),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Axioma API",
	}))

	if cfg.Storage.Driver != "supabase" {
		app.Static(cfg.Storage.PublicBaseURL, cfg.Storage.LocalDir)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OrganizationUC: orgUC,
		EntityUC:       entityUC,
		ProductUC:      productUC,
		OrderUC:        orderUC,
		PaymentUC:      paymentUC,
		PDFUC:          pdfUC,
		DashboardUC:    dashboardUC,
		AuthUC:         authUC,
		Resolver:       tenant.NewResolver(membershipRepo),
		JWTSecret:      cfg.JWT.Secret,
		LoginURL:       cfg.Auth.LoginURL,
		Logger:         log.Named("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
