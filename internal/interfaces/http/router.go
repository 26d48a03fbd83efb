package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Axioma-api/internal/application/analytics"
	"github.com/jhoicas/Axioma-api/internal/application/auth"
	"github.com/jhoicas/Axioma-api/internal/application/orders"
	"github.com/jhoicas/Axioma-api/internal/application/usecase"
	"github.com/jhoicas/Axioma-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrganizationUC *usecase.OrganizationUseCase
	EntityUC       *usecase.EntityUseCase
	ProductUC      *usecase.ProductUseCase
	OrderUC        *orders.OrderUseCase
	PaymentUC      *orders.PaymentUseCase
	PDFUC          *orders.PDFUseCase
	DashboardUC    *analytics.DashboardUseCase
	AuthUC         *auth.AuthUseCase // nil = emisor local deshabilitado
	Resolver       tenantResolver
	JWTSecret      string
	LoginURL       string
	Logger         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")

	// Auth local (público, solo desarrollo)
	if deps.AuthUC != nil {
		authGroup := api.Group("/auth")
		authHandler := NewAuthHandler(deps.AuthUC, log)
		authGroup.Post("/register", authHandler.Register)
		authGroup.Post("/login", authHandler.Login)
	}

	// Rutas autenticadas sin organización activa (onboarding)
	authn := AuthMiddleware(deps.JWTSecret, deps.LoginURL)
	orgHandler := NewOrganizationHandler(deps.OrganizationUC, log)
	api.Get("/me/organizations", authn, orgHandler.ListMine)
	api.Post("/organizations", authn, orgHandler.Create)

	// Rutas con tenant (Bearer + membresía)
	scoped := []fiber.Handler{authn, TenantMiddleware(deps.Resolver, log)}

	org := api.Group("/organization", scoped...)
	org.Get("/", orgHandler.Get)
	org.Put("/", orgHandler.Update)
	org.Post("/logo", orgHandler.UploadLogo)
	org.Get("/members", orgHandler.ListMembers)

	entities := api.Group("/entities", scoped...)
	entityHandler := NewEntityHandler(deps.EntityUC, log)
	entities.Get("/", entityHandler.List)
	entities.Post("/", entityHandler.Create)
	entities.Get("/customers", entityHandler.ListCustomers)

	products := api.Group("/products", scoped...)
	productHandler := NewProductHandler(deps.ProductUC, log)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Post("/:id/archive", productHandler.Archive)

	ordersGroup := api.Group("/orders", scoped...)
	orderHandler := NewOrderHandler(deps.OrderUC, deps.PaymentUC, deps.PDFUC, log)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Delete("/:id", orderHandler.Delete)
	ordersGroup.Patch("/:id/status", orderHandler.UpdateStatus)
	ordersGroup.Post("/:id/payments", orderHandler.RegisterPayment)
	ordersGroup.Get("/:id/pdf", orderHandler.DownloadPDF)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, log)
	api.Get("/dashboard", append(scoped, dashboardHandler.Get)...)
}
