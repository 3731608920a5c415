package handlers

import (
	"ShopAdmin/internal/config"
	"ShopAdmin/internal/middleware"
	"ShopAdmin/internal/service"
	"ShopAdmin/internal/validation"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// Services — зависимости хендлеров.
type Services struct {
	Users   *service.UserService
	Catalog *service.CatalogService
	Access  *service.AccessService
	Orders  *service.OrderService
	Engine  *validation.Engine
}

// NewHandler разводящий для хендлеров
func NewHandler(svc Services, logger *zap.SugaredLogger, config *config.Config) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	base := newResponder(svc.Engine.Catalog(), logger, config)

	// Handlers
	authHandler := NewAuthHandler(svc.Users, base)
	validateHandler := NewValidateHandler(svc.Engine, base)
	catalogHandler := NewCatalogHandler(svc.Catalog, base)
	accessHandler := NewAccessHandler(svc.Access, base)
	orderHandler := NewOrderHandler(svc.Orders, base)

	// Public routes
	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/validate/{entity}", validateHandler.Validate)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/api/auth/me", authHandler.Me)
		r.Get("/api/users", authHandler.ListUsers)

		r.Route("/api/brands", func(r chi.Router) {
			r.Get("/", catalogHandler.ListBrands)
			r.Post("/", catalogHandler.CreateBrand)
			r.Get("/{id}", catalogHandler.GetBrand)
			r.Put("/{id}", catalogHandler.UpdateBrand)
			r.Delete("/{id}", catalogHandler.DeleteBrand)
		})
		r.Route("/api/categories", func(r chi.Router) {
			r.Get("/", catalogHandler.ListCategories)
			r.Post("/", catalogHandler.CreateCategory)
			r.Get("/{id}", catalogHandler.GetCategory)
			r.Put("/{id}", catalogHandler.UpdateCategory)
			r.Delete("/{id}", catalogHandler.DeleteCategory)
		})
		r.Route("/api/permissions", func(r chi.Router) {
			r.Get("/", accessHandler.ListPermissions)
			r.Post("/", accessHandler.CreatePermission)
			r.Put("/{id}", accessHandler.UpdatePermission)
			r.Delete("/{id}", accessHandler.DeletePermission)
		})
		r.Route("/api/roles", func(r chi.Router) {
			r.Get("/", accessHandler.ListRoles)
			r.Post("/", accessHandler.CreateRole)
			r.Get("/{id}", accessHandler.GetRole)
			r.Put("/{id}", accessHandler.UpdateRole)
			r.Delete("/{id}", accessHandler.DeleteRole)
		})
		r.Route("/api/orders", func(r chi.Router) {
			r.Get("/", orderHandler.List)
			r.Get("/{id}", orderHandler.Get)
			r.Patch("/{id}/status", orderHandler.UpdateStatus)
		})
	})

	return &Handler{Router: r}
}
