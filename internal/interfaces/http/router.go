package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/skirent-api/internal/application/auth"
	"github.com/jhoicas/skirent-api/internal/application/inventory"
	"github.com/jhoicas/skirent-api/internal/application/rental"
	"github.com/jhoicas/skirent-api/internal/application/usecase"
	"github.com/jhoicas/skirent-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	AuditUC     *usecase.AuditUseCase
	InventoryUC *inventory.UseCase
	RentalUC    *rental.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	anyRole := RequireRole(entity.RoleAdmin, entity.RoleEmployee)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (register/login públicos, me protegido)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), anyRole, authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products: listado para cualquier autenticado, CRUD solo admin
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", anyRole, productHandler.List)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Acciones de inventario sobre un producto (cualquier autenticado)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.RentalUC)
	products.Post("/:id/take", anyRole, inventoryHandler.Take)
	products.Post("/:id/return-taken", anyRole, inventoryHandler.ReturnTaken)
	products.Post("/:id/rent", anyRole, inventoryHandler.Rent)
	products.Post("/:id/return-rented", anyRole, inventoryHandler.ReturnRented)

	// Rentals: propias para cualquier autenticado, listado global solo admin
	rentals := protected.Group("/rentals")
	rentalHandler := NewRentalHandler(deps.RentalUC)
	rentals.Get("/my", anyRole, rentalHandler.ListMy)
	rentals.Get("/", adminOnly, rentalHandler.List)

	// Audit logs (solo admin)
	auditHandler := NewAuditHandler(deps.AuditUC)
	protected.Get("/audit-logs", adminOnly, auditHandler.List)
}
