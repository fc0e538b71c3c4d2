package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/backoffice-api/internal/application/auth"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/internal/domain/authz"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	CustomerUC *usecase.CustomerUseCase
	ProductUC  *usecase.ProductUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Los paths se preservan del
// frontend existente. Toda ruta ligada a una pantalla pasa por el gate
// en el servidor, incluidas las de solo lectura.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)
	api.Post("/signup", authHandler.Signup)

	// Rutas protegidas (requieren sesión)
	protected := api.Group("/", SessionMiddleware(deps.JWTSecret))

	users := protected.Group("/users", RequireScreen(authz.ScreenManageUsers))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Patch("/", RequireSubAction(authz.SubEditUser), userHandler.Update)

	customers := protected.Group("/customers", RequireScreen(authz.ScreenCustomerDetails))
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)

	products := protected.Group("/products", RequireScreen(authz.ScreenManageProducts))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", RequireSubAction(authz.SubAddProduct), productHandler.Create)
	products.Patch("/", RequireSubAction(authz.SubEditProduct), productHandler.Update)
	products.Delete("/", RequireSubAction(authz.SubDeleteProduct), productHandler.Delete)
}
