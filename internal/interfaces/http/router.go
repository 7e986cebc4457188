package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/chinawok-ops/internal/application/auth"
	"github.com/tu-usuario/chinawok-ops/internal/application/reviews"
	"github.com/tu-usuario/chinawok-ops/internal/application/usecase"
	"github.com/tu-usuario/chinawok-ops/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	EmployeeUC *usecase.EmployeeUseCase
	ReviewUC   *reviews.ReviewUseCase
	ReportUC   *reviews.ReportUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (protegido; la política fina por objetivo vive en el caso de uso)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.Me)
	users.Get("/", userHandler.List)
	users.Delete("/", userHandler.Delete)

	// Empleados por local (gestión restringida a personal de operaciones)
	locales := protected.Group("/locales")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	locales.Get("/:local_id/empleados", employeeHandler.List)
	locales.Get("/:local_id/empleados/:dni", employeeHandler.Get)
	locales.Post("/:local_id/empleados",
		RequireRole(entity.RoleAdmin, entity.RoleGerente), employeeHandler.Create)
	locales.Delete("/:local_id/empleados/:dni",
		RequireRole(entity.RoleAdmin, entity.RoleGerente), employeeHandler.Delete)

	// Reseñas
	reviewHandler := NewReviewHandler(deps.ReviewUC, deps.ReportUC)
	protected.Post("/resenas", reviewHandler.Create)
	locales.Get("/:local_id/resenas", reviewHandler.List)
	locales.Get("/:local_id/resenas/reporte.pdf",
		RequireRole(entity.RoleAdmin, entity.RoleGerente), reviewHandler.Report)
	locales.Delete("/:local_id/resenas/:resena_id",
		RequireRole(entity.RoleAdmin, entity.RoleGerente), reviewHandler.Delete)
}
