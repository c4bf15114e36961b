package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	ReportUC    *usecase.ReportUseCase
	Pagination  dto.PageDefaults
	JWTSecret   string // vacío: escrituras sin autenticación
	JWTIssuer   string
	ServiceName string
	DocsPath    string
	HealthCheck func(ctx context.Context) error
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	system := NewSystemHandler(deps.ServiceName, deps.DocsPath, deps.HealthCheck)
	app.Get("/", system.Root)
	app.Get("/health", system.Health)
	app.Get("/openapi.json", system.OpenAPI)

	// GET es público; POST/PUT/DELETE pasan por RequireWrite.
	write := RequireWrite(deps.JWTSecret, deps.JWTIssuer)

	categories := app.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Pagination)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", write, categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", write, categoryHandler.Update)
	categories.Delete("/:id", write, categoryHandler.Delete)

	products := app.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.ReportUC, deps.Pagination)
	products.Get("/", productHandler.List)
	products.Post("/", write, productHandler.Create)
	// Antes de /:id para que "report.pdf" no se tome como ID.
	products.Get("/report.pdf", productHandler.Report)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", write, productHandler.Update)
	products.Delete("/:id", write, productHandler.Delete)
}
