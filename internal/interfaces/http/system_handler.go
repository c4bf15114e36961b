package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"
)

// SystemHandler rutas fuera del catálogo: bienvenida, salud y documento OpenAPI.
type SystemHandler struct {
	service  string
	docsPath string
	ping     func(ctx context.Context) error
}

// NewSystemHandler construye el handler. ping puede ser nil (sin verificación de DB).
func NewSystemHandler(service, docsPath string, ping func(ctx context.Context) error) *SystemHandler {
	return &SystemHandler{service: service, docsPath: docsPath, ping: ping}
}

// Root devuelve un documento de bienvenida con los recursos disponibles.
func (h *SystemHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Welcome to " + h.service,
		"docs":    h.docsPath,
		"openapi": "/openapi.json",
		"endpoints": fiber.Map{
			"categories": "/categories/",
			"products":   "/products/",
			"report":     "/products/report.pdf",
			"health":     "/health",
		},
	})
}

// Health godoc
// @Summary      Estado del servicio
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "db": "unreachable"})
		}
	}
	return c.JSON(fiber.Map{"status": "ok", "service": h.service})
}

// OpenAPI sirve el documento registrado por el paquete docs.
func (h *SystemHandler) OpenAPI(c *fiber.Ctx) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "documentación no disponible")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.SendString(doc)
}
