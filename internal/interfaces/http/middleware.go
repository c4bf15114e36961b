package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// RequestLogger registra método, ruta, estado, latencia y request id de cada petición,
// y el subject del token en las escrituras autenticadas.
// Los errores se resuelven aquí con el ErrorHandler de la app para loguear el estado final.
func RequestLogger(l zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()

		ev := l.Info()
		if status >= fiber.StatusInternalServerError {
			ev = l.Error()
		}
		if sub := subjectOf(c); sub != "" {
			ev = ev.Str("subject", sub)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Int("bytes", len(c.Response().Body())).
			Float64("latency_ms", float64(time.Since(start).Microseconds())/1000.0).
			Str("request_id", requestID(c)).
			Msg("http_request")
		return nil
	}
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
