package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

// writeError traduce un error de dominio a la respuesta HTTP. Es el único lugar con ese mapeo.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.Message(err)})
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: domain.Message(err)})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: domain.Message(err)})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: domain.Message(err)})
	default:
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
	}
}

// ErrorHandler para fiber.Config: errores de fiber (ruta inexistente, método no permitido, body
// demasiado grande) conservan su código; el resto pasa por writeError.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: codeForStatus(fe.Code), Message: fe.Message})
	}
	return writeError(c, err)
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "BODY_TOO_LARGE"
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	default:
		return "HTTP_" + strconv.Itoa(status)
	}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// paramID lee :id como entero; si no lo es responde 422 y ok=false.
func paramID(c *fiber.Ctx) (id int64, ok bool, err error) {
	n, perr := strconv.ParseInt(c.Params("id"), 10, 64)
	if perr != nil {
		return 0, false, c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id must be an integer"})
	}
	return n, true, nil
}

// pageFrom lee skip/limit; valores ausentes o no numéricos toman el valor por defecto.
func pageFrom(c *fiber.Ctx, d dto.PageDefaults) dto.PageRequest {
	p := dto.PageRequest{
		Skip:  c.QueryInt("skip", 0),
		Limit: c.QueryInt("limit", d.DefaultLimit),
	}
	p.Normalize(d)
	return p
}

// categoryFilter lee category_id opcional; si no es entero responde 422 y ok=false.
func categoryFilter(c *fiber.Ctx) (id *int64, ok bool, err error) {
	raw := c.Query("category_id")
	if raw == "" {
		return nil, true, nil
	}
	n, perr := strconv.ParseInt(raw, 10, 64)
	if perr != nil {
		return nil, false, c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "category_id must be an integer"})
	}
	return &n, true, nil
}
