package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP para Category.
type CategoryHandler struct {
	uc    *usecase.CategoryUseCase
	pages dto.PageDefaults
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase, pages dto.PageDefaults) *CategoryHandler {
	return &CategoryHandler{uc: uc, pages: pages}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /categories/ [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Tags         categories
// @Produce      json
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Param        skip   query  int  false  "Registros a omitir"  default(0)
// @Param        limit  query  int  false  "Máximo de registros"  default(100)
// @Success      200    {array}  dto.CategoryResponse
// @Router       /categories/ [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageFrom(c, h.pages))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar categoría (parcial)
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la categoría"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoría
// @Description  Falla con 400 si la categoría tiene productos.
// @Tags         categories
// @Security     Bearer
// @Param        id   path  int  true  "ID de la categoría"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
