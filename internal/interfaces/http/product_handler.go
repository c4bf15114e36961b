package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc     *usecase.ProductUseCase
	report *usecase.ReportUseCase
	pages  dto.PageDefaults
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, report *usecase.ReportUseCase, pages dto.PageDefaults) *ProductHandler {
	return &ProductHandler{uc: uc, report: report, pages: pages}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /products/ [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
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
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        skip         query  int  false  "Registros a omitir"  default(0)
// @Param        limit        query  int  false  "Máximo de registros"  default(100)
// @Param        category_id  query  int  false  "Filtrar por categoría"
// @Success      200          {array}  dto.ProductResponse
// @Failure      422          {object}  dto.ErrorResponse
// @Router       /products/ [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	categoryID, ok, err := categoryFilter(c)
	if !ok {
		return err
	}
	q := dto.ProductListQuery{PageRequest: pageFrom(c, h.pages), CategoryID: categoryID}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto (parcial)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}
	var in dto.UpdateProductRequest
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
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Param        id   path  int  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Report godoc
// @Summary      Reporte PDF del catálogo
// @Tags         products
// @Produce      application/pdf
// @Param        category_id  query  int  false  "Solo esta categoría"
// @Success      200          {file}  binary
// @Failure      404          {object}  dto.ErrorResponse
// @Router       /products/report.pdf [get]
func (h *ProductHandler) Report(c *fiber.Ctx) error {
	categoryID, ok, err := categoryFilter(c)
	if !ok {
		return err
	}
	pdf, err := h.report.CatalogPDF(c.UserContext(), categoryID)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="catalogo.pdf"`)
	return c.Send(pdf)
}
