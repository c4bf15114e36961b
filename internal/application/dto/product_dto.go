package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Stock por defecto es 0.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=100"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"gte=0"`
	CategoryID  int64           `json:"category_id" validate:"required"`
}

// Normalize limpia los campos de texto antes de validar.
func (r *CreateProductRequest) Normalize() {
	r.Name = NormalizeName(r.Name)
}

// Check valida tags y reglas que el validador no cubre (precio decimal positivo).
func (r *CreateProductRequest) Check() error {
	if err := Validate(r); err != nil {
		return err
	}
	return checkPrice(&r.Price)
}

// UpdateProductRequest entrada para actualizar un producto; solo se aplican los campos presentes.
// description: null borra la descripción.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitnil,min=1,max=100"`
	Description Optional[string] `json:"description" swaggertype:"string"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock" validate:"omitnil,gte=0"`
	CategoryID  *int64           `json:"category_id"`
}

// Normalize limpia los campos de texto antes de validar.
func (r *UpdateProductRequest) Normalize() {
	if r.Name != nil {
		n := NormalizeName(*r.Name)
		r.Name = &n
	}
}

// Check valida tags y reglas que el validador no cubre.
func (r *UpdateProductRequest) Check() error {
	if err := Validate(r); err != nil {
		return err
	}
	if r.Price != nil {
		return checkPrice(r.Price)
	}
	return nil
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  int64           `json:"category_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ProductListQuery filtros del listado de productos.
type ProductListQuery struct {
	PageRequest
	CategoryID *int64
}
