package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría. IsActive por defecto es true.
type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// Normalize limpia los campos de texto antes de validar.
func (r *CreateCategoryRequest) Normalize() {
	r.Name = NormalizeName(r.Name)
}

// UpdateCategoryRequest entrada para actualizar una categoría; solo se aplican los campos presentes.
// description: null borra la descripción.
type UpdateCategoryRequest struct {
	Name        *string          `json:"name" validate:"omitnil,min=1,max=100"`
	Description Optional[string] `json:"description" swaggertype:"string"`
	IsActive    *bool            `json:"is_active"`
}

// Normalize limpia los campos de texto antes de validar.
func (r *UpdateCategoryRequest) Normalize() {
	if r.Name != nil {
		n := NormalizeName(*r.Name)
		r.Name = &n
	}
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
