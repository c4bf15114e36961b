package entity

import "time"

// Category representa una categoría de productos. Name es único en todo el catálogo.
type Category struct {
	ID          int64
	Name        string
	Description *string // nil si no se informó
	IsActive    bool
	CreatedAt   time.Time
}
