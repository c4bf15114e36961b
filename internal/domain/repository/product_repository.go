package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ProductFilter filtros opcionales del listado de productos.
type ProductFilter struct {
	CategoryID *int64
}

// ProductRepository define el puerto de persistencia para Product (DIP).
//
// Create/Update devuelven domain.ErrReferenced si CategoryID no existe (FK) y
// domain.ErrInvalidInput si se viola un CHECK (precio o stock).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}
