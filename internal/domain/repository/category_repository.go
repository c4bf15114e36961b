package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
//
// GetByID y GetByName devuelven (nil, nil) si no existe. Update y Delete devuelven
// domain.ErrNotFound si no afectan filas; Create/Update devuelven domain.ErrDuplicate
// ante un nombre repetido y Delete devuelve domain.ErrReferenced si hay productos asociados.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	List(ctx context.Context, limit, offset int) ([]*entity.Category, error)
	Delete(ctx context.Context, id int64) error
}
