package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción gorm.
type TxRunner struct {
	db *gorm.DB
}

func NewTxRunner(db *gorm.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run hace Commit si fn no devuelve error; Rollback en caso contrario.
func (r *TxRunner) Run(ctx context.Context, fn func(
	categories repository.CategoryRepository,
	products repository.ProductRepository,
) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewCategoryRepository(tx), NewProductRepository(tx))
	})
}
