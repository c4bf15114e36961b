package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

func TestTranslate(t *testing.T) {
	constraint := func(ext sqlite3.ErrNoExtended) error {
		return sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: ext}
	}
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "unique", err: constraint(sqlite3.ErrConstraintUnique), want: domain.ErrDuplicate},
		{name: "primary key", err: constraint(sqlite3.ErrConstraintPrimaryKey), want: domain.ErrDuplicate},
		{name: "foreign key", err: constraint(sqlite3.ErrConstraintForeignKey), want: domain.ErrReferenced},
		{name: "restrict en delete", err: constraint(sqlite3.ErrConstraintTrigger), want: domain.ErrReferenced},
		{name: "check", err: constraint(sqlite3.ErrConstraintCheck), want: domain.ErrInvalidInput},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, translate("op", tc.err), tc.want)
		})
	}

	other := errors.New("disk I/O error")
	err := translate("delete category", other)
	assert.ErrorIs(t, err, other)
	assert.EqualError(t, err, "delete category: disk I/O error")
	assert.NoError(t, translate("op", nil))
}

func TestCategoryRepo_DeleteReferencedIsRejected(t *testing.T) {
	db := openTestDB(t)
	cats := NewCategoryRepository(db)
	ctx := context.Background()
	bebidas := newCategory(t, cats, "Bebidas")
	require.NoError(t, NewProductRepository(db).Create(ctx, &entity.Product{
		Name: "Agua", Price: decimal.NewFromInt(1), CategoryID: bebidas.ID,
	}))

	err := cats.Delete(ctx, bebidas.ID)
	require.ErrorIs(t, err, domain.ErrReferenced)

	got, err := cats.GetByID(ctx, bebidas.ID)
	require.NoError(t, err)
	assert.NotNil(t, got, "la categoría sigue existiendo")
}
