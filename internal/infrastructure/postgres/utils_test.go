package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalogo-api/internal/domain"
)

func TestTranslate(t *testing.T) {
	boom := errors.New("conexión rechazada")
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "unique", err: &pgconn.PgError{Code: "23505"}, want: domain.ErrDuplicate},
		{name: "fk envuelto", err: fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23503"}), want: domain.ErrReferenced},
		{name: "check", err: &pgconn.PgError{Code: "23514"}, want: domain.ErrInvalidInput},
		{name: "otro", err: boom, want: boom},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, translate("insert", tc.err), tc.want)
		})
	}
	assert.NoError(t, translate("insert", nil))
}

func TestTranslate_WrapsUnknownWithOperation(t *testing.T) {
	err := translate("delete category", &pgconn.PgError{Code: "40001", Message: "serialization"})
	assert.Contains(t, err.Error(), "delete category")
	assert.False(t, errors.Is(err, domain.ErrDuplicate))
}
