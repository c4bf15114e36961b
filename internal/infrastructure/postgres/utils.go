package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/catalogo-api/internal/domain"
)

// Códigos SQLSTATE de violación de integridad.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool { return pgCode(err) == codeUniqueViolation }

func isForeignKeyViolation(err error) bool { return pgCode(err) == codeForeignKeyViolation }

func isCheckViolation(err error) bool { return pgCode(err) == codeCheckViolation }

// translate convierte violaciones de constraint en errores de dominio; el resto se envuelve con op.
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isForeignKeyViolation(err):
		return domain.ErrReferenced
	case isCheckViolation(err):
		return domain.ErrInvalidInput
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
