package sqlite

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/jhoicas/catalogo-api/internal/domain"
)

// translate convierte violaciones de constraint de SQLite en errores de dominio.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	var se sqlite3.Error
	if errors.As(err, &se) && se.Code == sqlite3.ErrConstraint {
		switch se.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return domain.ErrDuplicate
		case sqlite3.ErrConstraintForeignKey, sqlite3.ErrConstraintTrigger:
			// ON DELETE RESTRICT llega como trigger (1811), no como foreign key (787).
			return domain.ErrReferenced
		case sqlite3.ErrConstraintCheck:
			return domain.ErrInvalidInput
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
