package domain

import "errors"

// Tipos de error de dominio (sin dependencias externas). El transporte los traduce a códigos HTTP.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrUnauthorized = errors.New("no autorizado")

	// Devueltos por los adaptadores de persistencia al violar constraints.
	ErrDuplicate  = errors.New("recurso duplicado")
	ErrReferenced = errors.New("recurso referenciado por otros registros")
)

// Error es un error de dominio con el mensaje que ve el cliente. errors.Is(err, Kind) se cumple.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// NotFound construye un error de tipo ErrNotFound.
func NotFound(msg string) error { return &Error{Kind: ErrNotFound, Message: msg} }

// Conflict construye un error de tipo ErrConflict.
func Conflict(msg string) error { return &Error{Kind: ErrConflict, Message: msg} }

// Invalid construye un error de tipo ErrInvalidInput.
func Invalid(msg string) error { return &Error{Kind: ErrInvalidInput, Message: msg} }

// Message devuelve el texto apto para el cliente: el de *Error si existe, si no el del tipo.
func Message(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}

// Errores del catálogo.
var (
	ErrCategoryNotFound = NotFound("Category not found")
	ErrProductNotFound  = NotFound("Product not found")
	ErrCategoryExists   = Conflict("Category already registered")
	ErrCategoryInUse    = Conflict("Category has associated products")
)
