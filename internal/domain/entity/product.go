package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. CategoryID siempre apunta a una Category existente.
type Product struct {
	ID          int64
	Name        string
	Description *string
	Price       decimal.Decimal // precio de venta, > 0
	Stock       int             // unidades disponibles, >= 0
	CategoryID  int64
	CreatedAt   time.Time
}
