package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repositorios atados a ella.
// Si fn devuelve error se hace Rollback; si no, Commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(categories repository.CategoryRepository, products repository.ProductRepository) error) error
}

// CatalogLine una fila del reporte de catálogo.
type CatalogLine struct {
	ProductID    int64
	ProductName  string
	CategoryName string
	Price        decimal.Decimal
	Stock        int
	Value        decimal.Decimal // Price * Stock
}

// CatalogReport datos ya calculados que el generador solo maqueta.
type CatalogReport struct {
	Title       string
	GeneratedAt time.Time
	Lines       []CatalogLine
	TotalStock  int
	TotalValue  decimal.Decimal
	Truncated   bool // hay más productos que líneas; totales parciales
}

// CatalogPDFGenerator puerto para la representación PDF del catálogo.
type CatalogPDFGenerator interface {
	GenerateCatalogPDF(ctx context.Context, report CatalogReport) ([]byte, error)
}
