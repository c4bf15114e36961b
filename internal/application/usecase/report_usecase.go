package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

const (
	reportPageSize = 500
	reportMaxLines = 5000
)

// ReportUseCase genera el reporte PDF del catálogo (productos con su categoría, stock y valorización).
type ReportUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	pdf        CatalogPDFGenerator
	now        func() time.Time
	pageSize   int
	maxLines   int
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(products repository.ProductRepository, categories repository.CategoryRepository, pdf CatalogPDFGenerator) *ReportUseCase {
	return &ReportUseCase{
		products:   products,
		categories: categories,
		pdf:        pdf,
		now:        time.Now,
		pageSize:   reportPageSize,
		maxLines:   reportMaxLines,
	}
}

// CatalogPDF arma el reporte (opcionalmente de una sola categoría) y lo delega al generador.
func (uc *ReportUseCase) CatalogPDF(ctx context.Context, categoryID *int64) ([]byte, error) {
	report, err := uc.BuildCatalog(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateCatalogPDF(ctx, *report)
}

// BuildCatalog recorre los productos por páginas y calcula totales.
// Si el catálogo supera maxLines el reporte queda marcado como Truncated y los totales son parciales.
func (uc *ReportUseCase) BuildCatalog(ctx context.Context, categoryID *int64) (*CatalogReport, error) {
	title := "Catálogo de productos"
	names := make(map[int64]string)
	if categoryID != nil {
		category, err := uc.categories.GetByID(ctx, *categoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrCategoryNotFound
		}
		names[category.ID] = category.Name
		title = fmt.Sprintf("Catálogo de productos: %s", category.Name)
	}

	report := &CatalogReport{
		Title:       title,
		GeneratedAt: uc.now().UTC(),
		TotalValue:  decimal.Zero,
	}
	filter := repository.ProductFilter{CategoryID: categoryID}
	for offset := 0; offset < uc.maxLines; offset += uc.pageSize {
		limit := min(uc.pageSize, uc.maxLines-offset)
		page, err := uc.products.List(ctx, filter, limit, offset)
		if err != nil {
			return nil, err
		}
		for _, p := range page {
			name, ok := names[p.CategoryID]
			if !ok {
				category, err := uc.categories.GetByID(ctx, p.CategoryID)
				if err != nil {
					return nil, err
				}
				if category != nil {
					name = category.Name
				}
				names[p.CategoryID] = name
			}
			value := p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
			report.Lines = append(report.Lines, CatalogLine{
				ProductID:    p.ID,
				ProductName:  p.Name,
				CategoryName: name,
				Price:        p.Price,
				Stock:        p.Stock,
				Value:        value,
			})
			report.TotalStock += p.Stock
			report.TotalValue = report.TotalValue.Add(value)
		}
		if len(page) < limit {
			return report, nil
		}
	}
	rest, err := uc.products.List(ctx, filter, 1, uc.maxLines)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		report.Truncated = true
		report.Title = fmt.Sprintf("%s (primeros %d productos)", report.Title, uc.maxLines)
	}
	return report, nil
}
