// seed carga categorías y productos desde un CSV usando los mismos casos de uso
// que la API, de modo que se aplican validaciones y reglas de integridad.
//
// Uso: go run ./cmd/seed --file catalogo.csv [--encoding auto|utf8|latin1]
//
// Formato (con cabecera):
//
//	category,product,price,stock,description
//	Bebidas,Agua 500ml,1.50,10,Sin gas
//	Snacks,,,,
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/store"
	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

func main() {
	file := pflag.StringP("file", "f", "catalogo.csv", "ruta del CSV")
	encoding := pflag.String("encoding", "auto", "codificación del CSV: auto, utf8 o latin1")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("abrir CSV")
	}
	defer f.Close()

	in, err := decodeInput(f, *encoding)
	if err != nil {
		log.Fatal().Err(err).Msg("decodificar CSV")
	}
	rows, err := parseRows(in)
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV")
	}

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a la base de datos")
	}
	defer st.Close()

	s := &seeder{
		categories: usecase.NewCategoryUseCase(st.Categories),
		products:   usecase.NewProductUseCase(st.Products, st.Tx),
		ids:        make(map[string]int64),
	}
	res, err := s.run(ctx, rows, func(row seedRow, err error) {
		log.Warn().Err(err).Int("line", row.Line).Str("product", row.Product).Msg("fila omitida")
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed")
	}
	log.Info().
		Int("categories_created", res.Categories).
		Int("products_created", res.Products).
		Int("skipped", res.Skipped).
		Msg("seed terminado")
}

type seedResult struct {
	Categories int
	Products   int
	Skipped    int
}

type seeder struct {
	categories *usecase.CategoryUseCase
	products   *usecase.ProductUseCase
	ids        map[string]int64 // nombre normalizado -> ID
}

// run crea lo que falte. Los errores de validación de una fila se reportan con onSkip y no detienen la carga.
func (s *seeder) run(ctx context.Context, rows []seedRow, onSkip func(seedRow, error)) (seedResult, error) {
	var res seedResult
	if err := s.loadExisting(ctx); err != nil {
		return res, err
	}
	for _, row := range rows {
		catID, created, err := s.ensureCategory(ctx, row.Category)
		if err != nil {
			if isRowError(err) {
				res.Skipped++
				onSkip(row, err)
				continue
			}
			return res, err
		}
		if created {
			res.Categories++
		}
		if row.Product == "" {
			continue
		}
		var desc *string
		if row.Description != "" {
			desc = &row.Description
		}
		_, err = s.products.Create(ctx, dto.CreateProductRequest{
			Name: row.Product, Description: desc, Price: row.Price, Stock: row.Stock, CategoryID: catID,
		})
		if err != nil {
			if isRowError(err) {
				res.Skipped++
				onSkip(row, err)
				continue
			}
			return res, err
		}
		res.Products++
	}
	return res, nil
}

func (s *seeder) loadExisting(ctx context.Context) error {
	const pageSize = 500
	for skip := 0; ; skip += pageSize {
		page, err := s.categories.List(ctx, dto.PageRequest{Skip: skip, Limit: pageSize})
		if err != nil {
			return err
		}
		for _, c := range page {
			s.ids[c.Name] = c.ID
		}
		if len(page) < pageSize {
			return nil
		}
	}
}

func (s *seeder) ensureCategory(ctx context.Context, name string) (int64, bool, error) {
	name = dto.NormalizeName(name)
	if id, ok := s.ids[name]; ok {
		return id, false, nil
	}
	out, err := s.categories.Create(ctx, dto.CreateCategoryRequest{Name: name})
	if err != nil {
		return 0, false, err
	}
	s.ids[out.Name] = out.ID
	return out.ID, true, nil
}

func isRowError(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, domain.ErrNotFound)
}
