// Package store elige el motor de persistencia según la configuración y expone
// los repositorios listos para los casos de uso.
package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/catalogo-api/pkg/config"
)

// Store repositorios y transacciones sobre el motor configurado.
type Store struct {
	Driver     string
	Categories repository.CategoryRepository
	Products   repository.ProductRepository
	Tx         usecase.TxRunner

	ping  func(ctx context.Context) error
	close func()
}

// Open conecta al motor indicado por cfg.Driver y, si cfg.AutoMigrate, crea las tablas.
func Open(ctx context.Context, cfg config.DBConfig) (*Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg)
	case config.DriverSQLite:
		return openSQLite(cfg)
	default:
		return nil, fmt.Errorf("store: driver desconocido %q", cfg.Driver)
	}
}

func openPostgres(ctx context.Context, cfg config.DBConfig) (*Store, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return &Store{
		Driver:     config.DriverPostgres,
		Categories: postgres.NewCategoryRepository(pool),
		Products:   postgres.NewProductRepository(pool),
		Tx:         postgres.NewTxRunner(pool),
		ping:       pool.Ping,
		close:      pool.Close,
	}, nil
}

func openSQLite(cfg config.DBConfig) (*Store, error) {
	db, err := sqlite.Open(cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite sql.DB: %w", err)
	}
	if cfg.AutoMigrate {
		if err := sqlite.Migrate(db); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}
	return &Store{
		Driver:     config.DriverSQLite,
		Categories: sqlite.NewCategoryRepository(db),
		Products:   sqlite.NewProductRepository(db),
		Tx:         sqlite.NewTxRunner(db),
		ping:       sqlDB.PingContext,
		close:      func() { _ = sqlDB.Close() },
	}, nil
}

// Ping verifica la conexión; lo usa /health.
func (s *Store) Ping(ctx context.Context) error { return s.ping(ctx) }

// Close libera las conexiones.
func (s *Store) Close() { s.close() }
