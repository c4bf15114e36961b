package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	_ "github.com/jhoicas/catalogo-api/docs"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/catalogo-api/internal/infrastructure/pdf"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("conexión a la base de datos")
	}
	defer st.Close()

	categoryUC := usecase.NewCategoryUseCase(st.Categories)
	productUC := usecase.NewProductUseCase(st.Products, st.Tx)
	reportUC := usecase.NewReportUseCase(st.Products, st.Categories, infrapdf.NewMarotoPDFGenerator())

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: las escrituras no requieren autenticación")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(httpRouter.RequestLogger(log.Zerolog()))
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.HTTP.CORSOrigins, ","),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		// Fiber no admite credenciales con comodín.
		AllowCredentials: !containsWildcard(cfg.HTTP.CORSOrigins),
	}))

	// Swagger UI: http://localhost:<port>/docs (solo si existe el swagger.json)
	if _, err := os.Stat(cfg.HTTP.DocsPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.DocsPath,
			Path:     "docs",
			Title:    cfg.App.Name,
		}))
	} else {
		log.Warn().Str("path", cfg.HTTP.DocsPath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC: categoryUC,
		ProductUC:  productUC,
		ReportUC:   reportUC,
		Pagination: dto.PageDefaults{
			DefaultLimit: cfg.Pagination.DefaultLimit,
			MaxLimit:     cfg.Pagination.MaxLimit,
		},
		JWTSecret:   cfg.JWT.Secret,
		JWTIssuer:   cfg.JWT.Issuer,
		ServiceName: cfg.App.Name,
		DocsPath:    "/docs",
		HealthCheck: st.Ping,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
