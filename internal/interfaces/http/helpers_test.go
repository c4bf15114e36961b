package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/pdf"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/store"
	apphttp "github.com/jhoicas/catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/catalogo-api/pkg/config"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "catalogo-api-test"
)

// newTestApp arma la app completa sobre una base SQLite en memoria.
// secret vacío desactiva la autenticación de escrituras.
func newTestApp(t *testing.T, secret string) *fiber.App {
	t.Helper()
	s, err := store.Open(context.Background(), config.DBConfig{
		Driver: config.DriverSQLite, SQLitePath: ":memory:", AutoMigrate: true,
	})
	require.NoError(t, err)
	t.Cleanup(s.Close)

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC:  usecase.NewCategoryUseCase(s.Categories),
		ProductUC:   usecase.NewProductUseCase(s.Products, s.Tx),
		ReportUC:    usecase.NewReportUseCase(s.Products, s.Categories, pdf.NewMarotoPDFGenerator()),
		Pagination:  dto.PageDefaults{DefaultLimit: 100, MaxLimit: 500},
		JWTSecret:   secret,
		JWTIssuer:   testIssuer,
		ServiceName: "catalogo-api",
		DocsPath:    "/docs",
		HealthCheck: s.Ping,
	})
	return app
}

// do envía la petición; body nil no agrega Content-Type.
func do(t *testing.T, app *fiber.App, method, path string, body any, headers ...string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// categoryJSON y productJSON reflejan el JSON expuesto (price como número).
type categoryJSON struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   string  `json:"created_at"`
}

type productJSON struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	CategoryID  int64   `json:"category_id"`
}

type errorJSON struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func createCategory(t *testing.T, app *fiber.App, name string, headers ...string) categoryJSON {
	t.Helper()
	resp := do(t, app, http.MethodPost, "/categories/", map[string]any{"name": name}, headers...)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[categoryJSON](t, resp)
}

func createProduct(t *testing.T, app *fiber.App, body map[string]any) productJSON {
	t.Helper()
	resp := do(t, app, http.MethodPost, "/products/", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[productJSON](t, resp)
}
