package http_test

import (
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_CreateAndGet(t *testing.T) {
	app := newTestApp(t, "")

	created := createCategory(t, app, "Bebidas")
	assert.NotZero(t, created.ID)
	assert.True(t, created.IsActive, "is_active por defecto true")
	assert.Nil(t, created.Description)
	assert.NotEmpty(t, created.CreatedAt)

	resp := do(t, app, http.MethodGet, fmt.Sprintf("/categories/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[categoryJSON](t, resp)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Bebidas", got.Name)
}

func TestCategories_DuplicateIs400Conflict(t *testing.T) {
	app := newTestApp(t, "")
	createCategory(t, app, "Bebidas")

	resp := do(t, app, http.MethodPost, "/categories/", map[string]any{"name": " Bebidas "})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[errorJSON](t, resp)
	assert.Equal(t, "CONFLICT", body.Code)
	assert.Equal(t, "Category already registered", body.Message)
}

func TestCategories_NotFound(t *testing.T) {
	app := newTestApp(t, "")

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/categories/42"},
		{http.MethodPut, "/categories/42"},
		{http.MethodDelete, "/categories/42"},
	} {
		var body any
		if tc.method == http.MethodPut {
			body = map[string]any{"name": "x"}
		}
		resp := do(t, app, tc.method, tc.path, body)
		require.Equal(t, http.StatusNotFound, resp.StatusCode, tc.method)
		e := decode[errorJSON](t, resp)
		assert.Equal(t, "NOT_FOUND", e.Code)
		assert.Equal(t, "Category not found", e.Message)
	}
}

func TestCategories_PartialUpdate(t *testing.T) {
	app := newTestApp(t, "")
	resp := do(t, app, http.MethodPost, "/categories/", map[string]any{"name": "Bebidas", "description": "frías"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[categoryJSON](t, resp)

	resp = do(t, app, http.MethodPut, fmt.Sprintf("/categories/%d", created.ID), map[string]any{"is_active": false})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[categoryJSON](t, resp)

	assert.False(t, updated.IsActive)
	assert.Equal(t, "Bebidas", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "frías", *updated.Description)
}

func TestCategories_UpdateDescriptionNullClears(t *testing.T) {
	app := newTestApp(t, "")
	resp := do(t, app, http.MethodPost, "/categories/", map[string]any{"name": "Bebidas", "description": "frías"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[categoryJSON](t, resp)
	path := fmt.Sprintf("/categories/%d", created.ID)

	resp = do(t, app, http.MethodPut, path, map[string]any{"name": "Bebidas frías"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	kept := decode[categoryJSON](t, resp)
	require.NotNil(t, kept.Description)
	assert.Equal(t, "frías", *kept.Description)

	resp = do(t, app, http.MethodPut, path, map[string]any{"description": nil})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cleared := decode[categoryJSON](t, resp)
	assert.Nil(t, cleared.Description)
	assert.Equal(t, "Bebidas frías", cleared.Name)

	resp = do(t, app, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, decode[categoryJSON](t, resp).Description)
}

func TestCategories_RenameOntoExistingIsConflict(t *testing.T) {
	app := newTestApp(t, "")
	createCategory(t, app, "Bebidas")
	snacks := createCategory(t, app, "Snacks")

	resp := do(t, app, http.MethodPut, fmt.Sprintf("/categories/%d", snacks.ID), map[string]any{"name": "Bebidas"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCategories_Validation(t *testing.T) {
	app := newTestApp(t, "")

	resp := do(t, app, http.MethodPost, "/categories/", map[string]any{"name": ""})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	e := decode[errorJSON](t, resp)
	assert.Equal(t, "VALIDATION", e.Code)
	assert.Equal(t, "name is required", e.Message)

	resp = do(t, app, http.MethodGet, "/categories/abc", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCategories_InvalidBody(t *testing.T) {
	app := newTestApp(t, "")

	resp := do(t, app, http.MethodPost, "/categories/", "no es un objeto")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode[errorJSON](t, resp).Code)
}

func TestCategories_ListSkipLimit(t *testing.T) {
	app := newTestApp(t, "")
	for _, n := range []string{"A", "B", "C", "D"} {
		createCategory(t, app, n)
	}

	resp := do(t, app, http.MethodGet, "/categories/?skip=1&limit=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]categoryJSON](t, resp)
	require.Len(t, list, 2)
	assert.Equal(t, "B", list[0].Name)
	assert.Equal(t, "C", list[1].Name)

	resp = do(t, app, http.MethodGet, "/categories/?limit=0", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]categoryJSON](t, resp))

	resp = do(t, app, http.MethodGet, "/categories/?limit=abc", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]categoryJSON](t, resp), 4, "limit no numérico usa el default")

	resp = do(t, app, http.MethodGet, "/categories?skip=99", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestCategories_DeleteWithProductsRejected(t *testing.T) {
	app := newTestApp(t, "")
	cat := createCategory(t, app, "Bebidas")
	p := createProduct(t, app, map[string]any{"name": "Agua", "price": 1.5, "category_id": cat.ID})

	path := fmt.Sprintf("/categories/%d", cat.ID)
	resp := do(t, app, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Category has associated products", decode[errorJSON](t, resp).Message)

	resp = do(t, app, http.MethodDelete, fmt.Sprintf("/products/%d", p.ID), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, app, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, raw)
}
