package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `id, name, description, is_active, created_at`

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create inserta la categoría y asigna el ID generado.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	query := `
		INSERT INTO categories (name, description, is_active, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, c.Name, c.Description, c.IsActive, c.CreatedAt).Scan(&c.ID)
	return translate("insert category", err)
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	return r.getOne(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
}

func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	return r.getOne(ctx, `SELECT `+categoryColumns+` FROM categories WHERE name = $1`, name)
}

func (r *CategoryRepo) getOne(ctx context.Context, query string, arg any) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(ctx, query, arg).Scan(&c.ID, &c.Name, &c.Description, &c.IsActive, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// Update reemplaza los campos editables. ErrNotFound si el ID no existe.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE categories SET name = $2, description = $3, is_active = $4 WHERE id = $1`,
		c.ID, c.Name, c.Description, c.IsActive,
	)
	if err != nil {
		return translate("update category", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve categorías ordenadas por ID.
func (r *CategoryRepo) List(ctx context.Context, limit, offset int) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+categoryColumns+` FROM categories ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina la categoría. ErrReferenced si aún tiene productos.
func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return translate("delete category", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
