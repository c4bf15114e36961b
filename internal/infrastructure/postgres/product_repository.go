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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, description, price, stock, category_id, created_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y asigna el ID generado.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (name, description, price, stock, category_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.Name, p.Description, p.Price, p.Stock, p.CategoryID, p.CreatedAt,
	).Scan(&p.ID)
	return translate("insert product", err)
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update reemplaza los campos editables. ErrNotFound si el ID no existe.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, stock = $5, category_id = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, p.ID, p.Name, p.Description, p.Price, p.Stock, p.CategoryID)
	if err != nil {
		return translate("update product", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos por ID ascendente, opcionalmente de una sola categoría.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE ($1::bigint IS NULL OR category_id = $1)
		ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, f.CategoryID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
