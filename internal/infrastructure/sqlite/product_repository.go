package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre gorm/SQLite (usable con db o tx).
type ProductRepo struct {
	db *gorm.DB
}

// NewProductRepository construye el adaptador.
func NewProductRepository(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	m := productFromEntity(p)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return translate("insert product", err)
	}
	p.ID = m.ID
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var m ProductModel
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return m.toEntity(), nil
}

func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	res := r.db.WithContext(ctx).Model(&ProductModel{}).Where("id = ?", p.ID).Updates(map[string]any{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"stock":       p.Stock,
		"category_id": p.CategoryID,
	})
	if res.Error != nil {
		return translate("update product", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	q := r.db.WithContext(ctx).Order("id").Limit(limit).Offset(offset)
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	var rows []ProductModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	list := make([]*entity.Product, 0, len(rows))
	for _, m := range rows {
		list = append(list, m.toEntity())
	}
	return list, nil
}

func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&ProductModel{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
