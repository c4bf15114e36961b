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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository sobre gorm/SQLite (usable con db o tx).
type CategoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	m := categoryFromEntity(c)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return translate("insert category", err)
	}
	c.ID = m.ID
	return nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	return r.take(ctx, "id = ?", id)
}

func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	return r.take(ctx, "name = ?", name)
}

func (r *CategoryRepo) take(ctx context.Context, cond string, arg any) (*entity.Category, error) {
	var m CategoryModel
	err := r.db.WithContext(ctx).Where(cond, arg).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return m.toEntity(), nil
}

// Update escribe todos los campos editables, incluidos los valores cero (is_active=false).
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	res := r.db.WithContext(ctx).Model(&CategoryModel{}).Where("id = ?", c.ID).Updates(map[string]any{
		"name":        c.Name,
		"description": c.Description,
		"is_active":   c.IsActive,
	})
	if res.Error != nil {
		return translate("update category", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CategoryRepo) List(ctx context.Context, limit, offset int) ([]*entity.Category, error) {
	var rows []CategoryModel
	if err := r.db.WithContext(ctx).Order("id").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	list := make([]*entity.Category, 0, len(rows))
	for _, m := range rows {
		list = append(list, m.toEntity())
	}
	return list, nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&CategoryModel{}, id)
	if res.Error != nil {
		return translate("delete category", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
