package sqlite

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// CategoryModel fila de la tabla categories.
type CategoryModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"size:100;not null;uniqueIndex"`
	Description *string `gorm:"type:text"`
	IsActive    bool    `gorm:"not null"`
	CreatedAt   time.Time
}

func (CategoryModel) TableName() string { return "categories" }

// ProductModel fila de la tabla products.
type ProductModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"size:100;not null"`
	Description *string         `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric;not null;check:price > 0"`
	Stock       int             `gorm:"not null;check:stock >= 0"`
	CategoryID  int64           `gorm:"not null;index"`
	Category    *CategoryModel  `gorm:"constraint:OnDelete:RESTRICT"`
	CreatedAt   time.Time
}

func (ProductModel) TableName() string { return "products" }

func categoryFromEntity(c *entity.Category) CategoryModel {
	return CategoryModel{ID: c.ID, Name: c.Name, Description: c.Description, IsActive: c.IsActive, CreatedAt: c.CreatedAt}
}

func (m CategoryModel) toEntity() *entity.Category {
	return &entity.Category{ID: m.ID, Name: m.Name, Description: m.Description, IsActive: m.IsActive, CreatedAt: m.CreatedAt}
}

func productFromEntity(p *entity.Product) ProductModel {
	return ProductModel{
		ID: p.ID, Name: p.Name, Description: p.Description, Price: p.Price,
		Stock: p.Stock, CategoryID: p.CategoryID, CreatedAt: p.CreatedAt,
	}
}

func (m ProductModel) toEntity() *entity.Product {
	return &entity.Product{
		ID: m.ID, Name: m.Name, Description: m.Description, Price: m.Price,
		Stock: m.Stock, CategoryID: m.CategoryID, CreatedAt: m.CreatedAt,
	}
}
