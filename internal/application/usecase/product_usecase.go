package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Las escrituras verifican la
// categoría y persisten dentro de la misma transacción.
type ProductUseCase struct {
	repo repository.ProductRepository
	tx   TxRunner
	now  func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, tx TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, tx: tx, now: time.Now}
}

// Create crea un producto. Si category_id no existe devuelve ErrCategoryNotFound.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.Normalize()
	if err := in.Check(); err != nil {
		return nil, err
	}
	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
		CreatedAt:   uc.now().UTC(),
	}
	err := uc.tx.Run(ctx, func(categories repository.CategoryRepository, products repository.ProductRepository) error {
		if err := requireCategory(ctx, categories, product.CategoryID); err != nil {
			return err
		}
		return products.Create(ctx, product)
	})
	if err != nil {
		return nil, translateProductError(err)
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// Update aplica solo los campos presentes. El producto inexistente se reporta antes que la categoría inexistente.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	in.Normalize()
	if err := in.Check(); err != nil {
		return nil, err
	}
	var out *entity.Product
	err := uc.tx.Run(ctx, func(categories repository.CategoryRepository, products repository.ProductRepository) error {
		product, err := products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if in.CategoryID != nil {
			if err := requireCategory(ctx, categories, *in.CategoryID); err != nil {
				return err
			}
			product.CategoryID = *in.CategoryID
		}
		if in.Name != nil {
			product.Name = *in.Name
		}
		if in.Description.Set {
			product.Description = in.Description.Value
		}
		if in.Price != nil {
			product.Price = *in.Price
		}
		if in.Stock != nil {
			product.Stock = *in.Stock
		}
		if err := products.Update(ctx, product); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrProductNotFound
			}
			return err
		}
		out = product
		return nil
	})
	if err != nil {
		return nil, translateProductError(err)
	}
	return toProductResponse(out), nil
}

// List lista productos con paginación y filtro opcional por categoría.
func (uc *ProductUseCase) List(ctx context.Context, q dto.ProductListQuery) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, repository.ProductFilter{CategoryID: q.CategoryID}, q.Limit, q.Skip)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}
	return nil
}

func requireCategory(ctx context.Context, categories repository.CategoryRepository, id int64) error {
	category, err := categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// translateProductError traduce las violaciones de constraint que escapan a las verificaciones previas.
func translateProductError(err error) error {
	switch {
	case errors.Is(err, domain.ErrReferenced):
		// La categoría desapareció entre la verificación y la escritura.
		return domain.ErrCategoryNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		var de *domain.Error
		if errors.As(err, &de) {
			return err
		}
		return domain.Invalid("price must be greater than 0 and stock must not be negative")
	default:
		return err
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
	}
}
