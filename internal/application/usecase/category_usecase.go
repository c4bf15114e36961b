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

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
	now  func() time.Time
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, now: time.Now}
}

// Create crea una categoría. Un nombre ya registrado es ErrCategoryExists.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	in.Normalize()
	if err := dto.Validate(&in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCategoryExists
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	category := &entity.Category{
		Name:        in.Name,
		Description: in.Description,
		IsActive:    isActive,
		CreatedAt:   uc.now().UTC(),
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		// Carrera con otra creación del mismo nombre: la UNIQUE de la base decide.
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrCategoryExists
		}
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	return toCategoryResponse(category), nil
}

// Update aplica solo los campos presentes en la petición.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	in.Normalize()
	if err := dto.Validate(&in); err != nil {
		return nil, err
	}
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	if in.Name != nil && *in.Name != category.Name {
		other, err := uc.repo.GetByName(ctx, *in.Name)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != category.ID {
			return nil, domain.ErrCategoryExists
		}
		category.Name = *in.Name
	}
	if in.Description.Set {
		category.Description = in.Description.Value
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}
	if err := uc.repo.Update(ctx, category); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.ErrCategoryNotFound
		case errors.Is(err, domain.ErrDuplicate):
			return nil, domain.ErrCategoryExists
		}
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List lista categorías con paginación skip/limit, ordenadas por ID.
func (uc *CategoryUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx, page.Limit, page.Skip)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// Delete elimina una categoría. Falla con ErrCategoryInUse si tiene productos (FK RESTRICT).
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	err := uc.repo.Delete(ctx, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return domain.ErrCategoryNotFound
	case errors.Is(err, domain.ErrReferenced):
		return domain.ErrCategoryInUse
	default:
		return err
	}
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}
