package usecase

import (
	"context"
	"errors"
	"sort"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// memStore simula las constraints de la base (UNIQUE en nombre de categoría, FK RESTRICT).
type memStore struct {
	categories map[int64]entity.Category
	products   map[int64]entity.Product
	nextID     int64
	failWith   error // si no es nil, toda operación falla con este error
	txCalls    int
}

func newMemStore() *memStore {
	return &memStore{categories: map[int64]entity.Category{}, products: map[int64]entity.Product{}}
}

type memCategoryRepo struct{ s *memStore }
type memProductRepo struct{ s *memStore }

func (s *memStore) Categories() *memCategoryRepo { return &memCategoryRepo{s: s} }
func (s *memStore) Products() *memProductRepo    { return &memProductRepo{s: s} }

func (s *memStore) Run(ctx context.Context, fn func(repository.CategoryRepository, repository.ProductRepository) error) error {
	s.txCalls++
	cats := make(map[int64]entity.Category, len(s.categories))
	for k, v := range s.categories {
		cats[k] = v
	}
	prods := make(map[int64]entity.Product, len(s.products))
	for k, v := range s.products {
		prods[k] = v
	}
	if err := fn(s.Categories(), s.Products()); err != nil {
		s.categories, s.products = cats, prods // rollback
		return err
	}
	return nil
}

func (r *memCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	if r.s.failWith != nil {
		return r.s.failWith
	}
	for _, existing := range r.s.categories {
		if existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.nextID++
	c.ID = r.s.nextID
	r.s.categories[c.ID] = *c
	return nil
}

func (r *memCategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memCategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	for _, c := range r.s.categories {
		if c.Name == name {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	if _, ok := r.s.categories[c.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, existing := range r.s.categories {
		if id != c.ID && existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.categories[c.ID] = *c
	return nil
}

func (r *memCategoryRepo) List(_ context.Context, limit, offset int) ([]*entity.Category, error) {
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	ids := make([]int64, 0, len(r.s.categories))
	for id := range r.s.categories {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var out []*entity.Category
	for _, id := range page(ids, limit, offset) {
		c := r.s.categories[id]
		out = append(out, &c)
	}
	return out, nil
}

func (r *memCategoryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.categories[id]; !ok {
		return domain.ErrNotFound
	}
	for _, p := range r.s.products {
		if p.CategoryID == id {
			return domain.ErrReferenced
		}
	}
	delete(r.s.categories, id)
	return nil
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	if r.s.failWith != nil {
		return r.s.failWith
	}
	if _, ok := r.s.categories[p.CategoryID]; !ok {
		return domain.ErrReferenced
	}
	r.s.nextID++
	p.ID = r.s.nextID
	r.s.products[p.ID] = *p
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.categories[p.CategoryID]; !ok {
		return domain.ErrReferenced
	}
	r.s.products[p.ID] = *p
	return nil
}

func (r *memProductRepo) List(_ context.Context, f repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	var ids []int64
	for id, p := range r.s.products {
		if f.CategoryID != nil && p.CategoryID != *f.CategoryID {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var out []*entity.Product
	for _, id := range page(ids, limit, offset) {
		p := r.s.products[id]
		out = append(out, &p)
	}
	return out, nil
}

func (r *memProductRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}

func page(ids []int64, limit, offset int) []int64 {
	if offset >= len(ids) {
		return nil
	}
	end := offset + limit
	if end > len(ids) {
		end = len(ids)
	}
	return ids[offset:end]
}

var errDBDown = errors.New("db down")

func ptr[T any](v T) *T { return &v }
