package repository

import (
	"context"
	"fmt"

	"github.com/sposioggi/espositori-api/internal/domain"
	"github.com/sposioggi/espositori-api/internal/repository/dao"
)

var ErrCategoriaNotFound = dao.ErrCategoriaNotFound

type CategoriaDAO interface {
	FindAll(ctx context.Context) ([]dao.Categoria, error)
	Insert(ctx context.Context, categoria dao.Categoria) (dao.Categoria, error)
	Update(ctx context.Context, categoria dao.Categoria) (dao.Categoria, error)
	Delete(ctx context.Context, id string) error
}

type CategoriaRepository struct {
	dao CategoriaDAO
}

func NewCategoriaRepository(dao CategoriaDAO) *CategoriaRepository {
	return &CategoriaRepository{
		dao: dao,
	}
}

func (r *CategoriaRepository) FindAll(ctx context.Context) ([]domain.Categoria, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	categorie := make([]domain.Categoria, 0, len(found))
	for _, c := range found {
		categorie = append(categorie, domain.Categoria{ID: c.ID, Nome: c.Nome})
	}

	return categorie, nil
}

func (r *CategoriaRepository) Create(ctx context.Context, categoria domain.Categoria) (domain.Categoria, error) {
	created, err := r.dao.Insert(ctx, dao.Categoria{ID: categoria.ID, Nome: categoria.Nome})
	if err != nil {
		return domain.Categoria{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return domain.Categoria{ID: created.ID, Nome: created.Nome}, nil
}

func (r *CategoriaRepository) Update(ctx context.Context, categoria domain.Categoria) (domain.Categoria, error) {
	updated, err := r.dao.Update(ctx, dao.Categoria{ID: categoria.ID, Nome: categoria.Nome})
	if err != nil {
		return domain.Categoria{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return domain.Categoria{ID: updated.ID, Nome: updated.Nome}, nil
}

func (r *CategoriaRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}
