package repository

import (
	"context"
	"fmt"

	"github.com/sposioggi/espositori-api/internal/domain"
	"github.com/sposioggi/espositori-api/internal/repository/dao"
)

var ErrFieraNotFound = dao.ErrFieraNotFound

type FieraDAO interface {
	FindAll(ctx context.Context) ([]dao.Fiera, error)
	Insert(ctx context.Context, fiera dao.Fiera) (dao.Fiera, error)
	Update(ctx context.Context, fiera dao.Fiera) (dao.Fiera, error)
	Delete(ctx context.Context, id string) error
}

type FieraRepository struct {
	dao FieraDAO
}

func NewFieraRepository(dao FieraDAO) *FieraRepository {
	return &FieraRepository{
		dao: dao,
	}
}

func (r *FieraRepository) FindAll(ctx context.Context) ([]domain.Fiera, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	fiere := make([]domain.Fiera, 0, len(found))
	for _, f := range found {
		fiere = append(fiere, domain.Fiera{ID: f.ID, Nome: f.Nome, Data: f.Data})
	}

	return fiere, nil
}

func (r *FieraRepository) Create(ctx context.Context, fiera domain.Fiera) (domain.Fiera, error) {
	created, err := r.dao.Insert(ctx, dao.Fiera{ID: fiera.ID, Nome: fiera.Nome, Data: fiera.Data})
	if err != nil {
		return domain.Fiera{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return domain.Fiera{ID: created.ID, Nome: created.Nome, Data: created.Data}, nil
}

func (r *FieraRepository) Update(ctx context.Context, fiera domain.Fiera) (domain.Fiera, error) {
	updated, err := r.dao.Update(ctx, dao.Fiera{ID: fiera.ID, Nome: fiera.Nome, Data: fiera.Data})
	if err != nil {
		return domain.Fiera{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return domain.Fiera{ID: updated.ID, Nome: updated.Nome, Data: updated.Data}, nil
}

func (r *FieraRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}
