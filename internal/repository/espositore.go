package repository

import (
	"context"
	"fmt"

	"github.com/sposioggi/espositori-api/internal/domain"
	"github.com/sposioggi/espositori-api/internal/repository/dao"
)

var ErrEspositoreNotFound = dao.ErrEspositoreNotFound

type EspositoreDAO interface {
	FindAll(ctx context.Context) ([]dao.Espositore, error)
	FindByID(ctx context.Context, id string) (dao.Espositore, error)
	Insert(ctx context.Context, espositore dao.Espositore) (dao.Espositore, error)
	Update(ctx context.Context, espositore dao.Espositore) (dao.Espositore, error)
	Delete(ctx context.Context, id string) error
}

type EspositoreRepository struct {
	dao EspositoreDAO
}

func NewEspositoreRepository(dao EspositoreDAO) *EspositoreRepository {
	return &EspositoreRepository{
		dao: dao,
	}
}

func (r *EspositoreRepository) FindAll(ctx context.Context) ([]domain.Espositore, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	espositori := make([]domain.Espositore, 0, len(found))
	for _, e := range found {
		espositori = append(espositori, r.daoToDomain(e))
	}

	return espositori, nil
}

func (r *EspositoreRepository) FindByID(ctx context.Context, id string) (domain.Espositore, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Espositore{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EspositoreRepository) Create(ctx context.Context, espositore domain.Espositore) (domain.Espositore, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(espositore))
	if err != nil {
		return domain.Espositore{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EspositoreRepository) Update(ctx context.Context, espositore domain.Espositore) (domain.Espositore, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(espositore))
	if err != nil {
		return domain.Espositore{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *EspositoreRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *EspositoreRepository) daoToDomain(e dao.Espositore) domain.Espositore {
	return domain.Espositore{
		ID:           e.ID,
		Name:         e.Name,
		Description:  e.Description,
		LogoURL:      e.LogoURL,
		Website:      e.Website,
		PhoneNumber:  e.PhoneNumber,
		Email:        e.Email,
		FairLocation: e.FairLocation,
		Images:       e.Images,
		Fiere:        e.Fiere,
		Categories:   e.Categories,
	}
}

func (r *EspositoreRepository) domainToDAO(e domain.Espositore) dao.Espositore {
	return dao.Espositore{
		ID:           e.ID,
		Name:         e.Name,
		Description:  e.Description,
		LogoURL:      e.LogoURL,
		Website:      e.Website,
		PhoneNumber:  e.PhoneNumber,
		Email:        e.Email,
		FairLocation: e.FairLocation,
		Images:       e.Images,
		Fiere:        e.Fiere,
		Categories:   e.Categories,
	}
}
