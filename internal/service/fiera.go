package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sposioggi/espositori-api/internal/domain"
	"github.com/sposioggi/espositori-api/internal/repository"
)

var ErrFieraNotFound = repository.ErrFieraNotFound

type FieraRepository interface {
	FindAll(ctx context.Context) ([]domain.Fiera, error)
	Create(ctx context.Context, fiera domain.Fiera) (domain.Fiera, error)
	Update(ctx context.Context, fiera domain.Fiera) (domain.Fiera, error)
	Delete(ctx context.Context, id string) error
}

type FieraService struct {
	repo FieraRepository
}

func NewFieraService(repo FieraRepository) *FieraService {
	return &FieraService{
		repo: repo,
	}
}

func (s *FieraService) ListFiere(ctx context.Context) ([]domain.Fiera, error) {
	fiere, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return fiere, nil
}

func (s *FieraService) ListOpzioni(ctx context.Context) ([]domain.Option, error) {
	fiere, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return domain.OpzioniFiere(fiere), nil
}

func (s *FieraService) CreateFiera(ctx context.Context, fiera domain.Fiera) (domain.Fiera, error) {
	fiera.ID = uuid.NewString()

	created, err := s.repo.Create(ctx, fiera)
	if err != nil {
		return domain.Fiera{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *FieraService) UpdateFiera(ctx context.Context, fiera domain.Fiera) (domain.Fiera, error) {
	updated, err := s.repo.Update(ctx, fiera)
	if err != nil {
		return domain.Fiera{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *FieraService) DeleteFiera(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
