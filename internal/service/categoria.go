package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sposioggi/espositori-api/internal/domain"
	"github.com/sposioggi/espositori-api/internal/repository"
)

var ErrCategoriaNotFound = repository.ErrCategoriaNotFound

type CategoriaRepository interface {
	FindAll(ctx context.Context) ([]domain.Categoria, error)
	Create(ctx context.Context, categoria domain.Categoria) (domain.Categoria, error)
	Update(ctx context.Context, categoria domain.Categoria) (domain.Categoria, error)
	Delete(ctx context.Context, id string) error
}

type CategoriaService struct {
	repo CategoriaRepository
}

func NewCategoriaService(repo CategoriaRepository) *CategoriaService {
	return &CategoriaService{
		repo: repo,
	}
}

func (s *CategoriaService) ListCategorie(ctx context.Context) ([]domain.Categoria, error) {
	categorie, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return categorie, nil
}

func (s *CategoriaService) ListOpzioni(ctx context.Context) ([]domain.Option, error) {
	categorie, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return domain.OpzioniCategorie(categorie), nil
}

func (s *CategoriaService) CreateCategoria(ctx context.Context, categoria domain.Categoria) (domain.Categoria, error) {
	categoria.ID = uuid.NewString()

	created, err := s.repo.Create(ctx, categoria)
	if err != nil {
		return domain.Categoria{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CategoriaService) UpdateCategoria(ctx context.Context, categoria domain.Categoria) (domain.Categoria, error) {
	updated, err := s.repo.Update(ctx, categoria)
	if err != nil {
		return domain.Categoria{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *CategoriaService) DeleteCategoria(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
