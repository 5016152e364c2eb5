package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sposioggi/espositori-api/internal/domain"
	"github.com/sposioggi/espositori-api/internal/repository"
)

var (
	ErrEspositoreNotFound   = repository.ErrEspositoreNotFound
	ErrImageIndexOutOfRange = domain.ErrImageIndexOutOfRange
)

type EspositoreRepository interface {
	FindAll(ctx context.Context) ([]domain.Espositore, error)
	FindByID(ctx context.Context, id string) (domain.Espositore, error)
	Create(ctx context.Context, espositore domain.Espositore) (domain.Espositore, error)
	Update(ctx context.Context, espositore domain.Espositore) (domain.Espositore, error)
	Delete(ctx context.Context, id string) error
}

type EspositoreService struct {
	repo          EspositoreRepository
	categoriaRepo CategoriaRepository
}

func NewEspositoreService(repo EspositoreRepository, categoriaRepo CategoriaRepository) *EspositoreService {
	return &EspositoreService{
		repo:          repo,
		categoriaRepo: categoriaRepo,
	}
}

// Filter returns the exhibitors passing the active selections, in the input
// order. An empty categoriaID or an empty fiereIDs set disables that
// constraint; with both active an exhibitor must pass both. An exhibitor
// without a categories (or fiere) list never matches once the corresponding
// filter is active.
func Filter(espositori []domain.Espositore, categoriaID string, fiereIDs []string) []domain.Espositore {
	filtered := make([]domain.Espositore, 0, len(espositori))

	for _, e := range espositori {
		if categoriaID != "" && !contains(e.Categories, categoriaID) {
			continue
		}
		if len(fiereIDs) > 0 && !intersects(e.Fiere, fiereIDs) {
			continue
		}

		filtered = append(filtered, e)
	}

	return filtered
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}

	return false
}

func intersects(ids, selected []string) bool {
	for _, v := range ids {
		if contains(selected, v) {
			return true
		}
	}

	return false
}

// ListEspositori returns the catalog filtered by the given selections.
func (s *EspositoreService) ListEspositori(ctx context.Context, categoriaID string, fiereIDs []string) ([]domain.Espositore, error) {
	espositori, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return Filter(espositori, categoriaID, fiereIDs), nil
}

func (s *EspositoreService) GetEspositore(ctx context.Context, id string) (domain.Espositore, error) {
	espositore, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Espositore{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return espositore, nil
}

func (s *EspositoreService) CreateEspositore(ctx context.Context, espositore domain.Espositore) (domain.Espositore, error) {
	espositore.ID = uuid.NewString()

	created, err := s.repo.Create(ctx, espositore)
	if err != nil {
		return domain.Espositore{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// CreateFromLegacy ingests a record authored against the old single-category
// schema, folding the category name into the canonical id list.
func (s *EspositoreService) CreateFromLegacy(ctx context.Context, legacy domain.LegacyEspositore) (domain.Espositore, error) {
	categorie, err := s.categoriaRepo.FindAll(ctx)
	if err != nil {
		return domain.Espositore{}, fmt.Errorf("s.categoriaRepo.FindAll -> %w", err)
	}

	espositore := domain.EspositoreFromLegacy(legacy, categorie)
	espositore.ID = uuid.NewString()

	created, err := s.repo.Create(ctx, espositore)
	if err != nil {
		return domain.Espositore{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// UpdateFromLegacy replaces a record submitted in the old single-category
// schema, resolving the category name the same way create does.
func (s *EspositoreService) UpdateFromLegacy(ctx context.Context, legacy domain.LegacyEspositore) (domain.Espositore, error) {
	categorie, err := s.categoriaRepo.FindAll(ctx)
	if err != nil {
		return domain.Espositore{}, fmt.Errorf("s.categoriaRepo.FindAll -> %w", err)
	}

	updated, err := s.repo.Update(ctx, domain.EspositoreFromLegacy(legacy, categorie))
	if err != nil {
		return domain.Espositore{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *EspositoreService) UpdateEspositore(ctx context.Context, espositore domain.Espositore) (domain.Espositore, error) {
	updated, err := s.repo.Update(ctx, espositore)
	if err != nil {
		return domain.Espositore{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *EspositoreService) DeleteEspositore(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *EspositoreService) AddImage(ctx context.Context, id, url string) (domain.Espositore, error) {
	espositore, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Espositore{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !espositore.AddImage(url) {
		return espositore, nil
	}

	updated, err := s.repo.Update(ctx, espositore)
	if err != nil {
		return domain.Espositore{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *EspositoreService) RemoveImage(ctx context.Context, id string, index int) (domain.Espositore, error) {
	espositore, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Espositore{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = espositore.RemoveImage(index); err != nil {
		return domain.Espositore{}, err
	}

	updated, err := s.repo.Update(ctx, espositore)
	if err != nil {
		return domain.Espositore{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}
