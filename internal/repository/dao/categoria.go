package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrCategoriaNotFound = errors.New("categoria not found")

type Categoria struct {
	ID string `gorm:"primaryKey"`

	Nome string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type CategoriaDAO struct {
	db *gorm.DB
}

func NewCategoriaDAO(db *gorm.DB) *CategoriaDAO {
	return &CategoriaDAO{
		db: db,
	}
}

func (d *CategoriaDAO) FindAll(ctx context.Context) ([]Categoria, error) {
	var categorie []Categoria

	result := d.db.WithContext(ctx).Order("rowid").Find(&categorie)
	if result.Error != nil {
		return nil, result.Error
	}

	return categorie, nil
}

func (d *CategoriaDAO) Insert(ctx context.Context, categoria Categoria) (Categoria, error) {
	result := d.db.WithContext(ctx).Create(&categoria)
	if result.Error != nil {
		return Categoria{}, result.Error
	}

	return categoria, nil
}

func (d *CategoriaDAO) Update(ctx context.Context, categoria Categoria) (Categoria, error) {
	var existing Categoria
	result := d.db.WithContext(ctx).First(&existing, "id = ?", categoria.ID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Categoria{}, ErrCategoriaNotFound
		}

		return Categoria{}, result.Error
	}

	categoria.CreatedAt = existing.CreatedAt
	result = d.db.WithContext(ctx).Save(&categoria)
	if result.Error != nil {
		return Categoria{}, result.Error
	}

	return categoria, nil
}

func (d *CategoriaDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&Categoria{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	return nil
}
