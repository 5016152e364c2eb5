package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrFieraNotFound = errors.New("fiera not found")

type Fiera struct {
	ID string `gorm:"primaryKey"`

	Nome string `gorm:"not null"`
	Data string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type FieraDAO struct {
	db *gorm.DB
}

func NewFieraDAO(db *gorm.DB) *FieraDAO {
	return &FieraDAO{
		db: db,
	}
}

func (d *FieraDAO) FindAll(ctx context.Context) ([]Fiera, error) {
	var fiere []Fiera

	result := d.db.WithContext(ctx).Order("rowid").Find(&fiere)
	if result.Error != nil {
		return nil, result.Error
	}

	return fiere, nil
}

func (d *FieraDAO) Insert(ctx context.Context, fiera Fiera) (Fiera, error) {
	result := d.db.WithContext(ctx).Create(&fiera)
	if result.Error != nil {
		return Fiera{}, result.Error
	}

	return fiera, nil
}

func (d *FieraDAO) Update(ctx context.Context, fiera Fiera) (Fiera, error) {
	var existing Fiera
	result := d.db.WithContext(ctx).First(&existing, "id = ?", fiera.ID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Fiera{}, ErrFieraNotFound
		}

		return Fiera{}, result.Error
	}

	fiera.CreatedAt = existing.CreatedAt
	result = d.db.WithContext(ctx).Save(&fiera)
	if result.Error != nil {
		return Fiera{}, result.Error
	}

	return fiera, nil
}

func (d *FieraDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&Fiera{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	return nil
}
