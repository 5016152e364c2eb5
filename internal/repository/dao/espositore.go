package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrEspositoreNotFound = errors.New("espositore not found")

type Espositore struct {
	ID string `gorm:"primaryKey"`

	Name        string `gorm:"not null"`
	Description string `gorm:"not null"`
	LogoURL     string `gorm:"not null"`

	Website      string
	PhoneNumber  string
	Email        string
	FairLocation string

	Images     []string `gorm:"serializer:json"`
	Fiere      []string `gorm:"serializer:json"`
	Categories []string `gorm:"serializer:json"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type EspositoreDAO struct {
	db *gorm.DB
}

func NewEspositoreDAO(db *gorm.DB) *EspositoreDAO {
	return &EspositoreDAO{
		db: db,
	}
}

// FindAll returns every exhibitor in insertion order.
func (d *EspositoreDAO) FindAll(ctx context.Context) ([]Espositore, error) {
	var espositori []Espositore

	result := d.db.WithContext(ctx).Order("rowid").Find(&espositori)
	if result.Error != nil {
		return nil, result.Error
	}

	return espositori, nil
}

func (d *EspositoreDAO) FindByID(ctx context.Context, id string) (Espositore, error) {
	var espositore Espositore

	result := d.db.WithContext(ctx).First(&espositore, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Espositore{}, ErrEspositoreNotFound
		}

		return Espositore{}, result.Error
	}

	return espositore, nil
}

func (d *EspositoreDAO) Insert(ctx context.Context, espositore Espositore) (Espositore, error) {
	result := d.db.WithContext(ctx).Create(&espositore)
	if result.Error != nil {
		return Espositore{}, result.Error
	}

	return espositore, nil
}

// Update replaces the whole record. Partial updates do not exist here, the
// admin editor always submits the full form.
func (d *EspositoreDAO) Update(ctx context.Context, espositore Espositore) (Espositore, error) {
	var existing Espositore
	result := d.db.WithContext(ctx).First(&existing, "id = ?", espositore.ID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Espositore{}, ErrEspositoreNotFound
		}

		return Espositore{}, result.Error
	}

	espositore.CreatedAt = existing.CreatedAt
	result = d.db.WithContext(ctx).Save(&espositore)
	if result.Error != nil {
		return Espositore{}, result.Error
	}

	return espositore, nil
}

func (d *EspositoreDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&Espositore{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	return nil
}
