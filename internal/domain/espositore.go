package domain

import (
	"errors"
	"strings"
)

var ErrImageIndexOutOfRange = errors.New("image index out of range")

// Espositore is an exhibitor profile. Optional fields are empty strings or
// nil slices and are omitted from JSON, never stored as empty values.
type Espositore struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	LogoURL      string   `json:"logoUrl"`
	Website      string   `json:"website,omitempty"`
	PhoneNumber  string   `json:"phoneNumber,omitempty"`
	Email        string   `json:"email,omitempty"`
	FairLocation string   `json:"fairLocation,omitempty"`
	Images       []string `json:"images,omitempty"`
	Fiere        []string `json:"fiere,omitempty"`
	Categories   []string `json:"categories,omitempty"`
}

// AddImage appends a trimmed gallery URL. Blank URLs are dropped; there is
// no deduplication and no check that the URL points at a real image.
func (e *Espositore) AddImage(url string) bool {
	trimmed := strings.TrimSpace(url)
	if trimmed == "" {
		return false
	}

	e.Images = append(e.Images, trimmed)

	return true
}

// RemoveImage removes the gallery entry at the given position.
func (e *Espositore) RemoveImage(index int) error {
	if index < 0 || index >= len(e.Images) {
		return ErrImageIndexOutOfRange
	}

	e.Images = append(e.Images[:index], e.Images[index+1:]...)

	return nil
}

// LegacyEspositore is the older schema variant with a single free-text
// category and no fair or category id lists. It is accepted on ingest only.
type LegacyEspositore struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	LogoURL      string   `json:"logoUrl"`
	Website      string   `json:"website,omitempty"`
	PhoneNumber  string   `json:"phoneNumber,omitempty"`
	FairLocation string   `json:"fairLocation,omitempty"`
	Category     string   `json:"category,omitempty"`
	Images       []string `json:"images,omitempty"`
}

// EspositoreFromLegacy migrates the old single-category shape into the
// canonical one. The category string is matched against the catalog by name;
// an unknown name is dropped silently, same as any stale reference.
func EspositoreFromLegacy(legacy LegacyEspositore, categorie []Categoria) Espositore {
	e := Espositore{
		ID:           legacy.ID,
		Name:         legacy.Name,
		Description:  legacy.Description,
		LogoURL:      legacy.LogoURL,
		Website:      legacy.Website,
		PhoneNumber:  legacy.PhoneNumber,
		FairLocation: legacy.FairLocation,
		Images:       legacy.Images,
	}

	if legacy.Category == "" {
		return e
	}

	for _, c := range categorie {
		if strings.EqualFold(c.Nome, legacy.Category) {
			e.Categories = []string{c.ID}
			break
		}
	}

	return e
}
