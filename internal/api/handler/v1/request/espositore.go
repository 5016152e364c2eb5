package request

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/sposioggi/espositori-api/internal/domain"
)

const minDescriptionLength = 100

// Permissive by design, a structural check only.
var emailExp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	errMissingRequired     = errors.New("name, description and logo URL are required")
	errDescriptionTooShort = errors.New("description must be at least 100 characters")
	errInvalidEmail        = errors.New("invalid email address")
)

// SaveEspositoreRequest is the admin editor payload, used for both create
// and full-record update. The legacy single-category variant is accepted
// through the category field and folded into the id list on ingest.
type SaveEspositoreRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	LogoURL      string   `json:"logoUrl"`
	Website      string   `json:"website"`
	PhoneNumber  string   `json:"phoneNumber"`
	Email        string   `json:"email"`
	FairLocation string   `json:"fairLocation"`
	Category     string   `json:"category"`
	Images       []string `json:"images"`
	Fiere        []string `json:"fiere"`
	Categories   []string `json:"categories"`
}

// Validate trims every field, then applies the editor rules in the order
// the form reports them: required fields, description length, email shape.
func (req *SaveEspositoreRequest) Validate() error {
	req.trim()

	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Description, validation.Required),
		validation.Field(&req.LogoURL, validation.Required),
	)
	if err != nil {
		return errMissingRequired
	}

	if utf8.RuneCountInString(req.Description) < minDescriptionLength {
		return errDescriptionTooShort
	}

	if req.Email != "" && !emailExp.MatchString(req.Email) {
		return errInvalidEmail
	}

	return nil
}

func (req *SaveEspositoreRequest) trim() {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	req.LogoURL = strings.TrimSpace(req.LogoURL)
	req.Website = strings.TrimSpace(req.Website)
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	req.Email = strings.TrimSpace(req.Email)
	req.FairLocation = strings.TrimSpace(req.FairLocation)
	req.Category = strings.TrimSpace(req.Category)

	images := req.Images[:0]
	for _, url := range req.Images {
		if trimmed := strings.TrimSpace(url); trimmed != "" {
			images = append(images, trimmed)
		}
	}
	req.Images = images
}

// IsLegacy reports whether the payload was authored against the old
// single-category schema variant.
func (req *SaveEspositoreRequest) IsLegacy() bool {
	return req.Category != "" && len(req.Categories) == 0
}

// ToDomain produces the normalized record: optional fields empty after
// trimming become absent, empty lists become nil.
func (req *SaveEspositoreRequest) ToDomain() domain.Espositore {
	return domain.Espositore{
		Name:         req.Name,
		Description:  req.Description,
		LogoURL:      req.LogoURL,
		Website:      req.Website,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		FairLocation: req.FairLocation,
		Images:       nilIfEmpty(req.Images),
		Fiere:        nilIfEmpty(req.Fiere),
		Categories:   nilIfEmpty(req.Categories),
	}
}

func (req *SaveEspositoreRequest) ToLegacy() domain.LegacyEspositore {
	return domain.LegacyEspositore{
		Name:         req.Name,
		Description:  req.Description,
		LogoURL:      req.LogoURL,
		Website:      req.Website,
		PhoneNumber:  req.PhoneNumber,
		FairLocation: req.FairLocation,
		Category:     req.Category,
		Images:       nilIfEmpty(req.Images),
	}
}

func nilIfEmpty(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	return values
}

type AddImageRequest struct {
	URL string `json:"url"`
}

func (req *AddImageRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.URL, validation.Required),
	)
}
