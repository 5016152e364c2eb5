package request

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/sposioggi/espositori-api/internal/domain"
)

type SaveFieraRequest struct {
	Nome string `json:"nome"`
	Data string `json:"data"`
}

func (req *SaveFieraRequest) Validate() error {
	req.Nome = strings.TrimSpace(req.Nome)
	req.Data = strings.TrimSpace(req.Data)

	return validation.ValidateStruct(
		req,
		validation.Field(&req.Nome, validation.Required),
		validation.Field(&req.Data, validation.Required),
	)
}

func (req *SaveFieraRequest) ToDomain() domain.Fiera {
	return domain.Fiera{
		Nome: req.Nome,
		Data: req.Data,
	}
}
