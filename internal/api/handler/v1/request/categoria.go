package request

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/sposioggi/espositori-api/internal/domain"
)

type SaveCategoriaRequest struct {
	Nome string `json:"nome"`
}

func (req *SaveCategoriaRequest) Validate() error {
	req.Nome = strings.TrimSpace(req.Nome)

	return validation.ValidateStruct(
		req,
		validation.Field(&req.Nome, validation.Required),
	)
}

func (req *SaveCategoriaRequest) ToDomain() domain.Categoria {
	return domain.Categoria{
		Nome: req.Nome,
	}
}
