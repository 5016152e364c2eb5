package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpzioniCategorie(t *testing.T) {
	categorie := []Categoria{
		{ID: "c-1", Nome: "Fotografia"},
		{ID: "c-2", Nome: "Catering"},
	}

	opzioni := OpzioniCategorie(categorie)

	assert.Equal(t, []Option{
		{Value: "c-1", Label: "Fotografia"},
		{Value: "c-2", Label: "Catering"},
	}, opzioni)
}

func TestCategorieLabels(t *testing.T) {
	categorie := []Categoria{
		{ID: "c-1", Nome: "Fotografia"},
		{ID: "c-2", Nome: "Catering"},
	}

	assert.Equal(t, []string{"Catering", "Fotografia"}, CategorieLabels([]string{"c-2", "c-1"}, categorie))
	assert.Equal(t, []string{"Fotografia"}, CategorieLabels([]string{"c-1", "gone"}, categorie))
	assert.Empty(t, CategorieLabels(nil, categorie))
}
