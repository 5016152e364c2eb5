package domain

// Categoria is a classification tag applied to exhibitors.
type Categoria struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

func OpzioniCategorie(categorie []Categoria) []Option {
	opzioni := make([]Option, 0, len(categorie))
	for _, c := range categorie {
		opzioni = append(opzioni, Option{
			Value: c.ID,
			Label: c.Nome,
		})
	}

	return opzioni
}

// CategorieLabels resolves category ids to names, silently skipping ids
// that no longer resolve.
func CategorieLabels(ids []string, categorie []Categoria) []string {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		for _, c := range categorie {
			if c.ID == id {
				labels = append(labels, c.Nome)
				break
			}
		}
	}

	return labels
}
