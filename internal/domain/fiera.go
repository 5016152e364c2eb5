package domain

// Fiera is a dated trade-show event. Data is a human-readable date range
// ("10 e 11 gennaio 2025"), not a structured date.
type Fiera struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
	Data string `json:"data"`
}

// Option is the {value, label} shape consumed by selection widgets.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func OpzioniFiere(fiere []Fiera) []Option {
	opzioni := make([]Option, 0, len(fiere))
	for _, f := range fiere {
		opzioni = append(opzioni, Option{
			Value: f.ID,
			Label: f.Nome + " | " + f.Data,
		})
	}

	return opzioni
}

// FiereLabels resolves fair ids to their option labels, silently skipping
// ids that no longer resolve.
func FiereLabels(ids []string, fiere []Fiera) []string {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		for _, f := range fiere {
			if f.ID == id {
				labels = append(labels, f.Nome+" | "+f.Data)
				break
			}
		}
	}

	return labels
}
