package dao

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Seed loads the static catalog the directory starts from. Fairs and
// categories get fresh ids on every start, exhibitors keep their stable
// sample ids so detail links survive a restart in development.
func Seed(db *gorm.DB) error {
	fiere := make([]Fiera, 0, len(seedFiere))
	for _, f := range seedFiere {
		f.ID = uuid.NewString()
		fiere = append(fiere, f)
	}
	if err := db.Create(&fiere).Error; err != nil {
		return err
	}

	categorie := make([]Categoria, 0, len(seedCategorie))
	for _, c := range seedCategorie {
		c.ID = uuid.NewString()
		categorie = append(categorie, c)
	}
	if err := db.Create(&categorie).Error; err != nil {
		return err
	}

	espositori := seedEspositori
	if err := db.Create(&espositori).Error; err != nil {
		return err
	}

	return nil
}

var seedFiere = []Fiera{
	{Nome: "Fiera Sposi Oggi Belluno", Data: "21 e 22 settembre 2025"},
	{Nome: "Fiera Sposi Oggi Bologna", Data: "27 e 28 settembre 2025"},
	{Nome: "Fiera Sposi Oggi Verona", Data: "4 e 5 ottobre 2025"},
	{Nome: "Fiera Sposi Oggi Padova", Data: "11 e 12 ottobre 2025"},
	{Nome: "Fiera Sposi Oggi Forlì-Cesena", Data: "25 e 26 ottobre 2025"},
	{Nome: "Fiera Sposi Oggi Treviso", Data: "15 e 16 novembre 2025"},
	{Nome: "Fiera Sposi Oggi Bergamo", Data: "22 e 23 novembre 2025"},
	{Nome: "Fiera Sposi Oggi Modena", Data: "10 e 11 gennaio 2025"},
	{Nome: "Fiera Sposi Oggi Vicenza", Data: "17 e 18 gennaio 2025"},
	{Nome: "Fiera Sposi Oggi Mantova", Data: "24 e 25 gennaio 2025"},
}

var seedCategorie = []Categoria{
	{Nome: "Abbigliamento / Atelier"},
	{Nome: "Agenzie di viaggio"},
	{Nome: "Auto a noleggio"},
	{Nome: "Bomboniere"},
	{Nome: "Catering"},
	{Nome: "Celebrante"},
	{Nome: "Estetista"},
	{Nome: "Event planner"},
	{Nome: "Fioreria"},
	{Nome: "Foto o videomaker"},
	{Nome: "Intrattenimento, Musica o Comicità"},
	{Nome: "Location per matrimoni e ricevimenti"},
	{Nome: "Ristorante"},
	{Nome: "Parrucchiere o Hairstylist"},
	{Nome: "Trasporti"},
}

var seedEspositori = []Espositore{
	{
		ID:           "1",
		Name:         "Eleganza Abiti da Sposa",
		Description:  "Collezione esclusiva di abiti da sposa per il tuo giorno speciale. Offriamo un'ampia gamma di stili, dal classico al moderno, per soddisfare tutti i gusti.",
		LogoURL:      "https://images.unsplash.com/photo-1460925895917-afdab827c52f",
		Website:      "https://www.eleganzaspose.it",
		PhoneNumber:  "+39 123 456 7890",
		FairLocation: "Padiglione A, Stand 12",
		Images: []string{
			"https://images.unsplash.com/photo-1460925895917-afdab827c52f",
			"https://images.unsplash.com/photo-1461749280684-dccba630e2f6",
		},
	},
	{
		ID:           "2",
		Name:         "Fiori & Fantasia",
		Description:  "Composizioni floreali uniche per rendere indimenticabile il vostro matrimonio. Dalle decorazioni per la chiesa agli addobbi per il ricevimento.",
		LogoURL:      "https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d",
		Website:      "https://www.fiorifantasia.it",
		PhoneNumber:  "+39 02 8765 4321",
		FairLocation: "Padiglione B, Stand 5",
		Images: []string{
			"https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d",
		},
	},
	{
		ID:           "3",
		Name:         "Dolce Momento Catering",
		Description:  "Servizio catering di alta qualità per matrimoni ed eventi. Menù personalizzati che uniscono tradizione e innovazione per soddisfare ogni palato.",
		LogoURL:      "https://images.unsplash.com/photo-1488590528505-98d2b5aba04b",
		Website:      "https://www.dolcemomento.it",
		PhoneNumber:  "+39 06 1234 5678",
		FairLocation: "Padiglione C, Stand 20",
		Images: []string{
			"https://images.unsplash.com/photo-1488590528505-98d2b5aba04b",
			"https://images.unsplash.com/photo-1581091226825-a6a2a5aee158",
		},
	},
}
