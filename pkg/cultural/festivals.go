package cultural

import "Recipe-Hub/domain"

var festivalCatalogue = []domain.Festival{
	{Name: "Diwali", Religion: "HINDU", Region: "India", Month: 11},
	{Name: "Holi", Religion: "HINDU", Region: "North India", Month: 3},
	{Name: "Pongal", Religion: "HINDU", Region: "Tamil Nadu", Month: 1},
	{Name: "Onam", Religion: "HINDU", Region: "Kerala", Month: 9},
	{Name: "Navratri", Religion: "HINDU", Region: "Gujarat", Month: 10},
	{Name: "Eid al-Fitr", Religion: "MUSLIM", Region: "Global", Month: 4},
	{Name: "Ramadan", Religion: "MUSLIM", Region: "Global", Month: 3},
	{Name: "Christmas", Religion: "CHRISTIAN", Region: "Global", Month: 12},
	{Name: "Easter", Religion: "CHRISTIAN", Region: "Global", Month: 4},
	{Name: "Baisakhi", Religion: "SIKH", Region: "Punjab", Month: 4},
	{Name: "Paryushana", Religion: "JAIN", Region: "India", Month: 9},
	{Name: "Hanukkah", Religion: "JEWISH", Region: "Global", Month: 12},
	{Name: "Lunar New Year", Religion: "NONE", Region: "East Asia", Month: 2},
}

// Festivals returns a copy of the catalogue, optionally narrowed to one religion.
func Festivals(religion string) []domain.Festival {
	out := make([]domain.Festival, 0, len(festivalCatalogue))
	for _, f := range festivalCatalogue {
		if religion == "" || f.Religion == religion {
			out = append(out, f)
		}
	}
	return out
}
