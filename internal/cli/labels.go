package cli

import "github.com/theirongolddev/tripcost/internal/model"

var categoryLabels = map[string]map[model.Category]string{
	"en": {
		model.RentalCar:  "Rental car",
		model.Lodging:    "Lodging",
		model.Food:       "Food",
		model.Ski:        "Ski",
		model.Activities: "Activities",
		model.Total:      "Total",
	},
	"de": {
		model.RentalCar:  "Mietwagen",
		model.Lodging:    "Unterkunft",
		model.Food:       "Verpflegung",
		model.Ski:        "Skikosten",
		model.Activities: "Aktivitäten",
		model.Total:      "Gesamt",
	},
}

var columnHeaders = map[string][]string{
	"en": {"Category", "Total max.", "Total min.", "p.p. max", "p.p. min"},
	"de": {"Kategorie", "Gesamt max.", "Gesamt min.", "p.P. max", "p.P. min"},
}

// CategoryLabel returns the display name of c. Unknown languages fall back to English.
func CategoryLabel(c model.Category, lang string) string {
	labels, ok := categoryLabels[lang]
	if !ok {
		labels = categoryLabels["en"]
	}
	if l, ok := labels[c]; ok {
		return l
	}
	return c.Key()
}

// TableHeaders returns the column headers of the breakdown table.
func TableHeaders(lang string) []string {
	if h, ok := columnHeaders[lang]; ok {
		return h
	}
	return columnHeaders["en"]
}

// Languages lists the supported label sets.
func Languages() []string {
	return []string{"en", "de"}
}
