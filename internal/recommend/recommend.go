// Package recommend holds the static wellness recommendations shown to users.
package recommend

// Category groups recommendations by area of wellness.
type Category string

const (
	CategoryLifestyle    Category = "Lifestyle"
	CategoryDiet         Category = "Diet"
	CategoryActivity     Category = "Activity"
	CategoryMentalHealth Category = "Mental Health"
	CategoryHydration    Category = "Hydration"
)

// Recommendation is one piece of general wellness advice.
type Recommendation struct {
	Title       string
	Description string
	Category    Category
}

// Catalog is the full list of recommendations, in display order.
var Catalog = []Recommendation{
	{
		Title:       "Improve Sleep Quality",
		Description: "Maintain a consistent sleep schedule. Avoid screens 1 hour before bed. Keep your room cool and dark.",
		Category:    CategoryLifestyle,
	},
	{
		Title:       "Balanced Nutrition",
		Description: "Include anti-inflammatory foods like berries, leafy greens, and omega-3 rich fish in your diet.",
		Category:    CategoryDiet,
	},
	{
		Title:       "Gentle Exercise",
		Description: "Start with 20 minutes of walking daily. Gentle stretching can help relieve tension and improve mood.",
		Category:    CategoryActivity,
	},
	{
		Title:       "Stress Management",
		Description: "Try deep breathing exercises or guided meditation for 10 minutes daily to reduce anxiety and tension.",
		Category:    CategoryMentalHealth,
	},
	{
		Title:       "Stay Hydrated",
		Description: "Drink at least 8 glasses of water daily. Proper hydration supports overall body function and energy.",
		Category:    CategoryHydration,
	},
}

// WhenToSeekHelp lists situations where the user should see a professional.
var WhenToSeekHelp = []string{
	"Symptoms persist for more than a week or worsen",
	"You experience severe pain, high fever, or difficulty breathing",
	"You feel your condition is not improving with self-care",
	"You need prescription medication or specialized treatment",
}

// symptomCategories maps checkup symptoms to the categories that address them.
var symptomCategories = map[string][]Category{
	"Headache":             {CategoryHydration, CategoryLifestyle},
	"Fever":                {CategoryHydration},
	"Fatigue":              {CategoryLifestyle, CategoryDiet},
	"Cough":                {CategoryHydration},
	"Chest Pain":           {CategoryMentalHealth},
	"Back Pain":            {CategoryActivity},
	"Nausea":               {CategoryDiet, CategoryHydration},
	"Dizziness":            {CategoryHydration},
	"Joint Pain":           {CategoryActivity, CategoryDiet},
	"Skin Issues":          {CategoryDiet, CategoryHydration},
	"Breathing Difficulty": {CategoryMentalHealth},
	"Stomach Pain":         {CategoryDiet},
	"Insomnia":             {CategoryLifestyle, CategoryMentalHealth},
	"Anxiety":              {CategoryMentalHealth, CategoryLifestyle},
}

// ForSymptoms returns the recommendations relevant to the given symptoms, in catalog
// order. When nothing matches, the whole catalog is returned.
func ForSymptoms(symptoms []string) []Recommendation {
	wanted := make(map[Category]bool)
	for _, s := range symptoms {
		for _, c := range symptomCategories[s] {
			wanted[c] = true
		}
	}
	if len(wanted) == 0 {
		return append([]Recommendation(nil), Catalog...)
	}

	var out []Recommendation
	for _, r := range Catalog {
		if wanted[r.Category] {
			out = append(out, r)
		}
	}
	return out
}
