package catalog

// NutritionFacts holds per-serving nutrition values, when known.
type NutritionFacts struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fiber    int `json:"fiber"`
	Sodium   int `json:"sodium"`
}

// Product is one catalog entry. Prices are whole NOK; conversion to
// øre happens only when building payment-processor line items.
type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          int             `json:"price"`
	Image          string          `json:"image"`
	Category       string          `json:"category"`
	InStock        bool            `json:"inStock"`
	Weight         string          `json:"weight"`
	Ingredients    []string        `json:"ingredients"`
	NutritionFacts *NutritionFacts `json:"nutritionFacts,omitempty"`
}

var products = []Product{
	{
		ID:          "1",
		Name:        "Klassisk Sauerkraut",
		Description: "Vår tradisjonelle sauerkraut laget av norsk hvitløk og havsalt. Fermentert i 4 uker for optimal smak og probiotika.",
		Price:       89,
		Image:       "https://images.unsplash.com/photo-1594736797933-d0401ba2fe65?w=500&h=500&fit=crop",
		Category:    "Klassisk",
		InStock:     true,
		Weight:      "500g",
		Ingredients: []string{"Norsk hvitløk", "Havsalt", "Naturlige melkesyrebakterier"},
	},
	{
		ID:          "2",
		Name:        "Krydret Sauerkraut",
		Description: "Sauerkraut med en spennende blanding av karve, pepper og dill. Perfekt til grillmat og tradisjonelle retter.",
		Price:       99,
		Image:       "https://images.unsplash.com/photo-1566385101042-1a0aa0c1268c?w=500&h=500&fit=crop",
		Category:    "Krydret",
		InStock:     true,
		Weight:      "500g",
		Ingredients: []string{"Norsk hvitløk", "Havsalt", "Karve", "Pepper", "Dill"},
	},
	{
		ID:          "3",
		Name:        "Rødkål Sauerkraut",
		Description: "Vakker lilla sauerkraut laget av norsk rødkål. Rik på antioksidanter og har en mild, søtlig smak.",
		Price:       109,
		Image:       "https://images.unsplash.com/photo-1518843875459-f738682238a6?w=500&h=500&fit=crop",
		Category:    "Premium",
		InStock:     true,
		Weight:      "500g",
		Ingredients: []string{"Norsk rødkål", "Havsalt", "Naturlige melkesyrebakterier"},
	},
	{
		ID:          "4",
		Name:        "Ingefær & Gulrot Sauerkraut",
		Description: "En moderne vri på klassikeren med fersk ingefær og søte gulrøtter. Perfekt for dem som liker litt ekstra smak.",
		Price:       119,
		Image:       "https://images.unsplash.com/photo-1598170845058-32b9d6a5da37?w=500&h=500&fit=crop",
		Category:    "Premium",
		InStock:     true,
		Weight:      "500g",
		Ingredients: []string{"Norsk hvitløk", "Gulrøtter", "Fersk ingefær", "Havsalt"},
	},
	{
		ID:          "5",
		Name:        "Kimchi-Inspirert Sauerkraut",
		Description: "Norsk-koreansk fusjon med chili, hvitløk og ingefær. Sterk og smakfull - ikke for sarte sjeler!",
		Price:       129,
		Image:       "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?w=500&h=500&fit=crop",
		Category:    "Spesial",
		InStock:     true,
		Weight:      "500g",
		Ingredients: []string{"Norsk hvitløk", "Chili", "Hvitløk", "Ingefær", "Havsalt"},
	},
	{
		ID:          "6",
		Name:        "Økologisk Sauerkraut",
		Description: "Laget av 100% økologisk norsk kål. Sertifisert økologisk og fermentert med tradisjonelle metoder.",
		Price:       139,
		Image:       "https://images.unsplash.com/photo-1576045057995-568f588f82fb?w=500&h=500&fit=crop",
		Category:    "Økologisk",
		InStock:     true,
		Weight:      "500g",
		Ingredients: []string{"Økologisk norsk hvitløk", "Økologisk havsalt"},
	},
}

// Products returns the full catalog. The slice is a copy; callers can
// reorder or filter it without touching the shared data.
func Products() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// ByID returns the product with the given id, or false if the id is
// not in the catalog.
func ByID(id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
