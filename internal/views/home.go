package views

// Home is the home page payload. Sections are empty while Loading.
type Home struct {
	Loading      bool      `json:"loading"`
	Cheapest     []Product `json:"cheapest"`
	Trending     []Product `json:"trending"`
	CategoryName string    `json:"category_name"`
	Category     []Product `json:"category"`
}

func BuildHome(ps []Product, category string) Home {
	h := Home{
		Loading:      len(ps) == 0,
		CategoryName: category,
		Cheapest:     []Product{},
		Trending:     []Product{},
		Category:     []Product{},
	}
	if h.Loading {
		return h
	}

	h.Cheapest = Cheapest(ps, DisplayCap)
	h.Trending = Trending(ps, DisplayCap)
	h.Category = ByCategory(ps, category, DisplayCap)
	return h
}
