package views

import (
	"reflect"
	"testing"
)

func prices(ps []Product) []float64 {
	out := make([]float64, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Price)
	}
	return out
}

func rates(ps []Product) []float64 {
	out := make([]float64, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Rating.Rate)
	}
	return out
}

func ids(ps []Product) []int {
	out := make([]int, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestCheapest(t *testing.T) {
	in := []Product{{ID: 1, Price: 10}, {ID: 2, Price: 5}, {ID: 3, Price: 20}}

	got := Cheapest(in, 2)
	if want := []float64{5, 10}; !reflect.DeepEqual(prices(got), want) {
		t.Fatalf("prices=%v want=%v", prices(got), want)
	}
	if in[0].ID != 1 || in[1].ID != 2 || in[2].ID != 3 {
		t.Fatalf("input reordered: %v", ids(in))
	}
}

func TestCheapest_StableOnTies(t *testing.T) {
	in := []Product{{ID: 1, Price: 5}, {ID: 2, Price: 1}, {ID: 3, Price: 5}, {ID: 4, Price: 5}}

	got := Cheapest(in, -1)
	if want := []int{2, 1, 3, 4}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("ids=%v want=%v", ids(got), want)
	}
}

func TestTrending_StrictThreshold(t *testing.T) {
	in := []Product{
		{ID: 1, Rating: Rating{Rate: 2.9}},
		{ID: 2, Rating: Rating{Rate: 3.0}},
		{ID: 3, Rating: Rating{Rate: 3.1}},
		{ID: 4, Rating: Rating{Rate: 4.5}},
	}

	got := Trending(in, DisplayCap)
	if want := []float64{4.5, 3.1}; !reflect.DeepEqual(rates(got), want) {
		t.Fatalf("rates=%v want=%v", rates(got), want)
	}
}

func TestTrending_CapIgnoresLowRatedCount(t *testing.T) {
	in := []Product{
		{ID: 1, Rating: Rating{Rate: 1, Count: 10000}},
		{ID: 2, Rating: Rating{Rate: 4}},
		{ID: 3, Rating: Rating{Rate: 4}},
		{ID: 4, Rating: Rating{Rate: 5}},
		{ID: 5, Rating: Rating{Rate: 3.5}},
		{ID: 6, Rating: Rating{Rate: 4.2}},
	}

	got := Trending(in, DisplayCap)
	if want := []int{4, 6, 2, 3}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("ids=%v want=%v", ids(got), want)
	}
}

func TestByCategory(t *testing.T) {
	const women = "women's clothing"
	in := []Product{
		{ID: 1, Category: "electronics"},
		{ID: 2, Category: women},
		{ID: 3, Category: "men's clothing"},
		{ID: 4, Category: women},
		{ID: 5, Category: women},
		{ID: 6, Category: "jewelery"},
		{ID: 7, Category: women},
		{ID: 8, Category: women},
	}

	got := ByCategory(in, women, DisplayCap)
	if want := []int{2, 4, 5, 7}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("ids=%v want=%v", ids(got), want)
	}

	men := ByCategory(in, "men's clothing", -1)
	if want := []int{3}; !reflect.DeepEqual(ids(men), want) {
		t.Fatalf("men ids=%v want=%v", ids(men), want)
	}

	if got := ByCategory(in, women, 0); len(got) != 0 {
		t.Fatalf("n=0 returned %v", ids(got))
	}
}

func TestAllAndWishlist_PassThrough(t *testing.T) {
	in := []Product{{ID: 3}, {ID: 1}, {ID: 2}, {ID: 9}, {ID: 8}}

	if got := All(in); !reflect.DeepEqual(ids(got), ids(in)) {
		t.Fatalf("All=%v", ids(got))
	}
	if got := Wishlist(in); !reflect.DeepEqual(ids(got), ids(in)) {
		t.Fatalf("Wishlist=%v", ids(got))
	}
}

func TestCategories(t *testing.T) {
	in := []Product{
		{Category: "men's clothing"},
		{Category: "jewelery"},
		{Category: "men's clothing"},
		{Category: "electronics"},
	}

	want := []string{"men's clothing", "jewelery", "electronics"}
	if got := Categories(in); !reflect.DeepEqual(got, want) {
		t.Fatalf("categories=%v want=%v", got, want)
	}
}

func TestSearch(t *testing.T) {
	in := []Product{
		{ID: 1, Title: "Mens Casual T-Shirt"},
		{ID: 2, Title: "Hard Drive"},
		{ID: 3, Title: "Womens T SHIRT"},
	}

	if got := Search(in, "  t-shirt"); !reflect.DeepEqual(ids(got), []int{1}) {
		t.Fatalf("ids=%v", ids(got))
	}
	if got := Search(in, "shirt"); !reflect.DeepEqual(ids(got), []int{1, 3}) {
		t.Fatalf("ids=%v", ids(got))
	}
	if got := Search(in, "   "); len(got) != 0 {
		t.Fatalf("blank query matched %v", ids(got))
	}
}

func TestBuildHome(t *testing.T) {
	h := BuildHome(nil, "women's clothing")
	if !h.Loading {
		t.Fatalf("empty product list should be loading")
	}
	if len(h.Cheapest)+len(h.Trending)+len(h.Category) != 0 {
		t.Fatalf("loading home has sections: %+v", h)
	}

	in := make([]Product, 0, 10)
	for i := 1; i <= 10; i++ {
		cat := "electronics"
		if i%2 == 0 {
			cat = "women's clothing"
		}
		in = append(in, Product{ID: i, Price: float64(100 - i), Category: cat, Rating: Rating{Rate: float64(i) / 2}})
	}

	h = BuildHome(in, "women's clothing")
	if h.Loading {
		t.Fatalf("loaded home reports loading")
	}
	if len(h.Cheapest) != DisplayCap || len(h.Trending) != DisplayCap || len(h.Category) != DisplayCap {
		t.Fatalf("section sizes %d/%d/%d", len(h.Cheapest), len(h.Trending), len(h.Category))
	}
	if want := []int{10, 9, 8, 7}; !reflect.DeepEqual(ids(h.Cheapest), want) {
		t.Fatalf("cheapest=%v want=%v", ids(h.Cheapest), want)
	}
	if want := []int{2, 4, 6, 8}; !reflect.DeepEqual(ids(h.Category), want) {
		t.Fatalf("category=%v want=%v", ids(h.Category), want)
	}
}
