package store

import (
	"sync"
	"testing"
)

func product(id int, price float64) Product {
	return Product{ID: id, Title: "p", Price: price}
}

func TestToggleWishlist_OddCountMeansPresent(t *testing.T) {
	s := New(nil)
	p := product(1, 10)

	for n := 1; n <= 6; n++ {
		in := s.ToggleWishlist(p)
		wantIn := n%2 == 1
		if in != wantIn {
			t.Fatalf("toggle #%d: in=%v want=%v", n, in, wantIn)
		}
		if got := s.InWishlist(p.ID); got != wantIn {
			t.Fatalf("toggle #%d: InWishlist=%v want=%v", n, got, wantIn)
		}
		if wantIn && len(s.Wishlist()) != 1 {
			t.Fatalf("toggle #%d: wishlist len=%d want=1", n, len(s.Wishlist()))
		}
	}
}

func TestToggleWishlist_KeepsInsertionOrder(t *testing.T) {
	s := New(nil)
	s.ToggleWishlist(product(3, 1))
	s.ToggleWishlist(product(1, 1))
	s.ToggleWishlist(product(2, 1))
	s.ToggleWishlist(product(1, 1))

	got := s.Wishlist()
	if len(got) != 2 || got[0].ID != 3 || got[1].ID != 2 {
		t.Fatalf("wishlist=%v want ids [3 2]", ids(got))
	}
}

func TestToggleWishlist_MatchesByID(t *testing.T) {
	s := New(nil)
	s.ToggleWishlist(Product{ID: 7, Title: "old"})
	s.ToggleWishlist(Product{ID: 7, Title: "new"})

	if len(s.Wishlist()) != 0 {
		t.Fatalf("wishlist=%v want empty", ids(s.Wishlist()))
	}
}

func TestAddToCart_MergesExistingLine(t *testing.T) {
	s := New(nil)
	p := product(1, 10)

	s.AddToCart(p)
	s.IncrementQuantity(p)

	cart := s.Cart()
	if len(cart) != 1 {
		t.Fatalf("cart lines=%d want=1", len(cart))
	}
	if cart[0].Quantity != 2 {
		t.Fatalf("quantity=%d want=2", cart[0].Quantity)
	}

	s.AddToCart(p)
	cart = s.Cart()
	if len(cart) != 1 || cart[0].Quantity != 3 {
		t.Fatalf("after second add: lines=%d qty=%d want 1 line qty 3", len(cart), cart[0].Quantity)
	}
}

func TestIncrementQuantity_NoLineIsNoop(t *testing.T) {
	s := New(nil)
	s.IncrementQuantity(product(1, 10))
	if len(s.Cart()) != 0 {
		t.Fatalf("cart=%v want empty", s.Cart())
	}
}

func TestDecrementQuantity(t *testing.T) {
	s := New(nil)
	a, b, c := product(1, 1), product(2, 2), product(3, 3)
	s.AddToCart(a)
	s.AddToCart(b)
	s.AddToCart(b)
	s.AddToCart(c)

	s.DecrementQuantity(b)
	cart := s.Cart()
	if len(cart) != 3 || cart[1].Quantity != 1 {
		t.Fatalf("after decrement: %+v", cart)
	}

	s.DecrementQuantity(a)
	cart = s.Cart()
	if len(cart) != 2 {
		t.Fatalf("lines=%d want=2", len(cart))
	}
	if cart[0].Product.ID != 2 || cart[0].Quantity != 1 {
		t.Fatalf("line 0=%+v want id 2 qty 1", cart[0])
	}
	if cart[1].Product.ID != 3 || cart[1].Quantity != 1 {
		t.Fatalf("line 1=%+v want id 3 qty 1", cart[1])
	}

	s.DecrementQuantity(product(99, 1))
	if len(s.Cart()) != 2 {
		t.Fatalf("decrement of unknown product changed cart: %+v", s.Cart())
	}
}

func TestSetCart_EmptiesAndNormalizes(t *testing.T) {
	s := New(nil)
	s.AddToCart(product(1, 1))

	s.SetCart(nil)
	if len(s.Cart()) != 0 {
		t.Fatalf("cart=%v want empty", s.Cart())
	}

	s.SetCart([]CartLine{
		{Product: product(1, 1), Quantity: 2},
		{Product: product(2, 1), Quantity: 0},
		{Product: product(1, 1), Quantity: 3},
	})
	cart := s.Cart()
	if len(cart) != 1 || cart[0].Quantity != 5 {
		t.Fatalf("cart=%+v want one line qty 5", cart)
	}
}

func TestCartCountAndTotal(t *testing.T) {
	s := New(nil)
	a := product(1, 109.95)
	b := product(2, 22.3)
	s.AddToCart(a)
	s.AddToCart(b)
	s.IncrementQuantity(b)

	if got := s.CartCount(); got != 3 {
		t.Fatalf("count=%d want=3", got)
	}
	if got := s.CartTotal(); got != 10995+2*2230 {
		t.Fatalf("total=%d want=%d", got, 10995+2*2230)
	}
}

func TestTakeCart_EmptiesAtomically(t *testing.T) {
	s := New(nil)
	if got := s.TakeCart(); len(got) != 0 {
		t.Fatalf("take from empty cart=%v", got)
	}

	p := product(1, 1)
	const adds = 1000

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < adds; i++ {
			s.AddToCart(p)
		}
	}()

	taken := 0
	for i := 0; i < 50; i++ {
		taken += LinesCount(s.TakeCart())
	}
	wg.Wait()
	taken += LinesCount(s.TakeCart())

	if taken != adds {
		t.Fatalf("taken=%d want=%d: items lost between read and clear", taken, adds)
	}
	if s.CartCount() != 0 {
		t.Fatalf("cart not empty after take: %v", s.Cart())
	}
}

func TestSetProducts_SharedAcrossStores(t *testing.T) {
	c := NewCatalog()
	s1 := New(c)
	s2 := New(c)

	if c.Loaded() {
		t.Fatalf("new catalog reports loaded")
	}

	s1.SetProducts([]Product{product(1, 1), product(2, 2)})

	if got := len(s2.Products()); got != 2 {
		t.Fatalf("s2 products=%d want=2", got)
	}
	if p, ok := c.Lookup(2); !ok || p.Price != 2 {
		t.Fatalf("lookup(2)=%+v,%v", p, ok)
	}
	if _, ok := c.Lookup(3); ok {
		t.Fatalf("lookup(3) found a product")
	}

	s1.AddToCart(product(1, 1))
	if len(s2.Cart()) != 0 {
		t.Fatalf("cart leaked between stores")
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	s := New(nil)
	s.SetProducts([]Product{product(1, 1)})
	s.AddToCart(product(1, 1))
	s.ToggleWishlist(product(1, 1))

	snap := s.Snapshot()
	snap.Products[0].Price = 100
	snap.Cart[0].Quantity = 9
	snap.Wishlist[0].Title = "changed"

	if s.Products()[0].Price != 1 || s.Cart()[0].Quantity != 1 || s.Wishlist()[0].Title != "p" {
		t.Fatalf("snapshot mutation leaked into store")
	}
}

func TestStore_ConcurrentMutation(t *testing.T) {
	s := New(nil)
	p := product(1, 1)
	s.AddToCart(p)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.IncrementQuantity(p)
		}()
	}
	wg.Wait()

	if got := s.Cart()[0].Quantity; got != 51 {
		t.Fatalf("quantity=%d want=51", got)
	}
}

func ids(ps []Product) []int {
	out := make([]int, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}
