// Package store holds the storefront state: the product list, the wishlist
// and the cart. All mutation goes through Store methods.
package store

import (
	"math"
	"sync"
)

type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type Snapshot struct {
	Products []Product  `json:"products"`
	Wishlist []Product  `json:"wishlist"`
	Cart     []CartLine `json:"cart"`
}

// Store is a single-owner state container. Products live in the shared
// Catalog; wishlist and cart belong to this Store alone.
type Store struct {
	catalog *Catalog

	mu       sync.RWMutex
	wishlist []Product
	cart     []CartLine
}

func New(c *Catalog) *Store {
	if c == nil {
		c = NewCatalog()
	}
	return &Store{catalog: c}
}

func (s *Store) Catalog() *Catalog { return s.catalog }

// SetProducts replaces the product list wholesale.
func (s *Store) SetProducts(list []Product) {
	s.catalog.set(list)
}

func (s *Store) Products() []Product {
	return s.catalog.Products()
}

// ToggleWishlist removes p when a product with its id is present and
// appends it otherwise. It reports whether p is in the wishlist afterwards.
func (s *Store) ToggleWishlist(p Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, w := range s.wishlist {
		if w.ID == p.ID {
			s.wishlist = append(s.wishlist[:i:i], s.wishlist[i+1:]...)
			return false
		}
	}
	s.wishlist = append(s.wishlist, p)
	return true
}

func (s *Store) InWishlist(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return indexOfProduct(s.wishlist, id) >= 0
}

func (s *Store) Wishlist() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Product(nil), s.wishlist...)
}

// SetCart replaces the cart wholesale. Non-positive quantities are dropped
// and lines for the same product are merged in first-seen position.
func (s *Store) SetCart(lines []CartLine) {
	cart := make([]CartLine, 0, len(lines))
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		if i := indexOfLine(cart, l.Product.ID); i >= 0 {
			cart[i].Quantity += l.Quantity
			continue
		}
		cart = append(cart, l)
	}

	s.mu.Lock()
	s.cart = cart
	s.mu.Unlock()
}

// AddToCart merges into an existing line for p, or appends a new line
// with quantity 1.
func (s *Store) AddToCart(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := indexOfLine(s.cart, p.ID); i >= 0 {
		s.cart[i].Quantity++
		return
	}
	s.cart = append(s.cart, CartLine{Product: p, Quantity: 1})
}

func (s *Store) IncrementQuantity(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := indexOfLine(s.cart, p.ID); i >= 0 {
		s.cart[i].Quantity++
	}
}

// DecrementQuantity removes the line when its quantity is 1.
func (s *Store) DecrementQuantity(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOfLine(s.cart, p.ID)
	if i < 0 {
		return
	}
	if s.cart[i].Quantity <= 1 {
		s.cart = append(s.cart[:i:i], s.cart[i+1:]...)
		return
	}
	s.cart[i].Quantity--
}

func (s *Store) Cart() []CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]CartLine(nil), s.cart...)
}

// TakeCart empties the cart and returns the lines it held, in one step.
func (s *Store) TakeCart() []CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.cart
	s.cart = nil
	return lines
}

// CartCount is the number of items in the cart, counting quantities.
func (s *Store) CartCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return LinesCount(s.cart)
}

// CartTotal returns the cart value in cents.
func (s *Store) CartTotal() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return LinesTotal(s.cart)
}

func LinesCount(lines []CartLine) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

// LinesTotal sums lines in cents. Each line is rounded to the cent before
// summing.
func LinesTotal(lines []CartLine) int64 {
	var total int64
	for _, l := range lines {
		total += int64(math.Round(l.Product.Price*100)) * int64(l.Quantity)
	}
	return total
}

func (s *Store) Snapshot() Snapshot {
	products := s.catalog.Products()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Products: products,
		Wishlist: append([]Product(nil), s.wishlist...),
		Cart:     append([]CartLine(nil), s.cart...),
	}
}

func indexOfProduct(ps []Product, id int) int {
	for i, p := range ps {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func indexOfLine(lines []CartLine, id int) int {
	for i, l := range lines {
		if l.Product.ID == id {
			return i
		}
	}
	return -1
}
