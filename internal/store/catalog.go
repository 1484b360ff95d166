package store

import (
	"sync"

	"Storefront/internal/catalog"
)

type Product = catalog.Product

// Catalog is the product list shared by every session store.
// An empty list reads as "still loading".
type Catalog struct {
	mu       sync.RWMutex
	products []Product
	byID     map[int]int
}

func NewCatalog() *Catalog {
	return &Catalog{byID: map[int]int{}}
}

func (c *Catalog) set(list []Product) {
	products := append([]Product(nil), list...)
	byID := make(map[int]int, len(products))
	for i, p := range products {
		if _, dup := byID[p.ID]; !dup {
			byID[p.ID] = i
		}
	}

	c.mu.Lock()
	c.products = products
	c.byID = byID
	c.mu.Unlock()
}

// Products returns a copy of the current list.
func (c *Catalog) Products() []Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Product(nil), c.products...)
}

func (c *Catalog) Lookup(id int) (Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

func (c *Catalog) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products) > 0
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}
