package catalog

import (
	"context"
	"sort"
	"sync"
)

type MemStore struct {
	mu sync.RWMutex
	m  map[int]Product
}

func NewMemStore(seed ...Product) *MemStore {
	s := &MemStore{m: make(map[int]Product, len(seed))}
	for _, p := range seed {
		s.m[p.ID] = p
	}
	return s
}

// NewStore returns a memory store seeded with the development fixture.
func NewStore() *MemStore {
	return NewMemStore(Fixture()...)
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Put(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[p.ID] = p
}

func (s *MemStore) ListSortedByID(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.m))
	for _, p := range s.m {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) Get(ctx context.Context, id int) (Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.m[id]
	return p, ok, nil
}

// Fixture is a small catalog covering every storefront section.
func Fixture() []Product {
	return []Product{
		{
			ID: 1, Title: "Fjallraven Foldsack No. 1 Backpack", Category: "men's clothing",
			Description: "Your perfect pack for everyday use and walks in the forest.",
			Image:       "https://fakestoreapi.com/img/81fPKd-2AYL._AC_SL1500_.jpg",
			Price:       109.95, Rating: Rating{Rate: 3.9, Count: 120},
		},
		{
			ID: 2, Title: "Mens Casual Premium Slim Fit T-Shirts", Category: "men's clothing",
			Description: "Slim-fitting style, contrast raglan long sleeve.",
			Image:       "https://fakestoreapi.com/img/71-3HjGNDUL._AC_SY879._SX._UX._SY._UY_.jpg",
			Price:       22.3, Rating: Rating{Rate: 4.1, Count: 259},
		},
		{
			ID: 5, Title: "John Hardy Women's Legends Naga Bracelet", Category: "jewelery",
			Description: "From our Legends Collection, the Naga was inspired by the mythical water dragon.",
			Image:       "https://fakestoreapi.com/img/71pWzhdJNwL._AC_UL640_QL65_ML3_.jpg",
			Price:       695, Rating: Rating{Rate: 4.6, Count: 400},
		},
		{
			ID: 9, Title: "WD 2TB Elements Portable External Hard Drive", Category: "electronics",
			Description: "USB 3.0 and USB 2.0 compatibility, fast data transfers.",
			Image:       "https://fakestoreapi.com/img/61IBBVJvSDL._AC_SY879_.jpg",
			Price:       64, Rating: Rating{Rate: 3.3, Count: 203},
		},
		{
			ID: 14, Title: "Samsung 49-Inch CHG90 144Hz Curved Gaming Monitor", Category: "electronics",
			Description: "49 inch super ultrawide 32:9 curved gaming monitor.",
			Image:       "https://fakestoreapi.com/img/81Zt42ioCgL._AC_SX679_.jpg",
			Price:       999.99, Rating: Rating{Rate: 2.2, Count: 140},
		},
		{
			ID: 15, Title: "BIYLACLESEN Women's 3-in-1 Snowboard Jacket", Category: "women's clothing",
			Description: "Detachable liner fabric, warm fleece.",
			Image:       "https://fakestoreapi.com/img/51Y5NI-I5jL._AC_UX679_.jpg",
			Price:       56.99, Rating: Rating{Rate: 2.6, Count: 235},
		},
		{
			ID: 18, Title: "MBJ Women's Solid Short Sleeve Boat Neck V", Category: "women's clothing",
			Description: "Lightweight fabric with great stretch for comfort.",
			Image:       "https://fakestoreapi.com/img/71z3kpMAYsL._AC_UY879_.jpg",
			Price:       9.85, Rating: Rating{Rate: 4.7, Count: 130},
		},
		{
			ID: 19, Title: "Opna Women's Short Sleeve Moisture", Category: "women's clothing",
			Description: "Lightweight, roomy and highly breathable.",
			Image:       "https://fakestoreapi.com/img/51eg55uWmdL._AC_UX679_.jpg",
			Price:       7.95, Rating: Rating{Rate: 4.5, Count: 146},
		},
		{
			ID: 20, Title: "DANVOUY Womens T Shirt Casual Cotton Short", Category: "women's clothing",
			Description: "Casual, short sleeve, letter print.",
			Image:       "https://fakestoreapi.com/img/61pHAEJ4NML._AC_UX679_.jpg",
			Price:       12.99, Rating: Rating{Rate: 3.6, Count: 145},
		},
	}
}
