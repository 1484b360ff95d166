// Package views derives the storefront sections from the product list.
// Every function is pure: inputs are never modified.
package views

import (
	"slices"
	"strings"

	"Storefront/internal/catalog"
)

type (
	Product = catalog.Product
	Rating  = catalog.Rating
)

const (
	// DisplayCap is the number of products shown in a home section.
	DisplayCap = 4

	// TrendingThreshold is exclusive.
	TrendingThreshold = 3.0
)

// Cheapest returns the n lowest priced products, ties in catalog order.
func Cheapest(ps []Product, n int) []Product {
	out := slices.Clone(ps)
	slices.SortStableFunc(out, func(a, b Product) int {
		switch {
		case a.Price < b.Price:
			return -1
		case a.Price > b.Price:
			return 1
		}
		return 0
	})
	return capped(out, n)
}

// Trending returns up to n products rated above TrendingThreshold, best first.
func Trending(ps []Product, n int) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		if p.Rating.Rate > TrendingThreshold {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, func(a, b Product) int {
		switch {
		case a.Rating.Rate > b.Rating.Rate:
			return -1
		case a.Rating.Rate < b.Rating.Rate:
			return 1
		}
		return 0
	})
	return capped(out, n)
}

// ByCategory keeps products whose category equals category exactly.
func ByCategory(ps []Product, category string, n int) []Product {
	out := make([]Product, 0, DisplayCap)
	if n == 0 {
		return out
	}
	for _, p := range ps {
		if p.Category == category {
			out = append(out, p)
			if n >= 0 && len(out) == n {
				break
			}
		}
	}
	return out
}

func All(ps []Product) []Product {
	return slices.Clone(ps)
}

func Wishlist(ws []Product) []Product {
	return slices.Clone(ws)
}

// Categories lists the distinct categories in first-seen order.
func Categories(ps []Product) []string {
	seen := make(map[string]struct{}, 8)
	out := make([]string, 0, 8)
	for _, p := range ps {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// Search matches q against product titles, ignoring case.
func Search(ps []Product, q string) []Product {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return []Product{}
	}

	out := make([]Product, 0, 8)
	for _, p := range ps {
		if strings.Contains(strings.ToLower(p.Title), q) {
			out = append(out, p)
		}
	}
	return out
}

// capped returns the first n items; n < 0 means all of them.
func capped(ps []Product, n int) []Product {
	if n < 0 || n >= len(ps) {
		return ps
	}
	return ps[:n]
}
