// Package catalog derives the product list a storefront page renders from
// the full product set and a filter specification. Everything here is pure:
// the input slice is never mutated and no product is ever introduced.
package catalog

import (
	"sort"
	"strings"

	"github.com/Terry-Diana/china-shop-sub000/models"
)

// Sort keys accepted by Filter.SortBy. Anything else leaves the input order.
const (
	SortPopularity = "popularity"
	SortPriceLow   = "price-low"
	SortPriceHigh  = "price-high"
	SortNewest     = "newest"
	SortRating     = "rating"
	SortSales      = "sales"
)

// Quick filter names taken from the route.
const (
	QuickNew         = "new"
	QuickBestSellers = "best-sellers"
	QuickDeals       = "deals"
	QuickSale        = "sale"
)

// Filter is the full specification for one listing request. Zero values mean
// "no restriction": empty sets, PriceMax <= 0, MinRating 0.
type Filter struct {
	// Route-derived, applied before everything else.
	Category string // exact match, case-insensitive
	Query    string // substring over name, description, brand
	Quick    string // one of the Quick* names

	PriceMin   float64
	PriceMax   float64
	Brands     []string
	Categories []string
	MinRating  float64
	InStock    bool
	OnSale     bool
	SortBy     string
}

// Apply filters and sorts products according to f. The result is always a
// fresh slice holding a subset of the input; ties under every sort key keep
// their original relative order.
func Apply(products []models.Product, f Filter) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	sortProducts(out, f.SortBy)
	return out
}

func (f Filter) matches(p models.Product) bool {
	if f.Category != "" && !strings.EqualFold(f.Category, p.Category) {
		return false
	}
	if f.Query != "" && !matchesQuery(p, f.Query) {
		return false
	}
	if !matchesQuick(p, f.Quick) {
		return false
	}
	if p.Price < f.PriceMin {
		return false
	}
	if f.PriceMax > 0 && p.Price > f.PriceMax {
		return false
	}
	if len(f.Brands) > 0 && !containsFold(f.Brands, p.Brand) {
		return false
	}
	if len(f.Categories) > 0 && !containsFold(f.Categories, p.Category) {
		return false
	}
	if f.MinRating > 0 && p.Rating < f.MinRating {
		return false
	}
	if f.InStock && p.Stock == 0 {
		return false
	}
	if f.OnSale && p.Discount == 0 {
		return false
	}
	return true
}

func matchesQuery(p models.Product, q string) bool {
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Brand), q)
}

func matchesQuick(p models.Product, quick string) bool {
	switch quick {
	case QuickNew:
		return p.IsNew
	case QuickBestSellers:
		return p.BestSeller
	case QuickDeals, QuickSale:
		return p.Discount > 0
	default:
		return true
	}
}

func containsFold(set []string, v string) bool {
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

// sortProducts orders in place. SliceStable keeps input order for ties,
// which matters for the comparators that only rank one branch (popularity,
// newest, sales).
func sortProducts(ps []models.Product, key string) {
	switch key {
	case SortPopularity, SortSales:
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].BestSeller && !ps[j].BestSeller
		})
	case SortPriceLow:
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].Price < ps[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].Price > ps[j].Price
		})
	case SortNewest:
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].IsNew && !ps[j].IsNew
		})
	case SortRating:
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].Rating > ps[j].Rating
		})
	}
}
