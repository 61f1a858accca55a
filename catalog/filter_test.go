package catalog

import (
	"testing"

	"github.com/Terry-Diana/china-shop-sub000/models"
	"github.com/stretchr/testify/require"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Smartphone X", Description: "Flagship handset", Brand: "Nexa", Category: "Electronics", Price: 45000, OriginalPrice: 50000, Discount: 10, Rating: 4.5, Stock: 12, BestSeller: true},
		{ID: 2, Name: "Blender Pro", Description: "Kitchen blender", Brand: "HomeMate", Category: "Appliances", Price: 3500, Rating: 4.0, Stock: 0},
		{ID: 3, Name: "Running Shoes", Description: "Lightweight trainers", Brand: "Strider", Category: "Sports", Price: 2800, Rating: 3.8, Stock: 40, IsNew: true},
		{ID: 4, Name: "Wireless Earbuds", Description: "Noise cancelling", Brand: "Nexa", Category: "Electronics", Price: 6000, OriginalPrice: 7500, Discount: 20, Rating: 4.7, Stock: 5, BestSeller: true, IsNew: true},
		{ID: 5, Name: "Desk Lamp", Description: "LED lamp", Brand: "Lumo", Category: "Home", Price: 1200, Rating: 3.2, Stock: 8},
	}
}

func ids(ps []models.Product) []uint {
	out := make([]uint, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestApplyReturnsSubsetOnly(t *testing.T) {
	in := sampleProducts()
	known := map[uint]bool{}
	for _, p := range in {
		known[p.ID] = true
	}

	filters := []Filter{
		{},
		{Query: "nexa"},
		{PriceMin: 1000, PriceMax: 10000},
		{Brands: []string{"Strider"}, InStock: true},
		{OnSale: true, SortBy: SortPriceHigh},
		{Category: "electronics", MinRating: 4.6},
	}
	for _, f := range filters {
		out := Apply(in, f)
		require.LessOrEqual(t, len(out), len(in))
		for _, p := range out {
			require.True(t, known[p.ID], "filter introduced product %d", p.ID)
		}
	}
}

func TestPriceRangeContainment(t *testing.T) {
	out := Apply(sampleProducts(), Filter{PriceMin: 2000, PriceMax: 7000})
	require.NotEmpty(t, out)
	for _, p := range out {
		require.GreaterOrEqual(t, p.Price, 2000.0)
		require.LessOrEqual(t, p.Price, 7000.0)
	}
	// bounds are inclusive
	out = Apply(sampleProducts(), Filter{PriceMin: 2800, PriceMax: 2800})
	require.Equal(t, []uint{3}, ids(out))
}

func TestZeroMaxPriceMeansUnbounded(t *testing.T) {
	out := Apply(sampleProducts(), Filter{PriceMin: 0, PriceMax: 0})
	require.Len(t, out, len(sampleProducts()))
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	out := Apply(sampleProducts(), Filter{Query: "phone"})
	require.Contains(t, ids(out), uint(1), "Smartphone X must match query phone")

	out = Apply(sampleProducts(), Filter{Query: "NEXA"})
	require.ElementsMatch(t, []uint{1, 4}, ids(out))
}

func TestCategorySegmentExactMatch(t *testing.T) {
	out := Apply(sampleProducts(), Filter{Category: "ELECTRONICS"})
	require.Equal(t, []uint{1, 4}, ids(out))

	// substring of a category must not match
	out = Apply(sampleProducts(), Filter{Category: "Electro"})
	require.Empty(t, out)
}

func TestQuickFilters(t *testing.T) {
	ps := sampleProducts()
	require.Equal(t, []uint{3, 4}, ids(Apply(ps, Filter{Quick: QuickNew})))
	require.Equal(t, []uint{1, 4}, ids(Apply(ps, Filter{Quick: QuickBestSellers})))
	require.Equal(t, []uint{1, 4}, ids(Apply(ps, Filter{Quick: QuickDeals})))
	require.Equal(t, ids(Apply(ps, Filter{Quick: QuickDeals})), ids(Apply(ps, Filter{Quick: QuickSale})))
}

func TestInStockAndOnSale(t *testing.T) {
	ps := sampleProducts()
	for _, p := range Apply(ps, Filter{InStock: true}) {
		require.NotZero(t, p.Stock)
	}
	for _, p := range Apply(ps, Filter{OnSale: true}) {
		require.NotZero(t, p.Discount)
	}
}

func TestMinRating(t *testing.T) {
	for _, p := range Apply(sampleProducts(), Filter{MinRating: 4.0}) {
		require.GreaterOrEqual(t, p.Rating, 4.0)
	}
	// rating 0 means no restriction
	require.Len(t, Apply(sampleProducts(), Filter{MinRating: 0}), 5)
}

func TestPriceSortReciprocity(t *testing.T) {
	ps := sampleProducts()
	low := Apply(ps, Filter{SortBy: SortPriceLow})
	high := Apply(ps, Filter{SortBy: SortPriceHigh})
	require.Len(t, high, len(low))
	for i := range low {
		require.Equal(t, low[i].Price, high[len(high)-1-i].Price)
	}
}

func TestSortStabilityForTies(t *testing.T) {
	// products 1 and 4 are both best sellers; popularity sort must keep
	// their input order, and leave non best sellers in input order too.
	out := Apply(sampleProducts(), Filter{SortBy: SortPopularity})
	require.Equal(t, []uint{1, 4, 2, 3, 5}, ids(out))

	out = Apply(sampleProducts(), Filter{SortBy: SortNewest})
	require.Equal(t, []uint{3, 4, 1, 2, 5}, ids(out))

	out = Apply(sampleProducts(), Filter{SortBy: SortSales})
	require.Equal(t, []uint{1, 4, 2, 3, 5}, ids(out))
}

func TestRatingSortDescending(t *testing.T) {
	out := Apply(sampleProducts(), Filter{SortBy: SortRating})
	for i := 1; i < len(out); i++ {
		require.GreaterOrEqual(t, out[i-1].Rating, out[i].Rating)
	}
}

func TestUnknownSortKeyKeepsInputOrder(t *testing.T) {
	out := Apply(sampleProducts(), Filter{SortBy: "bogus"})
	require.Equal(t, []uint{1, 2, 3, 4, 5}, ids(out))
}

func TestInputNotMutated(t *testing.T) {
	in := sampleProducts()
	_ = Apply(in, Filter{SortBy: SortPriceHigh, OnSale: true})
	require.Equal(t, []uint{1, 2, 3, 4, 5}, ids(in))
}

func TestEmptyResultIsNotAnError(t *testing.T) {
	out := Apply(sampleProducts(), Filter{PriceMin: 1_000_000})
	require.NotNil(t, out)
	require.Empty(t, out)
}

func TestBrandAndCategorySets(t *testing.T) {
	out := Apply(sampleProducts(), Filter{Brands: []string{"nexa", "Lumo"}})
	require.ElementsMatch(t, []uint{1, 4, 5}, ids(out))

	out = Apply(sampleProducts(), Filter{Categories: []string{"Sports", "Home"}})
	require.ElementsMatch(t, []uint{3, 5}, ids(out))

	// empty sets restrict nothing
	out = Apply(sampleProducts(), Filter{Brands: []string{}, Categories: []string{}})
	require.Len(t, out, 5)
}
