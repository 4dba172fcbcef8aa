// Package views derives display lists from catalog data already fetched
// into memory. Every function is pure: the source slice is never mutated
// and the derived list is recomputed in full on each call. The source is
// capped at ~100 entities per fetch, so full recomputation is cheap.
package views

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/shivamzowork/Product-catalog/internal/models"
)

// SortKey selects the comparator applied by SortProducts.
type SortKey string

const (
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNewest    SortKey = "newest"
)

// FilterProducts narrows src by a free-text query and an optional category
// slug. The text match is a case-insensitive substring test against title or
// short description; an empty query passes everything. The category filter
// compares the resolved category reference's slug; an empty selection passes
// everything.
func FilterProducts(src []models.Product, query, categorySlug string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Product, 0, len(src))
	for _, p := range src {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.ShortDescription), q) {
			continue
		}
		if categorySlug != "" && (p.Category == nil || p.Category.Slug != categorySlug) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortProducts returns a new slice with src ordered by key. The sort is
// stable; name comparisons are locale-aware, a missing price sorts as 0 and
// SortNewest orders by creation timestamp descending. An unknown key leaves
// the original order.
func SortProducts(src []models.Product, key SortKey) []models.Product {
	out := make([]models.Product, len(src))
	copy(out, src)

	switch key {
	case SortNameAsc, SortNameDesc:
		col := collate.New(language.Und)
		sort.SliceStable(out, func(i, j int) bool {
			cmp := col.CompareString(out[i].Title, out[j].Title)
			if key == SortNameDesc {
				return cmp > 0
			}
			return cmp < 0
		})
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}
