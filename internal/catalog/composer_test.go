package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int64, title string, price float64, category string) Product {
	return Product{
		ID:       id,
		Title:    title,
		Price:    price,
		Category: category,
		Image:    "https://img.example/" + title + ".png",
	}
}

func TestComposePageLocalOverridesRemote(t *testing.T) {
	remote := []Product{
		product(5, "Remote copy", 10, "electronics"),
		product(6, "Other", 30, "electronics"),
	}
	owned := []Product{
		product(5, "Edited copy", 20, "electronics"),
	}

	page := ComposePage(remote, owned, ListQuery{Sort: SortAsc, Page: 1}, nil)

	require.Equal(t, 2, page.TotalCount)
	var matches []Product
	for _, p := range page.Items {
		if p.ID == 5 {
			matches = append(matches, p)
		}
	}
	require.Len(t, matches, 1, "exactly one entry per id after merge")
	assert.Equal(t, 20.0, matches[0].Price)
	assert.Equal(t, "Edited copy", matches[0].Title)
}

func TestComposePageOwnedRespectsCategoryFilter(t *testing.T) {
	remote := []Product{product(1, "Monitor", 100, "electronics")}
	owned := []Product{
		product(100, "Mug", 5, "home"),
		product(101, "Keyboard", 50, "electronics"),
	}

	page := ComposePage(remote, owned, ListQuery{Category: "electronics", Sort: SortAsc, Page: 1}, nil)

	require.Equal(t, 2, page.TotalCount)
	for _, p := range page.Items {
		assert.Equal(t, "electronics", p.Category)
	}

	// No category filter admits every owned product.
	page = ComposePage(remote, owned, ListQuery{Sort: SortAsc, Page: 1}, nil)
	assert.Equal(t, 3, page.TotalCount)
}

func TestComposePageSortsByPriceStable(t *testing.T) {
	remote := []Product{
		product(1, "A", 30, "x"),
		product(2, "B", 10, "x"),
		product(3, "C", 10, "x"),
		product(4, "D", 20, "x"),
	}

	asc := ComposePage(remote, nil, ListQuery{Sort: SortAsc, Page: 1}, nil)
	require.Len(t, asc.Items, 4)
	assert.Equal(t, []int64{2, 3, 4, 1}, ids(asc.Items), "ties keep merge order")

	desc := ComposePage(remote, nil, ListQuery{Sort: SortDesc, Page: 1}, nil)
	assert.Equal(t, []int64{1, 4, 2, 3}, ids(desc.Items))
}

func TestComposePageSearchIsCaseInsensitiveSubstring(t *testing.T) {
	remote := []Product{
		product(1, "Men's Blue Shirt", 20, "clothing"),
		product(2, "Red Dress", 35, "clothing"),
		product(3, "T-SHIRT bundle", 15, "clothing"),
	}

	page := ComposePage(remote, nil, ListQuery{Sort: SortAsc, Page: 1, Search: "shirt"}, nil)
	assert.Equal(t, []int64{3, 1}, ids(page.Items))

	// Whitespace-only search is no filter.
	page = ComposePage(remote, nil, ListQuery{Sort: SortAsc, Page: 1, Search: "   "}, nil)
	assert.Equal(t, 3, page.TotalCount)
}

func TestComposePagePaginationBounds(t *testing.T) {
	var remote []Product
	for i := 1; i <= 30; i++ {
		remote = append(remote, product(int64(i), fmt.Sprintf("P%d", i), float64(i), "x"))
	}

	tests := []struct {
		name        string
		total       int
		page        int
		wantPages   int
		wantCurrent int
		wantLen     int
	}{
		{"first page full", 30, 1, 3, 1, PageSize},
		{"last page partial", 30, 3, 3, 3, 6},
		{"page beyond range clamps", 30, 99, 3, 3, 6},
		{"page below range clamps", 30, 0, 3, 1, PageSize},
		{"empty result still one page", 0, 1, 1, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := ComposePage(remote[:tt.total], nil, ListQuery{Sort: SortAsc, Page: tt.page}, nil)
			assert.Equal(t, tt.total, page.TotalCount)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, tt.wantCurrent, page.CurrentPage)
			assert.Len(t, page.Items, tt.wantLen)
		})
	}
}

func TestComposePageRecencyPromotion(t *testing.T) {
	var remote []Product
	for i := 1; i <= 5; i++ {
		remote = append(remote, product(int64(i), fmt.Sprintf("P%d", i), float64(i*10), "x"))
	}
	recent := product(4, "P4", 40, "x")

	page := ComposePage(remote, nil, ListQuery{Sort: SortAsc, Page: 1}, &recent)
	assert.Equal(t, []int64{4, 1, 2, 3, 5}, ids(page.Items), "recent moves to front, rest keep order")
	assert.Equal(t, 5, page.TotalCount, "promotion is pure reordering")

	// Filtered out of the result: no promotion, no injection.
	page = ComposePage(remote, nil, ListQuery{Sort: SortAsc, Page: 1, Search: "P1"}, &recent)
	assert.Equal(t, []int64{1}, ids(page.Items))
}

func TestComposePageNoPromotionBeyondFirstPage(t *testing.T) {
	var remote []Product
	for i := 1; i <= 20; i++ {
		remote = append(remote, product(int64(i), fmt.Sprintf("P%d", i), float64(i), "x"))
	}
	recent := remote[15] // lands on page 2 when sorted ascending

	page := ComposePage(remote, nil, ListQuery{Sort: SortAsc, Page: 2}, &recent)
	require.Len(t, page.Items, 8)
	assert.Equal(t, int64(13), page.Items[0].ID, "page 2 keeps its natural order")
}

func TestComposePageCategoryScenario(t *testing.T) {
	// 15 upstream electronics products plus one owned electronics product
	// not present upstream: 16 merged, 2 pages, page 1 sorted descending.
	var remote []Product
	for i := 1; i <= 15; i++ {
		remote = append(remote, product(int64(i), fmt.Sprintf("Gadget %d", i), float64(i*10), "electronics"))
	}
	owned := []Product{product(9999, "My Gadget", 95, "electronics")}

	page := ComposePage(remote, owned, ListQuery{Category: "electronics", Sort: SortDesc, Page: 1}, nil)

	assert.Equal(t, 16, page.TotalCount)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Items, PageSize)
	for i := 1; i < len(page.Items); i++ {
		assert.GreaterOrEqual(t, page.Items[i-1].Price, page.Items[i].Price)
	}
	// 95 ranks between 100 and 90.
	assert.Equal(t, int64(9999), page.Items[6].ID, "owned product at its price rank")
}

func ids(products []Product) []int64 {
	out := make([]int64, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}
