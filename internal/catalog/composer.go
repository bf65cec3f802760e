package catalog

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// PageSize is the fixed number of products per listing page.
const PageSize = 12

var searchFolder = cases.Fold()

// ComposePage reconciles one upstream page with the client's owned products
// and applies sort, search and pagination. recent, when non-nil, is the
// just-created product promoted to the front of page one.
//
// Owned products shadow upstream records sharing the same id, so local edits
// always win over a stale upstream copy. When a category filter is active
// only owned products in that category participate.
func ComposePage(remote, owned []Product, q ListQuery, recent *Product) Page {
	merged := mergeProducts(remote, owned, q.Category)
	sortByPrice(merged, q.Sort)
	filtered := filterByTitle(merged, q.Search)

	totalCount := len(filtered)
	totalPages := int(math.Ceil(float64(totalCount) / float64(PageSize)))
	if totalPages < 1 {
		totalPages = 1
	}
	currentPage := q.Page
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	start := (currentPage - 1) * PageSize
	end := start + PageSize
	if end > totalCount {
		end = totalCount
	}
	items := make([]Product, end-start)
	copy(items, filtered[start:end])

	if recent != nil && currentPage == 1 {
		promoteRecent(items, recent.ID)
	}

	return Page{
		Items:       items,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		CurrentPage: currentPage,
	}
}

// mergeProducts builds the id-keyed union of the upstream page and the owned
// collection. Upstream entries come first so that owned entries overwrite
// them in place, keeping the merge order stable.
func mergeProducts(remote, owned []Product, category string) []Product {
	merged := make([]Product, 0, len(remote)+len(owned))
	index := make(map[int64]int, len(remote))
	for _, p := range remote {
		index[p.ID] = len(merged)
		merged = append(merged, p)
	}
	for _, p := range owned {
		if category != "" && p.Category != category {
			continue
		}
		if at, ok := index[p.ID]; ok {
			merged[at] = p
			continue
		}
		index[p.ID] = len(merged)
		merged = append(merged, p)
	}
	return merged
}

// sortByPrice orders products by price in place. Ties keep their merge order.
func sortByPrice(products []Product, order SortOrder) {
	sort.SliceStable(products, func(i, j int) bool {
		if order == SortDesc {
			return products[i].Price > products[j].Price
		}
		return products[i].Price < products[j].Price
	})
}

// filterByTitle keeps products whose title contains the search term,
// case-insensitively. A blank term keeps everything.
func filterByTitle(products []Product, search string) []Product {
	term := strings.TrimSpace(search)
	if term == "" {
		return products
	}
	folded := searchFolder.String(term)
	kept := products[:0:0]
	for _, p := range products {
		if strings.Contains(searchFolder.String(p.Title), folded) {
			kept = append(kept, p)
		}
	}
	return kept
}

// promoteRecent moves the product with the given id to the front of the
// visible page. A recent product filtered out of the result stays absent;
// promotion never injects.
func promoteRecent(items []Product, id int64) {
	at := -1
	for i, p := range items {
		if p.ID == id {
			at = i
			break
		}
	}
	if at <= 0 {
		return
	}
	item := items[at]
	copy(items[1:at+1], items[:at])
	items[0] = item
}
