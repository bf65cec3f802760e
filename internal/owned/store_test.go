package owned

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bosta-shop/bosta/internal/catalog"
)

// ============================================================================
// MOCK REPOSITORY
// ============================================================================

type mockRepository struct {
	saved     []catalog.Product
	loadItems []catalog.Product
	loadOK    bool
	saveCalls int
}

func (m *mockRepository) Load(ctx context.Context) ([]catalog.Product, bool) {
	return m.loadItems, m.loadOK
}

func (m *mockRepository) Save(ctx context.Context, products []catalog.Product) error {
	m.saveCalls++
	m.saved = append([]catalog.Product(nil), products...)
	return nil
}

func ownedProduct(id int64, title string, price float64) catalog.Product {
	return catalog.Product{ID: id, Title: title, Price: price, Category: "test"}
}

func newStore(t *testing.T) (*Store, *mockRepository) {
	t.Helper()
	repo := &mockRepository{}
	return NewStore(context.Background(), repo, nil), repo
}

func TestAddProductPrependsNewestFirst(t *testing.T) {
	store, _ := newStore(t)
	store.AddProduct(context.Background(), ownedProduct(1, "First", 10))
	store.AddProduct(context.Background(), ownedProduct(2, "Second", 20))
	store.AddProduct(context.Background(), ownedProduct(3, "Third", 30))

	products := store.Products()
	require.Len(t, products, 3)
	assert.Equal(t, int64(3), products[0].ID)
	assert.Equal(t, int64(2), products[1].ID)
	assert.Equal(t, int64(1), products[2].ID)
}

func TestAddProductMergesInPlaceOnSameID(t *testing.T) {
	store, _ := newStore(t)
	store.AddProduct(context.Background(), ownedProduct(1, "First", 10))
	store.AddProduct(context.Background(), ownedProduct(2, "Second", 20))

	// Re-adding id 1 overwrites the existing entry without moving it.
	replacement := ownedProduct(1, "First v2", 15)
	store.AddProduct(context.Background(), replacement)

	products := store.Products()
	require.Len(t, products, 2)
	assert.Equal(t, int64(2), products[0].ID)
	assert.Equal(t, "First v2", products[1].Title)
	assert.Equal(t, 15.0, products[1].Price)
}

func TestAddProductMergeKeepsPriorFieldsWhenZero(t *testing.T) {
	store, _ := newStore(t)
	full := ownedProduct(1, "First", 10)
	full.Description = "a thing"
	full.Image = "https://img.example/1.png"
	full.APIID = 21
	store.AddProduct(context.Background(), full)

	store.AddProduct(context.Background(), catalog.Product{ID: 1, Title: "Renamed"})

	got, ok := store.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, "a thing", got.Description)
	assert.Equal(t, 10.0, got.Price)
	assert.Equal(t, int64(21), got.APIID)
}

func TestUpdateProductIsNoOpWhenAbsent(t *testing.T) {
	store, repo := newStore(t)
	store.AddProduct(context.Background(), ownedProduct(1, "First", 10))
	savesBefore := repo.saveCalls

	store.UpdateProduct(context.Background(), 99, ownedProduct(99, "Ghost", 1))

	assert.Len(t, store.Products(), 1)
	assert.Equal(t, savesBefore, repo.saveCalls)
}

func TestUpdateProductShallowMerges(t *testing.T) {
	store, _ := newStore(t)
	store.AddProduct(context.Background(), ownedProduct(1, "First", 10))

	store.UpdateProduct(context.Background(), 1, catalog.Product{Price: 25})

	got, ok := store.Get(1)
	require.True(t, ok)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "First", got.Title)
	assert.Equal(t, 25.0, got.Price)
}

func TestRemoveProduct(t *testing.T) {
	store, _ := newStore(t)
	store.AddProduct(context.Background(), ownedProduct(1, "First", 10))
	store.AddProduct(context.Background(), ownedProduct(2, "Second", 20))

	store.RemoveProduct(context.Background(), 1)
	_, ok := store.Get(1)
	assert.False(t, ok)
	assert.Len(t, store.Products(), 1)

	// Absent id is a no-op.
	store.RemoveProduct(context.Background(), 99)
	assert.Len(t, store.Products(), 1)
}

func TestStoreHydration(t *testing.T) {
	repo := &mockRepository{
		loadItems: []catalog.Product{ownedProduct(5, "Kept", 5)},
		loadOK:    true,
	}
	store := NewStore(context.Background(), repo, nil)
	_, ok := store.Get(5)
	assert.True(t, ok)

	corrupt := &mockRepository{loadOK: false}
	empty := NewStore(context.Background(), corrupt, nil)
	assert.Empty(t, empty.Products())
}

func TestNextSyntheticIDStrictlyIncreasing(t *testing.T) {
	prev := NextSyntheticID()
	for i := 0; i < 1000; i++ {
		next := NextSyntheticID()
		require.Greater(t, next, prev)
		prev = next
	}
}

func TestRecentStorePointerSemantics(t *testing.T) {
	recent := NewRecentStore()
	assert.Nil(t, recent.Recent())

	recent.Set(ownedProduct(1, "First", 10))
	recent.Set(ownedProduct(2, "Second", 20))

	got := recent.Recent()
	require.NotNil(t, got)
	assert.Equal(t, int64(2), got.ID, "latest creation supersedes the pointer")

	// The returned copy is detached from the store.
	got.Title = "mutated"
	assert.Equal(t, "Second", recent.Recent().Title)

	recent.Clear()
	assert.Nil(t, recent.Recent())
}
