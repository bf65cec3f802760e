package wishlist

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
	saved     []Item
	loadItems []Item
	loadOK    bool
	saveCalls int
}

func (m *mockRepository) Load(ctx context.Context) ([]Item, bool) {
	return m.loadItems, m.loadOK
}

func (m *mockRepository) Save(ctx context.Context, items []Item) error {
	m.saveCalls++
	m.saved = append([]Item(nil), items...)
	return nil
}

func testProduct(id int64, title string) catalog.Product {
	return catalog.Product{ID: id, Title: title, Price: 9.99, Category: "test"}
}

func newWishlist(t *testing.T) (*Service, *mockRepository) {
	t.Helper()
	repo := &mockRepository{}
	return NewService(context.Background(), repo, nil), repo
}

func TestAddItemHasSetSemantics(t *testing.T) {
	svc, _ := newWishlist(t)
	p := testProduct(1, "Socks")

	svc.AddItem(context.Background(), p)
	svc.AddItem(context.Background(), p)

	assert.Equal(t, 1, svc.Count())
	assert.True(t, svc.IsInWishlist(1))
	assert.False(t, svc.IsInWishlist(2))
}

func TestRemoveItem(t *testing.T) {
	svc, _ := newWishlist(t)
	svc.AddItem(context.Background(), testProduct(1, "Socks"))
	svc.AddItem(context.Background(), testProduct(2, "Hat"))

	svc.RemoveItem(context.Background(), 1)
	assert.False(t, svc.IsInWishlist(1))
	assert.True(t, svc.IsInWishlist(2))

	// Absent product is a no-op.
	svc.RemoveItem(context.Background(), 99)
	assert.Equal(t, 1, svc.Count())
}

func TestToggleItemFlipsMembership(t *testing.T) {
	svc, _ := newWishlist(t)
	p := testProduct(1, "Socks")

	svc.ToggleItem(context.Background(), p)
	assert.True(t, svc.IsInWishlist(1))

	svc.ToggleItem(context.Background(), p)
	assert.False(t, svc.IsInWishlist(1))

	// Toggling twice always lands back where it started.
	svc.ToggleItem(context.Background(), p)
	svc.ToggleItem(context.Background(), p)
	assert.Equal(t, 0, svc.Count())
}

func TestMutationsWriteThrough(t *testing.T) {
	svc, repo := newWishlist(t)
	svc.AddItem(context.Background(), testProduct(1, "Socks"))
	require.Equal(t, 1, repo.saveCalls)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, int64(1), repo.saved[0].ProductID)

	// Duplicate add persists nothing.
	svc.AddItem(context.Background(), testProduct(1, "Socks"))
	assert.Equal(t, 1, repo.saveCalls)
}

func TestHydrationFromRepository(t *testing.T) {
	repo := &mockRepository{
		loadItems: []Item{{ProductID: 7, Title: "Mug"}},
		loadOK:    true,
	}
	svc := NewService(context.Background(), repo, nil)
	assert.True(t, svc.IsInWishlist(7))
}

func TestCorruptStateHydratesEmpty(t *testing.T) {
	repo := &mockRepository{loadOK: false}
	svc := NewService(context.Background(), repo, nil)
	assert.Zero(t, svc.Count())
}
