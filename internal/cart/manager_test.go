package cart_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"shoplite/internal/cart"
)

func TestCart_PersistsAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	store := cart.NewFileStore(path)

	c := cart.New(store)
	assert.Empty(t, c.Items())

	c.Add(cart.Item{ProductID: "1", Name: "Headphones", Price: 99.99, Quantity: 1})
	c.Add(cart.Item{ProductID: "2", Name: "Keyboard", Price: 75.00, Quantity: 2})

	// A fresh Cart over the same store hydrates the previous state.
	restored := cart.New(cart.NewFileStore(path))
	assert.Equal(t, c.Items(), restored.Items())
	assert.Equal(t, 3, restored.Count())
}

func TestCart_CorruptPersistedDataStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	err := os.WriteFile(path, []byte("{not json"), 0o644)
	assert.NoError(t, err)

	c := cart.New(cart.NewFileStore(path))

	assert.Empty(t, c.Items())

	// The cart stays usable after discarding the corrupt state.
	c.Add(cart.Item{ProductID: "1", Price: 10, Quantity: 1})
	assert.Len(t, c.Items(), 1)
}

func TestCart_UpdateQuantityRoutesZeroToRemove(t *testing.T) {
	c := cart.New(cart.NewFileStore(filepath.Join(t.TempDir(), "cart.json")))
	c.Add(cart.Item{ProductID: "1", Price: 10, Quantity: 2})

	c.UpdateQuantity("1", 0)
	assert.Empty(t, c.Items(), "quantity 0 must remove the entry")

	c.Add(cart.Item{ProductID: "1", Price: 10, Quantity: 2})
	c.UpdateQuantity("1", -3)
	assert.Empty(t, c.Items(), "negative quantity must remove the entry")

	c.Add(cart.Item{ProductID: "1", Price: 10, Quantity: 2})
	c.UpdateQuantity("1", 5)
	assert.Equal(t, 5, c.Items()[0].Quantity)
}

// failingStore rejects every save to prove write failures never break the
// in-memory state.
type failingStore struct{}

func (failingStore) Load() ([]cart.Item, error) { return nil, cart.ErrEmpty }

func (failingStore) Save(items []cart.Item) error { return errors.New("disk full") }

func TestCart_SaveFailureKeepsStateAuthoritative(t *testing.T) {
	c := cart.New(failingStore{})

	c.Add(cart.Item{ProductID: "1", Price: 20, Quantity: 2})
	c.Add(cart.Item{ProductID: "2", Price: 5, Quantity: 1})

	assert.Len(t, c.Items(), 2)
	assert.InDelta(t, 45.0, c.Total(), 0.0001)
}

func TestFileStore_EmptyOnFirstLoad(t *testing.T) {
	store := cart.NewFileStore(filepath.Join(t.TempDir(), "cart.json"))

	_, err := store.Load()
	assert.ErrorIs(t, err, cart.ErrEmpty)
}
