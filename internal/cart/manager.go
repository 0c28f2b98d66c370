package cart

import (
	"errors"
	"log"
)

// Cart owns a cart State and its persistence side effects. All mutations
// go through the reducer; after each one the new item list is mirrored to
// the store. Save failures are logged and swallowed: the in-memory state
// stays authoritative for the session.
type Cart struct {
	state State
	store Store
}

// New creates a Cart hydrated from the store. Corrupt or unreadable
// persisted data is discarded with a log line and the cart starts empty.
func New(store Store) *Cart {
	c := &Cart{store: store}

	items, err := store.Load()
	if err != nil {
		if !errors.Is(err, ErrEmpty) {
			log.Printf("Error loading persisted cart, starting empty: %v", err)
		}
		return c
	}
	c.state = Reduce(c.state, LoadCart{Items: items})
	return c
}

func (c *Cart) dispatch(action Action) {
	c.state = Reduce(c.state, action)
	if err := c.store.Save(c.state.Items); err != nil {
		log.Printf("Error persisting cart: %v", err)
	}
}

// Add puts the item in the cart, merging quantities with any existing
// entry for the same product.
func (c *Cart) Add(item Item) {
	c.dispatch(AddItem{Item: item})
}

// Remove takes the entry with the given product ID out of the cart.
func (c *Cart) Remove(productID string) {
	c.dispatch(RemoveItem{ProductID: productID})
}

// UpdateQuantity sets the quantity of an entry. A quantity of zero or
// less removes the entry instead; the reducer never stores one.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	c.dispatch(UpdateQuantity{ProductID: productID, Quantity: quantity})
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.dispatch(ClearCart{})
}

// Items returns a copy of the current item list.
func (c *Cart) Items() []Item {
	items := make([]Item, len(c.state.Items))
	copy(items, c.state.Items)
	return items
}

// Total returns the sum of price × quantity over all items.
func (c *Cart) Total() float64 {
	return c.state.Total()
}

// Count returns the sum of quantities over all items.
func (c *Cart) Count() int {
	return c.state.Count()
}
