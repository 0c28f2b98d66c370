// Package cart implements the client-side shopping cart: a pure reducer
// over a closed set of actions, plus an orchestrator that mirrors every
// state change to a durable store.
package cart

// Item is one cart entry. Name, image and price are snapshots taken when
// the product was added.
type Item struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// State is the cart contents: an ordered item list with product IDs
// unique within it.
type State struct {
	Items []Item
}

// Total returns the sum of price × quantity over all items.
func (s State) Total() float64 {
	var total float64
	for _, item := range s.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Count returns the sum of quantities over all items.
func (s State) Count() int {
	var count int
	for _, item := range s.Items {
		count += item.Quantity
	}
	return count
}

// Action is the closed set of cart transitions. Implementations are the
// only valid inputs to Reduce.
type Action interface {
	isAction()
}

// LoadCart replaces the entire item list. Dispatched once at startup to
// hydrate from the durable store.
type LoadCart struct {
	Items []Item
}

// AddItem appends the item, or merges its quantity into an existing entry
// with the same product ID.
type AddItem struct {
	Item Item
}

// RemoveItem removes the entry with the given product ID. No-op if absent.
type RemoveItem struct {
	ProductID string
}

// UpdateQuantity sets the quantity of the entry with the given product
// ID. The reducer applies the value blindly: callers must route a
// quantity of zero or less to RemoveItem instead.
type UpdateQuantity struct {
	ProductID string
	Quantity  int
}

// ClearCart empties the item list.
type ClearCart struct{}

func (LoadCart) isAction()       {}
func (AddItem) isAction()        {}
func (RemoveItem) isAction()     {}
func (UpdateQuantity) isAction() {}
func (ClearCart) isAction()      {}

// Reduce computes the next state from the current state and one action.
// It is pure: the input state is never mutated and no side effects run
// here. Persistence belongs to the orchestration layer.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case LoadCart:
		items := make([]Item, len(a.Items))
		copy(items, a.Items)
		return State{Items: items}

	case AddItem:
		for i, item := range state.Items {
			if item.ProductID == a.Item.ProductID {
				items := make([]Item, len(state.Items))
				copy(items, state.Items)
				items[i].Quantity += a.Item.Quantity
				return State{Items: items}
			}
		}
		items := make([]Item, len(state.Items), len(state.Items)+1)
		copy(items, state.Items)
		return State{Items: append(items, a.Item)}

	case RemoveItem:
		items := make([]Item, 0, len(state.Items))
		for _, item := range state.Items {
			if item.ProductID != a.ProductID {
				items = append(items, item)
			}
		}
		return State{Items: items}

	case UpdateQuantity:
		items := make([]Item, len(state.Items))
		copy(items, state.Items)
		for i := range items {
			if items[i].ProductID == a.ProductID {
				items[i].Quantity = a.Quantity
			}
		}
		return State{Items: items}

	case ClearCart:
		return State{Items: []Item{}}

	default:
		return state
	}
}
