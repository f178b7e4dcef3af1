package domain

import "time"

// Action namespace prefixes. The persistence middleware keys off these to
// decide which transitions get mirrored to durable storage.
const (
	NamespaceCart     = "cart/"
	NamespaceWishlist = "wishlist/"
)

// Action is a state-transition request. Each kind is its own struct so the
// reducer can match exhaustively instead of inspecting loose payloads.
type Action interface {
	// Name returns the namespaced action name, e.g. "cart/addItem".
	Name() string
}

// AddItem appends a new line or merges into the line with the same
// (product, size, color) variant. A quantity below 1 counts as 1.
type AddItem struct {
	Item LineItem
}

func (AddItem) Name() string { return "cart/addItem" }

// IncreaseQuantity bumps the first line matching the product ID. Unlike
// AddItem it ignores size and color; when several variants of the same
// product are in the cart, the first one wins.
type IncreaseQuantity struct {
	ProductID string
	Amount    int
}

func (IncreaseQuantity) Name() string { return "cart/increaseQuantity" }

// DecreaseQuantity lowers the first line matching the product ID, removing
// the line entirely once its quantity would drop to zero or below.
type DecreaseQuantity struct {
	ProductID string
	Amount    int
}

func (DecreaseQuantity) Name() string { return "cart/decreaseQuantity" }

// RemoveItem deletes the first line matching the product ID.
type RemoveItem struct {
	ProductID string
}

func (RemoveItem) Name() string { return "cart/removeItem" }

// ClearCart resets the cart to the canonical empty state.
type ClearCart struct{}

func (ClearCart) Name() string { return "cart/clear" }

// ReplaceCart overwrites the cart wholesale. Used for rehydration from a
// persisted snapshot.
type ReplaceCart struct {
	State CartState
}

func (ReplaceCart) Name() string { return "cart/replace" }

// AddToWishlist saves a product for one user. Idempotent per (product,
// user); a missing user ID makes the action a no-op.
type AddToWishlist struct {
	Product Product
	UserID  string
	AddedAt time.Time
}

func (AddToWishlist) Name() string { return "wishlist/add" }

// RemoveFromWishlist drops the single (product, user) entry.
type RemoveFromWishlist struct {
	ProductID string
	UserID    string
}

func (RemoveFromWishlist) Name() string { return "wishlist/remove" }

// ClearWishlist drops every entry owned by the given user. Entries saved by
// other users sharing the engine are untouched.
type ClearWishlist struct {
	UserID string
}

func (ClearWishlist) Name() string { return "wishlist/clear" }
