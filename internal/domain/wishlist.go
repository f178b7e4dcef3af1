package domain

import "time"

// WishlistItem is a catalog product saved by one user. AddedBy is required;
// additions without an owner are dropped by the reducer.
type WishlistItem struct {
	Product
	AddedBy string    `json:"addedBy"`
	AddedAt time.Time `json:"addedAt"`
}

// WishlistState holds saved products for all users sharing the engine,
// unique by (product ID, owner).
type WishlistState struct {
	Items []WishlistItem `json:"items"`
}

// EmptyWishlist returns the canonical empty wishlist state.
func EmptyWishlist() WishlistState {
	return WishlistState{Items: []WishlistItem{}}
}

// contains reports whether the given owner already saved the product.
func (s WishlistState) contains(productID, userID string) bool {
	for i := range s.Items {
		if s.Items[i].ID == productID && s.Items[i].AddedBy == userID {
			return true
		}
	}
	return false
}

// clone returns a copy of the state with its own backing array.
func (s WishlistState) clone() WishlistState {
	items := make([]WishlistItem, len(s.Items))
	copy(items, s.Items)
	s.Items = items
	return s
}
