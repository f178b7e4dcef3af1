package domain

// State is the root value managed by the store engine.
type State struct {
	Cart     CartState
	Wishlist WishlistState
}

// NewState returns the empty root state.
func NewState() State {
	return State{Cart: EmptyCart(), Wishlist: EmptyWishlist()}
}

// Reduce applies an action and returns the next state. It is a pure
// function: the input state is never mutated, and unknown actions return the
// state unchanged.
func Reduce(s State, a Action) State {
	switch act := a.(type) {
	case AddItem:
		s.Cart = reduceAddItem(s.Cart, act)
	case IncreaseQuantity:
		s.Cart = reduceIncreaseQuantity(s.Cart, act)
	case DecreaseQuantity:
		s.Cart = reduceDecreaseQuantity(s.Cart, act)
	case RemoveItem:
		s.Cart = reduceRemoveItem(s.Cart, act)
	case ClearCart:
		s.Cart = EmptyCart()
	case ReplaceCart:
		s.Cart = reduceReplaceCart(act)
	case AddToWishlist:
		s.Wishlist = reduceAddToWishlist(s.Wishlist, act)
	case RemoveFromWishlist:
		s.Wishlist = reduceRemoveFromWishlist(s.Wishlist, act)
	case ClearWishlist:
		s.Wishlist = reduceClearWishlist(s.Wishlist, act)
	}
	return s
}

func reduceAddItem(s CartState, a AddItem) CartState {
	s = s.clone()

	item := a.Item
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	if i := s.findVariant(item.VariantKey()); i >= 0 {
		s.Items[i].Quantity += item.Quantity
		s.Items[i].TotalPrice = s.Items[i].Price * float64(s.Items[i].Quantity)
	} else {
		item.TotalPrice = item.Price * float64(item.Quantity)
		s.Items = append(s.Items, item)
	}

	// Full re-derivation rather than an incremental add: the aggregate must
	// equal the sum of the line totals even after float drift.
	s.TotalPrice = sumLineTotals(s.Items)
	return s
}

func reduceIncreaseQuantity(s CartState, a IncreaseQuantity) CartState {
	amount := a.Amount
	if amount < 1 {
		amount = 1
	}

	i := s.findProduct(a.ProductID)
	if i < 0 {
		return s
	}

	s = s.clone()
	s.Items[i].Quantity += amount
	s.Items[i].TotalPrice = s.Items[i].Price * float64(s.Items[i].Quantity)
	// Incremental aggregate bump, unlike AddItem's full re-derivation.
	s.TotalPrice += s.Items[i].Price * float64(amount)
	return s
}

func reduceDecreaseQuantity(s CartState, a DecreaseQuantity) CartState {
	amount := a.Amount
	if amount < 1 {
		amount = 1
	}

	i := s.findProduct(a.ProductID)
	if i < 0 {
		return s
	}

	s = s.clone()
	if s.Items[i].Quantity-amount > 0 {
		s.Items[i].Quantity -= amount
		s.Items[i].TotalPrice = s.Items[i].Price * float64(s.Items[i].Quantity)
		s.TotalPrice -= s.Items[i].Price * float64(amount)
	} else {
		s.TotalPrice -= s.Items[i].TotalPrice
		s.Items = append(s.Items[:i], s.Items[i+1:]...)
	}
	return s
}

func reduceRemoveItem(s CartState, a RemoveItem) CartState {
	i := s.findProduct(a.ProductID)
	if i < 0 {
		return s
	}

	s = s.clone()
	s.TotalPrice -= s.Items[i].TotalPrice
	s.Items = append(s.Items[:i], s.Items[i+1:]...)
	return s
}

func reduceReplaceCart(a ReplaceCart) CartState {
	next := a.State.clone()
	if next.Items == nil {
		next.Items = []LineItem{}
	}
	return next
}

func reduceAddToWishlist(s WishlistState, a AddToWishlist) WishlistState {
	if a.UserID == "" {
		// Contract violation at the call site, not a user-facing error.
		return s
	}
	if s.contains(a.Product.ID, a.UserID) {
		return s
	}

	s = s.clone()
	s.Items = append(s.Items, WishlistItem{
		Product: a.Product,
		AddedBy: a.UserID,
		AddedAt: a.AddedAt,
	})
	return s
}

func reduceRemoveFromWishlist(s WishlistState, a RemoveFromWishlist) WishlistState {
	for i := range s.Items {
		if s.Items[i].ID == a.ProductID && s.Items[i].AddedBy == a.UserID {
			s = s.clone()
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return s
		}
	}
	return s
}

func reduceClearWishlist(s WishlistState, a ClearWishlist) WishlistState {
	kept := make([]WishlistItem, 0, len(s.Items))
	for _, it := range s.Items {
		if it.AddedBy != a.UserID {
			kept = append(kept, it)
		}
	}
	s.Items = kept
	return s
}
