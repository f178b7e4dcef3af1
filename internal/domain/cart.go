package domain

// LineItem is one distinct purchasable entry in the cart. Two lines are the
// same entry only when product, size, and color all match; the cart keeps at
// most one line per such variant.
type LineItem struct {
	ProductID      string  `json:"id"`
	Title          string  `json:"title,omitempty"`
	Price          float64 `json:"price"`
	DiscountPrice  float64 `json:"discountPrice,omitempty"`
	Quantity       int     `json:"quantity"`
	TotalPrice     float64 `json:"totalPrice"`
	Size           string  `json:"size,omitempty"`
	Color          string  `json:"color,omitempty"`
	ShippingFee    float64 `json:"shippingFee,omitempty"`
	WeightKg       float64 `json:"weightKg,omitempty"`
	ShippingMethod string  `json:"shippingMethod,omitempty"`
	DeliveryTime   string  `json:"deliveryTime,omitempty"`
	Brand          string  `json:"brand,omitempty"`
	Seller         string  `json:"seller,omitempty"`
}

// VariantKey returns the composite identity used to match lines on add:
// product ID plus the optional size and color selectors.
func (li LineItem) VariantKey() string {
	return li.ProductID + "|" + li.Size + "|" + li.Color
}

// CartState holds the cart's line items and the derived aggregate total.
// The JSON field names are pinned to the persisted snapshot layout, so stored
// snapshots from older builds hydrate unchanged.
type CartState struct {
	Items      []LineItem `json:"products"`
	TotalPrice float64    `json:"totalPrice"`
}

// EmptyCart returns the canonical empty cart state.
func EmptyCart() CartState {
	return CartState{Items: []LineItem{}, TotalPrice: 0}
}

// ItemCount returns the total quantity across all lines.
func (s CartState) ItemCount() int {
	var count int
	for _, li := range s.Items {
		count += li.Quantity
	}
	return count
}

// findVariant returns the index of the line matching the full variant key,
// or -1 if no line matches.
func (s CartState) findVariant(key string) int {
	for i := range s.Items {
		if s.Items[i].VariantKey() == key {
			return i
		}
	}
	return -1
}

// findProduct returns the index of the first line with the given product ID,
// ignoring size and color, or -1 if no line matches.
func (s CartState) findProduct(productID string) int {
	for i := range s.Items {
		if s.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// clone returns a copy of the state with its own backing array, so reducers
// never mutate a state value a caller may still hold.
func (s CartState) clone() CartState {
	items := make([]LineItem, len(s.Items))
	copy(items, s.Items)
	s.Items = items
	return s
}

// sumLineTotals re-derives the aggregate from scratch.
func sumLineTotals(items []LineItem) float64 {
	var total float64
	for _, li := range items {
		total += li.TotalPrice
	}
	return total
}
