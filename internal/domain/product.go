package domain

import "time"

// Product is a catalog record. The engine stores it verbatim; only the ID is
// inspected for identity matching.
type Product struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Brand         string    `json:"brand,omitempty"`
	Price         float64   `json:"price"`
	DiscountPrice float64   `json:"discountPrice,omitempty"`
	Images        []string  `json:"images,omitempty"`
	Category      string    `json:"category,omitempty"`
	Seller        string    `json:"seller,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}
