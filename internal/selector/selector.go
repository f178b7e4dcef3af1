// Package selector holds the pure read-only projections the presentation
// layer derives from engine state. Selectors never mutate state.
package selector

import (
	"strings"
	"time"

	"github.com/imdova/medicova-store-sub004/internal/domain"
	"github.com/imdova/medicova-store-sub004/pkg/pagination"
)

// CartItemCount returns the total quantity across all cart lines.
func CartItemCount(s domain.CartState) int {
	return s.ItemCount()
}

// CartLineCount returns the number of distinct lines in the cart.
func CartLineCount(s domain.CartState) int {
	return len(s.Items)
}

// WishlistOf returns the wishlist entries owned by the given user.
func WishlistOf(s domain.WishlistState, userID string) []domain.WishlistItem {
	out := make([]domain.WishlistItem, 0, len(s.Items))
	for _, it := range s.Items {
		if it.AddedBy == userID {
			out = append(out, it)
		}
	}
	return out
}

// Search filters items by a case-insensitive substring match across title,
// brand, and product ID. An empty query matches everything.
func Search(items []domain.WishlistItem, query string) []domain.WishlistItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	out := make([]domain.WishlistItem, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Title), q) ||
			strings.Contains(strings.ToLower(it.Brand), q) ||
			strings.Contains(strings.ToLower(it.ID), q) {
			out = append(out, it)
		}
	}
	return out
}

// AddedSince keeps items added at or after now minus the given number of
// months. A months value below 1 disables the filter.
func AddedSince(items []domain.WishlistItem, now time.Time, months int) []domain.WishlistItem {
	if months < 1 {
		return items
	}
	threshold := now.AddDate(0, -months, 0)

	out := make([]domain.WishlistItem, 0, len(items))
	for _, it := range items {
		if !it.AddedAt.Before(threshold) {
			out = append(out, it)
		}
	}
	return out
}

// Paginate slices items into the requested page. The page is clamped so a
// request past the end lands on the last page instead of an empty one.
func Paginate[T any](items []T, params pagination.Params) pagination.Result[T] {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PerPage < 1 {
		params.PerPage = pagination.DefaultParams().PerPage
	}

	total := len(items)

	lastPage := total / params.PerPage
	if total%params.PerPage > 0 {
		lastPage++
	}
	if lastPage > 0 && params.Page > lastPage {
		params.Page = lastPage
	}
	params.Offset = (params.Page - 1) * params.PerPage

	start := params.Offset
	if start > total {
		start = total
	}
	end := start + params.PerPage
	if end > total {
		end = total
	}

	return pagination.NewResult(items[start:end], total, params)
}
