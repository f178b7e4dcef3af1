package event

import (
	"context"
	"fmt"
	"log/slog"

	pkgkafka "github.com/imdova/medicova-store-sub004/pkg/kafka"

	"github.com/imdova/medicova-store-sub004/internal/domain"
)

// Kafka topics for storefront domain events.
const (
	TopicCartUpdated     = "store.cart.updated"
	TopicCartCleared     = "store.cart.cleared"
	TopicWishlistUpdated = "store.wishlist.updated"
)

const (
	aggregateTypeCart     = "cart"
	aggregateTypeWishlist = "wishlist"
	source                = "storefront"
)

// CartUpdatedData is the payload for a cart.updated event.
type CartUpdatedData struct {
	UserID     string            `json:"user_id"`
	Items      []domain.LineItem `json:"items"`
	ItemCount  int               `json:"item_count"`
	TotalPrice float64           `json:"total_price"`
}

// CartClearedData is the payload for a cart.cleared event.
type CartClearedData struct {
	UserID string `json:"user_id"`
}

// WishlistUpdatedData is the payload for a wishlist.updated event.
type WishlistUpdatedData struct {
	UserID    string `json:"user_id"`
	ItemCount int    `json:"item_count"`
}

// Producer publishes storefront domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates an event producer for the storefront.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// CartUpdated publishes a cart.updated event.
func (p *Producer) CartUpdated(ctx context.Context, userID string, cart domain.CartState) error {
	data := CartUpdatedData{
		UserID:     userID,
		Items:      cart.Items,
		ItemCount:  cart.ItemCount(),
		TotalPrice: cart.TotalPrice,
	}

	ev, err := pkgkafka.NewEvent(TopicCartUpdated, userID, aggregateTypeCart, source, data)
	if err != nil {
		return fmt.Errorf("create cart.updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartUpdated, ev); err != nil {
		return fmt.Errorf("publish cart.updated event: %w", err)
	}
	return nil
}

// CartCleared publishes a cart.cleared event.
func (p *Producer) CartCleared(ctx context.Context, userID string) error {
	ev, err := pkgkafka.NewEvent(TopicCartCleared, userID, aggregateTypeCart, source, CartClearedData{UserID: userID})
	if err != nil {
		return fmt.Errorf("create cart.cleared event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartCleared, ev); err != nil {
		return fmt.Errorf("publish cart.cleared event: %w", err)
	}
	return nil
}

// WishlistUpdated publishes a wishlist.updated event.
func (p *Producer) WishlistUpdated(ctx context.Context, userID string, itemCount int) error {
	data := WishlistUpdatedData{UserID: userID, ItemCount: itemCount}

	ev, err := pkgkafka.NewEvent(TopicWishlistUpdated, userID, aggregateTypeWishlist, source, data)
	if err != nil {
		return fmt.Errorf("create wishlist.updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicWishlistUpdated, ev); err != nil {
		return fmt.Errorf("publish wishlist.updated event: %w", err)
	}
	return nil
}
