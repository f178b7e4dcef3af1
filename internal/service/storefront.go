package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	apperrors "github.com/imdova/medicova-store-sub004/pkg/errors"
	"github.com/imdova/medicova-store-sub004/pkg/pagination"

	"github.com/imdova/medicova-store-sub004/internal/domain"
	"github.com/imdova/medicova-store-sub004/internal/selector"
	"github.com/imdova/medicova-store-sub004/internal/snapshot"
	"github.com/imdova/medicova-store-sub004/internal/store"
)

// CatalogClient fetches canonical product records for wishlist enrichment.
type CatalogClient interface {
	Product(ctx context.Context, id string) (domain.Product, error)
}

// EventPublisher publishes storefront domain events. Publish failures are
// logged by the caller and never affect the committed state transition.
type EventPublisher interface {
	CartUpdated(ctx context.Context, userID string, cart domain.CartState) error
	CartCleared(ctx context.Context, userID string) error
	WishlistUpdated(ctx context.Context, userID string, itemCount int) error
}

// AddItemInput holds the parameters for adding a line to the cart.
type AddItemInput struct {
	ProductID      string
	Title          string
	Price          float64
	DiscountPrice  float64
	Quantity       int
	Size           string
	Color          string
	ShippingFee    float64
	WeightKg       float64
	ShippingMethod string
	DeliveryTime   string
	Brand          string
	Seller         string
}

// Storefront owns one state engine per user, hydrated lazily from the
// snapshot store, and exposes the cart and wishlist operations the HTTP
// layer dispatches through.
type Storefront struct {
	mu        sync.Mutex
	engines   map[string]*store.Engine
	snapshots snapshot.Store
	events    EventPublisher
	catalog   CatalogClient
	logger    *slog.Logger
	now       func() time.Time
}

// New creates a storefront service. events and catalog may be nil; the
// corresponding side effects are then skipped.
func New(snapshots snapshot.Store, events EventPublisher, catalog CatalogClient, logger *slog.Logger) *Storefront {
	return &Storefront{
		engines:   make(map[string]*store.Engine),
		snapshots: snapshots,
		events:    events,
		catalog:   catalog,
		logger:    logger,
		now:       time.Now,
	}
}

func cartKey(userID string) string {
	return snapshot.DefaultCartKey + ":" + userID
}

// engine returns the state engine for a user, building and hydrating it on
// first touch. A failed hydration degrades to an empty cart; it never blocks
// the session.
func (s *Storefront) engine(ctx context.Context, userID string) *store.Engine {
	s.mu.Lock()
	defer s.mu.Unlock()

	if eng, ok := s.engines[userID]; ok {
		return eng
	}

	hydrated, err := s.snapshots.Load(ctx, cartKey(userID))
	if err != nil {
		s.logger.ErrorContext(ctx, "cart hydration failed, starting empty",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		hydrated = domain.EmptyCart()
	}

	eng := store.New(domain.NewState(),
		store.Persist(s.snapshots, cartKey(userID), s.logger),
	)
	eng.Subscribe(s.publishEvents(userID))
	eng.Dispatch(ctx, domain.ReplaceCart{State: hydrated})

	s.engines[userID] = eng
	return eng
}

// publishEvents maps committed transitions to domain events. Hydration
// (ReplaceCart) publishes nothing.
func (s *Storefront) publishEvents(userID string) store.Listener {
	return func(a domain.Action, st domain.State) {
		if s.events == nil {
			return
		}

		ctx := context.Background()
		var err error

		switch a.(type) {
		case domain.AddItem, domain.IncreaseQuantity, domain.DecreaseQuantity, domain.RemoveItem:
			err = s.events.CartUpdated(ctx, userID, st.Cart)
		case domain.ClearCart:
			err = s.events.CartCleared(ctx, userID)
		case domain.AddToWishlist, domain.RemoveFromWishlist, domain.ClearWishlist:
			err = s.events.WishlistUpdated(ctx, userID, len(selector.WishlistOf(st.Wishlist, userID)))
		default:
			return
		}

		if err != nil {
			s.logger.Error("failed to publish storefront event",
				slog.String("user_id", userID),
				slog.String("action", a.Name()),
				slog.String("error", err.Error()),
			)
		}
	}
}

// GetCart returns the user's current cart state.
func (s *Storefront) GetCart(ctx context.Context, userID string) (domain.CartState, error) {
	if userID == "" {
		return domain.CartState{}, apperrors.InvalidInput("user id is required")
	}
	return s.engine(ctx, userID).State().Cart, nil
}

// AddItem adds a line to the cart, merging with an existing line when the
// full (product, size, color) variant matches.
func (s *Storefront) AddItem(ctx context.Context, userID string, input AddItemInput) (domain.CartState, error) {
	if userID == "" {
		return domain.CartState{}, apperrors.InvalidInput("user id is required")
	}
	if input.ProductID == "" {
		return domain.CartState{}, apperrors.InvalidInput("product id is required")
	}
	if input.Price < 0 {
		return domain.CartState{}, apperrors.InvalidInput("price must not be negative")
	}

	state := s.engine(ctx, userID).Dispatch(ctx, domain.AddItem{Item: domain.LineItem{
		ProductID:      input.ProductID,
		Title:          input.Title,
		Price:          input.Price,
		DiscountPrice:  input.DiscountPrice,
		Quantity:       input.Quantity,
		Size:           input.Size,
		Color:          input.Color,
		ShippingFee:    input.ShippingFee,
		WeightKg:       input.WeightKg,
		ShippingMethod: input.ShippingMethod,
		DeliveryTime:   input.DeliveryTime,
		Brand:          input.Brand,
		Seller:         input.Seller,
	}})

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("user_id", userID),
		slog.String("product_id", input.ProductID),
		slog.Int("quantity", input.Quantity),
	)

	return state.Cart, nil
}

// IncreaseQuantity bumps the first line matching the product ID.
func (s *Storefront) IncreaseQuantity(ctx context.Context, userID, productID string, amount int) (domain.CartState, error) {
	if userID == "" {
		return domain.CartState{}, apperrors.InvalidInput("user id is required")
	}
	if productID == "" {
		return domain.CartState{}, apperrors.InvalidInput("product id is required")
	}

	eng := s.engine(ctx, userID)
	if !cartHasProduct(eng.State().Cart, productID) {
		return domain.CartState{}, apperrors.NotFound("cart item", productID)
	}

	state := eng.Dispatch(ctx, domain.IncreaseQuantity{ProductID: productID, Amount: amount})
	return state.Cart, nil
}

// DecreaseQuantity lowers the first line matching the product ID, removing
// it when the quantity reaches zero.
func (s *Storefront) DecreaseQuantity(ctx context.Context, userID, productID string, amount int) (domain.CartState, error) {
	if userID == "" {
		return domain.CartState{}, apperrors.InvalidInput("user id is required")
	}
	if productID == "" {
		return domain.CartState{}, apperrors.InvalidInput("product id is required")
	}

	eng := s.engine(ctx, userID)
	if !cartHasProduct(eng.State().Cart, productID) {
		return domain.CartState{}, apperrors.NotFound("cart item", productID)
	}

	state := eng.Dispatch(ctx, domain.DecreaseQuantity{ProductID: productID, Amount: amount})
	return state.Cart, nil
}

// RemoveItem deletes the first line matching the product ID.
func (s *Storefront) RemoveItem(ctx context.Context, userID, productID string) (domain.CartState, error) {
	if userID == "" {
		return domain.CartState{}, apperrors.InvalidInput("user id is required")
	}
	if productID == "" {
		return domain.CartState{}, apperrors.InvalidInput("product id is required")
	}

	eng := s.engine(ctx, userID)
	if !cartHasProduct(eng.State().Cart, productID) {
		return domain.CartState{}, apperrors.NotFound("cart item", productID)
	}

	state := eng.Dispatch(ctx, domain.RemoveItem{ProductID: productID})

	s.logger.InfoContext(ctx, "item removed from cart",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
	)

	return state.Cart, nil
}

// ClearCart resets the user's cart to the canonical empty state.
func (s *Storefront) ClearCart(ctx context.Context, userID string) error {
	if userID == "" {
		return apperrors.InvalidInput("user id is required")
	}

	s.engine(ctx, userID).Dispatch(ctx, domain.ClearCart{})

	s.logger.InfoContext(ctx, "cart cleared", slog.String("user_id", userID))
	return nil
}

// WishlistQuery narrows the wishlist projection.
type WishlistQuery struct {
	Search string
	Months int
	Page   pagination.Params
}

// Wishlist returns the user's wishlist entries filtered and paginated.
func (s *Storefront) Wishlist(ctx context.Context, userID string, q WishlistQuery) (pagination.Result[domain.WishlistItem], error) {
	if userID == "" {
		return pagination.Result[domain.WishlistItem]{}, apperrors.InvalidInput("user id is required")
	}

	items := selector.WishlistOf(s.engine(ctx, userID).State().Wishlist, userID)
	items = selector.Search(items, q.Search)
	items = selector.AddedSince(items, s.now().UTC(), q.Months)

	return selector.Paginate(items, q.Page), nil
}

// AddToWishlist saves a product for the user. The catalog's canonical record
// is preferred; when the catalog is unreachable the submitted payload is
// stored verbatim.
func (s *Storefront) AddToWishlist(ctx context.Context, userID string, payload domain.Product) (domain.WishlistState, error) {
	if userID == "" {
		return domain.WishlistState{}, apperrors.InvalidInput("user id is required")
	}
	if payload.ID == "" {
		return domain.WishlistState{}, apperrors.InvalidInput("product id is required")
	}

	product := payload
	if s.catalog != nil {
		if enriched, err := s.catalog.Product(ctx, payload.ID); err != nil {
			s.logger.WarnContext(ctx, "catalog lookup failed, storing submitted payload",
				slog.String("product_id", payload.ID),
				slog.String("error", err.Error()),
			)
		} else {
			product = enriched
		}
	}

	state := s.engine(ctx, userID).Dispatch(ctx, domain.AddToWishlist{
		Product: product,
		UserID:  userID,
		AddedAt: s.now().UTC(),
	})

	return state.Wishlist, nil
}

// RemoveFromWishlist drops the user's entry for the given product.
func (s *Storefront) RemoveFromWishlist(ctx context.Context, userID, productID string) (domain.WishlistState, error) {
	if userID == "" {
		return domain.WishlistState{}, apperrors.InvalidInput("user id is required")
	}
	if productID == "" {
		return domain.WishlistState{}, apperrors.InvalidInput("product id is required")
	}

	state := s.engine(ctx, userID).Dispatch(ctx, domain.RemoveFromWishlist{
		ProductID: productID,
		UserID:    userID,
	})
	return state.Wishlist, nil
}

// ClearWishlist drops all of the user's wishlist entries.
func (s *Storefront) ClearWishlist(ctx context.Context, userID string) error {
	if userID == "" {
		return apperrors.InvalidInput("user id is required")
	}

	s.engine(ctx, userID).Dispatch(ctx, domain.ClearWishlist{UserID: userID})

	s.logger.InfoContext(ctx, "wishlist cleared", slog.String("user_id", userID))
	return nil
}

func cartHasProduct(cart domain.CartState, productID string) bool {
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			return true
		}
	}
	return false
}
