package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imdova/medicova-store-sub004/internal/domain"
)

func testItem(id string, price float64, qty int) domain.LineItem {
	return domain.LineItem{
		ProductID:  id,
		Price:      price,
		Quantity:   qty,
		TotalPrice: price * float64(qty),
	}
}

func TestEngine_DispatchReturnsCommittedState(t *testing.T) {
	e := New(domain.NewState())

	state := e.Dispatch(context.Background(), domain.AddItem{Item: testItem("p1", 10, 2)})

	require.Len(t, state.Cart.Items, 1)
	assert.Equal(t, 20.0, state.Cart.TotalPrice)
	assert.Equal(t, state, e.State())
}

func TestEngine_UnknownActionIsNoOp(t *testing.T) {
	e := New(domain.NewState())
	before := e.State()

	type oddball struct{ domain.ClearWishlist }
	state := e.Dispatch(context.Background(), oddball{})

	assert.Equal(t, before, state)
}

func TestEngine_SubscribeObservesTransitions(t *testing.T) {
	e := New(domain.NewState())

	var gotActions []string
	var lastState domain.State
	e.Subscribe(func(a domain.Action, s domain.State) {
		gotActions = append(gotActions, a.Name())
		lastState = s
	})

	e.Dispatch(context.Background(), domain.AddItem{Item: testItem("p1", 10, 1)})
	e.Dispatch(context.Background(), domain.ClearCart{})

	assert.Equal(t, []string{"cart/addItem", "cart/clear"}, gotActions)
	assert.Equal(t, e.State(), lastState)
}

func TestEngine_UnsubscribeStopsNotifications(t *testing.T) {
	e := New(domain.NewState())

	var calls int
	unsubscribe := e.Subscribe(func(domain.Action, domain.State) { calls++ })

	e.Dispatch(context.Background(), domain.ClearCart{})
	unsubscribe()
	e.Dispatch(context.Background(), domain.ClearCart{})

	assert.Equal(t, 1, calls)
}

func TestEngine_MiddlewareOrder(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(next Dispatcher) Dispatcher {
			return func(ctx context.Context, a domain.Action) domain.State {
				order = append(order, name+":before")
				state := next(ctx, a)
				order = append(order, name+":after")
				return state
			}
		}
	}

	e := New(domain.NewState(), tag("outer"), tag("inner"))
	e.Dispatch(context.Background(), domain.ClearCart{})

	assert.Equal(t, []string{
		"outer:before", "inner:before", "inner:after", "outer:after",
	}, order)
}

func TestEngine_MiddlewareSeesCommittedState(t *testing.T) {
	var observed domain.State
	capture := func(next Dispatcher) Dispatcher {
		return func(ctx context.Context, a domain.Action) domain.State {
			observed = next(ctx, a)
			return observed
		}
	}

	e := New(domain.NewState(), capture)
	e.Dispatch(context.Background(), domain.AddItem{Item: testItem("p1", 5, 3)})

	require.Len(t, observed.Cart.Items, 1)
	assert.Equal(t, 15.0, observed.Cart.TotalPrice)
}

func TestEngine_StateIsStableAcrossLaterDispatches(t *testing.T) {
	e := New(domain.NewState())

	e.Dispatch(context.Background(), domain.AddItem{Item: testItem("p1", 10, 1)})
	snapshot := e.State()
	e.Dispatch(context.Background(), domain.IncreaseQuantity{ProductID: "p1", Amount: 4})

	assert.Equal(t, 1, snapshot.Cart.Items[0].Quantity)
	assert.Equal(t, 5, e.State().Cart.Items[0].Quantity)
}
