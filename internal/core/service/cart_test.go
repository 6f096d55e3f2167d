package service_test

import (
	"context"
	"testing"

	"github.com/cammarket/storefront/internal/core/domain"
	"github.com/cammarket/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubCartStore struct {
	carts map[string]domain.Cart
}

func newStubCartStore() *stubCartStore {
	return &stubCartStore{carts: make(map[string]domain.Cart)}
}

func (s *stubCartStore) Cart(_ context.Context, userID string) (domain.Cart, error) {
	cart, ok := s.carts[userID]
	if !ok {
		return domain.Cart{UserID: userID}, nil
	}
	return cart, nil
}

func (s *stubCartStore) SaveCart(_ context.Context, cart domain.Cart) error {
	s.carts[cart.UserID] = cart
	return nil
}

func (s *stubCartStore) ClearCart(_ context.Context, userID string) error {
	delete(s.carts, userID)
	return nil
}

type MockClientEventProducer struct {
	mock.Mock
}

func (m *MockClientEventProducer) ProduceClientEvent(
	ctx context.Context, ev domain.ClientEvent,
) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func cartFixture() stubSource {
	return stubSource{products: []domain.Product{
		{ID: 1, Name: "Discounted Phone", Price: 10000, Discount: 20,
			CategoryID: "electronics", Stock: 5, Condition: domain.ConditionNew},
		{ID: 2, Name: "Plain Kettle", Price: 4000,
			CategoryID: "electronics", Stock: 2, Condition: domain.ConditionNew},
		{ID: 3, Name: "Sold Out Lamp", Price: 9000,
			CategoryID: "home-living", Stock: 0, Condition: domain.ConditionNew},
	}}
}

func TestCartAdd(t *testing.T) {
	const user = "buyer-1"

	t.Run("NewItem", func(t *testing.T) {
		svc := service.NewCartService(cartFixture(), newStubCartStore(), nil)

		require.NoError(t, svc.Add(t.Context(), user, 1, 2))

		view, err := svc.Get(t.Context(), user)
		require.NoError(t, err)
		require.Len(t, view.Lines, 1)
		assert.Equal(t, 2, view.Lines[0].Quantity)
	})

	t.Run("ExistingItemIncrements", func(t *testing.T) {
		svc := service.NewCartService(cartFixture(), newStubCartStore(), nil)

		require.NoError(t, svc.Add(t.Context(), user, 1, 1))
		require.NoError(t, svc.Add(t.Context(), user, 1, 2))

		view, err := svc.Get(t.Context(), user)
		require.NoError(t, err)
		require.Len(t, view.Lines, 1, "no duplicate lines per product")
		assert.Equal(t, 3, view.Lines[0].Quantity)
	})

	t.Run("BeyondStockIsNoop", func(t *testing.T) {
		svc := service.NewCartService(cartFixture(), newStubCartStore(), nil)

		require.NoError(t, svc.Add(t.Context(), user, 2, 2))
		require.NoError(t, svc.Add(t.Context(), user, 2, 1)) // stock is 2

		view, err := svc.Get(t.Context(), user)
		require.NoError(t, err)
		assert.Equal(t, 2, view.Lines[0].Quantity)
	})

	t.Run("OutOfStockRejected", func(t *testing.T) {
		svc := service.NewCartService(cartFixture(), newStubCartStore(), nil)

		err := svc.Add(t.Context(), user, 3, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrOutOfStock)
	})

	t.Run("UnknownProductRejected", func(t *testing.T) {
		svc := service.NewCartService(cartFixture(), newStubCartStore(), nil)

		err := svc.Add(t.Context(), user, 404, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrProductNotFound)
	})

	t.Run("EmitsClientEvent", func(t *testing.T) {
		events := new(MockClientEventProducer)
		events.On("ProduceClientEvent", mock.Anything, mock.MatchedBy(
			func(ev domain.ClientEvent) bool {
				return ev.Kind == domain.EventCartAdd &&
					ev.UserID == user && ev.ProductID == 1 &&
					ev.EventID != ""
			},
		)).Return(nil)

		svc := service.NewCartService(cartFixture(), newStubCartStore(), events)
		require.NoError(t, svc.Add(t.Context(), user, 1, 1))

		events.AssertExpectations(t)
	})
}

func TestCartQuantityBounds(t *testing.T) {
	const user = "buyer-2"

	setup := func(t *testing.T, qty int) (service.CartService, func() int) {
		t.Helper()
		svc := service.NewCartService(cartFixture(), newStubCartStore(), nil)
		require.NoError(t, svc.Add(t.Context(), user, 2, qty))

		current := func() int {
			view, err := svc.Get(t.Context(), user)
			require.NoError(t, err)
			require.Len(t, view.Lines, 1)
			return view.Lines[0].Quantity
		}
		return svc, current
	}

	t.Run("IncrementWithinStock", func(t *testing.T) {
		svc, current := setup(t, 1)
		require.NoError(t, svc.Increment(t.Context(), user, 2))
		assert.Equal(t, 2, current())
	})

	t.Run("IncrementAtStockIsNoop", func(t *testing.T) {
		svc, current := setup(t, 2) // stock is 2
		require.NoError(t, svc.Increment(t.Context(), user, 2))
		assert.Equal(t, 2, current())
	})

	t.Run("DecrementAboveOne", func(t *testing.T) {
		svc, current := setup(t, 2)
		require.NoError(t, svc.Decrement(t.Context(), user, 2))
		assert.Equal(t, 1, current())
	})

	t.Run("DecrementAtOneIsNoop", func(t *testing.T) {
		svc, current := setup(t, 1)
		require.NoError(t, svc.Decrement(t.Context(), user, 2))
		assert.Equal(t, 1, current())
	})

	t.Run("MissingLineIsNoop", func(t *testing.T) {
		svc, _ := setup(t, 1)
		require.NoError(t, svc.Increment(t.Context(), user, 1))

		view, err := svc.Get(t.Context(), user)
		require.NoError(t, err)
		assert.Len(t, view.Lines, 1)
	})
}

func TestCartRemove(t *testing.T) {
	const user = "buyer-3"

	svc := service.NewCartService(cartFixture(), newStubCartStore(), nil)
	require.NoError(t, svc.Add(t.Context(), user, 1, 1))
	require.NoError(t, svc.Add(t.Context(), user, 2, 1))

	require.NoError(t, svc.Remove(t.Context(), user, 1))

	view, err := svc.Get(t.Context(), user)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.Lines[0].Product.ID)

	// removing an absent product is a no-op
	require.NoError(t, svc.Remove(t.Context(), user, 1))

	require.NoError(t, svc.Clear(t.Context(), user))

	view, err = svc.Get(t.Context(), user)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}

func TestCartTotals(t *testing.T) {
	const user = "buyer-4"

	t.Run("DiscountScenario", func(t *testing.T) {
		// price 10000, discount 20%, quantity 3:
		// effective 8000, subtotal 24000, savings 6000, total 26000
		svc := service.NewCartService(cartFixture(), newStubCartStore(), nil)
		require.NoError(t, svc.Add(t.Context(), user, 1, 3))

		view, err := svc.Get(t.Context(), user)
		require.NoError(t, err)

		require.Len(t, view.Lines, 1)
		assert.Equal(t, "8000", view.Lines[0].EffectivePrice.String())
		assert.Equal(t, "24000", view.Lines[0].LineTotal.String())
		assert.Equal(t, "24000", view.Totals.Subtotal.String())
		assert.Equal(t, "6000", view.Totals.Savings.String())
		assert.Equal(t, "2000", view.Totals.DeliveryFee.String())
		assert.Equal(t, "26000", view.Totals.Total.String())
	})

	t.Run("TotalIsSubtotalPlusFee", func(t *testing.T) {
		svc := service.NewCartService(cartFixture(), newStubCartStore(), nil)
		require.NoError(t, svc.Add(t.Context(), user, 1, 2))
		require.NoError(t, svc.Add(t.Context(), user, 2, 1))

		view, err := svc.Get(t.Context(), user)
		require.NoError(t, err)

		sum := view.Totals.Subtotal.Add(view.Totals.DeliveryFee)
		assert.True(t, view.Totals.Total.Equal(sum))
	})

	t.Run("SavingsOnlyOverDiscountedLines", func(t *testing.T) {
		svc := service.NewCartService(cartFixture(), newStubCartStore(), nil)
		require.NoError(t, svc.Add(t.Context(), user, 2, 2)) // no discount

		view, err := svc.Get(t.Context(), user)
		require.NoError(t, err)
		assert.Equal(t, "0", view.Totals.Savings.String())
	})

	t.Run("EmptyCart", func(t *testing.T) {
		svc := service.NewCartService(cartFixture(), newStubCartStore(), nil)

		view, err := svc.Get(t.Context(), user)
		require.NoError(t, err)
		assert.Empty(t, view.Lines)
		assert.Equal(t, "0", view.Totals.Subtotal.String())
		assert.Equal(t, "2000", view.Totals.Total.String())
	})
}
