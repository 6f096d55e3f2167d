package service_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/cammarket/storefront/internal/core/domain"
	"github.com/cammarket/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubOrderRepo struct {
	byUser map[string][]domain.Order
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{byUser: make(map[string][]domain.Order)}
}

func (r *stubOrderRepo) StoreOrder(_ context.Context, order domain.Order) error {
	history := r.byUser[order.UserID]
	r.byUser[order.UserID] = append([]domain.Order{order}, history...)
	return nil
}

func (r *stubOrderRepo) OrdersByUser(
	_ context.Context, userID string,
) ([]domain.Order, error) {
	return r.byUser[userID], nil
}

func (r *stubOrderRepo) UpdateOrderStatus(
	_ context.Context, upd domain.OrderStatusUpdate,
) error {
	for userID, orders := range r.byUser {
		for i, o := range orders {
			if o.ID == upd.OrderID {
				r.byUser[userID][i].Status = upd.Status
				return nil
			}
		}
	}
	return nil
}

type MockOrderEventProducer struct {
	mock.Mock
}

func (m *MockOrderEventProducer) ProduceOrderPlaced(
	ctx context.Context, order domain.Order,
) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func testAddress() domain.Address {
	return domain.Address{
		FullName: "Ngono Marie",
		Phone:    "+237 670 00 00 00",
		Line1:    "Quartier Bastos",
		City:     "Yaounde",
		RegionID: "centre",
	}
}

func TestPlaceOrder(t *testing.T) {
	const user = "buyer-9"

	setup := func(t *testing.T) (service.CheckoutService, service.CartService) {
		t.Helper()
		source := cartFixture()
		carts := newStubCartStore()
		cartSvc := service.NewCartService(source, carts, nil)
		checkout := service.NewCheckoutService(
			source, carts, newStubOrderRepo(), nil, nil,
		)
		return checkout, cartSvc
	}

	t.Run("EmptyCartRejected", func(t *testing.T) {
		checkout, _ := setup(t)

		_, err := checkout.PlaceOrder(t.Context(), user, testAddress())
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrEmptyCart)
	})

	t.Run("SnapshotsCartLines", func(t *testing.T) {
		checkout, cartSvc := setup(t)
		require.NoError(t, cartSvc.Add(t.Context(), user, 1, 3))

		order, err := checkout.PlaceOrder(t.Context(), user, testAddress())
		require.NoError(t, err)

		require.Len(t, order.Lines, 1)
		assert.Equal(t, 1, order.Lines[0].ProductID)
		assert.Equal(t, 3, order.Lines[0].Quantity)
		assert.Equal(t, "8000", order.Lines[0].UnitPrice.String())
		assert.Equal(t, "26000", order.Totals.Total.String())
		assert.Equal(t, domain.OrderProcessing, order.Status)
		assert.Equal(t, testAddress(), order.Address)
		assert.False(t, order.PlacedAt.IsZero())
	})

	t.Run("ClearsCart", func(t *testing.T) {
		checkout, cartSvc := setup(t)
		require.NoError(t, cartSvc.Add(t.Context(), user, 1, 1))

		_, err := checkout.PlaceOrder(t.Context(), user, testAddress())
		require.NoError(t, err)

		view, err := cartSvc.Get(t.Context(), user)
		require.NoError(t, err)
		assert.Empty(t, view.Lines)
	})

	t.Run("NewestOrderFirstInHistory", func(t *testing.T) {
		checkout, cartSvc := setup(t)

		require.NoError(t, cartSvc.Add(t.Context(), user, 1, 1))
		first, err := checkout.PlaceOrder(t.Context(), user, testAddress())
		require.NoError(t, err)

		require.NoError(t, cartSvc.Add(t.Context(), user, 2, 1))
		second, err := checkout.PlaceOrder(t.Context(), user, testAddress())
		require.NoError(t, err)

		history, err := checkout.History(t.Context(), user)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, second.ID, history[0].ID)
		assert.Equal(t, first.ID, history[1].ID)
	})

	t.Run("IdentifierFormats", func(t *testing.T) {
		checkout, cartSvc := setup(t)
		require.NoError(t, cartSvc.Add(t.Context(), user, 1, 1))

		order, err := checkout.PlaceOrder(t.Context(), user, testAddress())
		require.NoError(t, err)

		assert.Regexp(t, regexp.MustCompile(`^ORD-\d{4}-\d{4}$`), order.ID)
		assert.Regexp(t, regexp.MustCompile(`^CAM\d{10}$`), order.Tracking)
	})

	t.Run("ProducesOrderEvent", func(t *testing.T) {
		source := cartFixture()
		carts := newStubCartStore()
		cartSvc := service.NewCartService(source, carts, nil)

		orderEvents := new(MockOrderEventProducer)
		orderEvents.On("ProduceOrderPlaced", mock.Anything, mock.MatchedBy(
			func(order domain.Order) bool {
				return order.UserID == user && len(order.Lines) == 1
			},
		)).Return(nil).Once()

		checkout := service.NewCheckoutService(
			source, carts, newStubOrderRepo(), orderEvents, nil,
		)

		require.NoError(t, cartSvc.Add(t.Context(), user, 1, 1))
		_, err := checkout.PlaceOrder(t.Context(), user, testAddress())
		require.NoError(t, err)

		orderEvents.AssertExpectations(t)
	})

	t.Run("EventFailureDoesNotFailOrder", func(t *testing.T) {
		source := cartFixture()
		carts := newStubCartStore()
		cartSvc := service.NewCartService(source, carts, nil)

		orderEvents := new(MockOrderEventProducer)
		orderEvents.On("ProduceOrderPlaced", mock.Anything, mock.Anything).
			Return(assert.AnError)

		checkout := service.NewCheckoutService(
			source, carts, newStubOrderRepo(), orderEvents, nil,
		)

		require.NoError(t, cartSvc.Add(t.Context(), user, 1, 1))
		order, err := checkout.PlaceOrder(t.Context(), user, testAddress())
		require.NoError(t, err)
		assert.NotEmpty(t, order.ID)
	})
}

func TestSaveOrderStatus(t *testing.T) {
	const user = "buyer-10"

	source := cartFixture()
	carts := newStubCartStore()
	cartSvc := service.NewCartService(source, carts, nil)
	checkout := service.NewCheckoutService(
		source, carts, newStubOrderRepo(), nil, nil,
	)

	require.NoError(t, cartSvc.Add(t.Context(), user, 1, 1))
	order, err := checkout.PlaceOrder(t.Context(), user, testAddress())
	require.NoError(t, err)

	t.Run("ValidStatus", func(t *testing.T) {
		upd := domain.OrderStatusUpdate{
			OrderID:  order.ID,
			Tracking: order.Tracking,
			Status:   domain.OrderDelivered,
		}
		require.NoError(t, checkout.SaveOrderStatus(t.Context(), upd))

		history, err := checkout.History(t.Context(), user)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, domain.OrderDelivered, history[0].Status)
	})

	t.Run("UnknownStatusRejected", func(t *testing.T) {
		upd := domain.OrderStatusUpdate{
			OrderID:  order.ID,
			Tracking: order.Tracking,
			Status:   domain.OrderStatus("teleported"),
		}
		err := checkout.SaveOrderStatus(t.Context(), upd)
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrInvalidStatus)
	})
}
