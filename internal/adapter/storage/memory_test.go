package storage_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/cammarket/storefront/internal/adapter/storage"
	"github.com/cammarket/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCartStore(t *testing.T) {
	const user = "buyer-1"

	t.Run("MissingCartIsEmpty", func(t *testing.T) {
		store := storage.NewMemoryCartStore()

		cart, err := store.Cart(t.Context(), user)
		require.NoError(t, err)
		assert.Equal(t, user, cart.UserID)
		assert.Empty(t, cart.Items)
	})

	t.Run("SaveThenLoad", func(t *testing.T) {
		store := storage.NewMemoryCartStore()

		saved := domain.Cart{
			UserID: user,
			Items:  []domain.CartItem{{ProductID: 1, Quantity: 2}},
		}
		require.NoError(t, store.SaveCart(t.Context(), saved))

		cart, err := store.Cart(t.Context(), user)
		require.NoError(t, err)
		assert.Equal(t, saved, cart)
	})

	t.Run("ReturnsCopies", func(t *testing.T) {
		store := storage.NewMemoryCartStore()

		require.NoError(t, store.SaveCart(t.Context(), domain.Cart{
			UserID: user,
			Items:  []domain.CartItem{{ProductID: 1, Quantity: 2}},
		}))

		cart, err := store.Cart(t.Context(), user)
		require.NoError(t, err)
		cart.Items[0].Quantity = 99

		again, err := store.Cart(t.Context(), user)
		require.NoError(t, err)
		assert.Equal(t, 2, again.Items[0].Quantity)
	})

	t.Run("Clear", func(t *testing.T) {
		store := storage.NewMemoryCartStore()

		require.NoError(t, store.SaveCart(t.Context(), domain.Cart{
			UserID: user,
			Items:  []domain.CartItem{{ProductID: 1, Quantity: 1}},
		}))
		require.NoError(t, store.ClearCart(t.Context(), user))

		cart, err := store.Cart(t.Context(), user)
		require.NoError(t, err)
		assert.Empty(t, cart.Items)
	})

	t.Run("ConcurrentUsers", func(t *testing.T) {
		store := storage.NewMemoryCartStore()

		var wg sync.WaitGroup
		for i := range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				userID := fmt.Sprintf("buyer-%d", i)
				cart := domain.Cart{
					UserID: userID,
					Items:  []domain.CartItem{{ProductID: i, Quantity: 1}},
				}
				assert.NoError(t, store.SaveCart(t.Context(), cart))
				_, err := store.Cart(t.Context(), userID)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()
	})
}

func TestMemoryWishlistStore(t *testing.T) {
	const user = "buyer-2"

	t.Run("SaveThenLoad", func(t *testing.T) {
		store := storage.NewMemoryWishlistStore()

		require.NoError(t, store.SaveWishlist(t.Context(), user, []int{3, 1, 2}))

		ids, err := store.Wishlist(t.Context(), user)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 1, 2}, ids, "insertion order kept")
	})

	t.Run("ReturnsCopies", func(t *testing.T) {
		store := storage.NewMemoryWishlistStore()

		require.NoError(t, store.SaveWishlist(t.Context(), user, []int{1}))

		ids, err := store.Wishlist(t.Context(), user)
		require.NoError(t, err)
		ids[0] = 99

		again, err := store.Wishlist(t.Context(), user)
		require.NoError(t, err)
		assert.Equal(t, []int{1}, again)
	})
}

func TestMemoryOrderRepository(t *testing.T) {
	const user = "buyer-3"

	newOrder := func(id string, placedAt time.Time) domain.Order {
		return domain.Order{
			ID:       id,
			UserID:   user,
			Status:   domain.OrderProcessing,
			PlacedAt: placedAt,
		}
	}

	t.Run("NewestFirst", func(t *testing.T) {
		repo := storage.NewMemoryOrderRepository()
		now := time.Now()

		require.NoError(t, repo.StoreOrder(
			t.Context(), newOrder("ORD-2026-0001", now)),
		)
		require.NoError(t, repo.StoreOrder(
			t.Context(), newOrder("ORD-2026-0002", now.Add(time.Minute))),
		)

		orders, err := repo.OrdersByUser(t.Context(), user)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "ORD-2026-0002", orders[0].ID)
		assert.Equal(t, "ORD-2026-0001", orders[1].ID)
	})

	t.Run("HistoryIsPerUser", func(t *testing.T) {
		repo := storage.NewMemoryOrderRepository()

		require.NoError(t, repo.StoreOrder(
			t.Context(), newOrder("ORD-2026-0003", time.Now())),
		)

		orders, err := repo.OrdersByUser(t.Context(), "someone-else")
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("UpdateStatus", func(t *testing.T) {
		repo := storage.NewMemoryOrderRepository()

		require.NoError(t, repo.StoreOrder(
			t.Context(), newOrder("ORD-2026-0004", time.Now())),
		)

		upd := domain.OrderStatusUpdate{
			OrderID: "ORD-2026-0004",
			Status:  domain.OrderCancelled,
		}
		require.NoError(t, repo.UpdateOrderStatus(t.Context(), upd))

		orders, err := repo.OrdersByUser(t.Context(), user)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, domain.OrderCancelled, orders[0].Status)
	})

	t.Run("UpdateUnknownOrder", func(t *testing.T) {
		repo := storage.NewMemoryOrderRepository()

		upd := domain.OrderStatusUpdate{
			OrderID: "ORD-2026-9999",
			Status:  domain.OrderDelivered,
		}
		err := repo.UpdateOrderStatus(t.Context(), upd)
		require.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrOrderNotFound)
	})
}
