// Package storage holds the session state stores. Carts and wishlists
// live in memory for the lifetime of the process, matching the
// storefront's reset-on-reload behaviour; order history can optionally
// be kept in Postgres.
package storage

import (
	"context"
	"sync"

	"github.com/cammarket/storefront/internal/core/domain"
	"github.com/cammarket/storefront/internal/core/port"
)

var _ port.CartStore = (*MemoryCartStore)(nil)

type MemoryCartStore struct {
	mu    sync.RWMutex
	carts map[string]domain.Cart
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string]domain.Cart)}
}

func (s *MemoryCartStore) Cart(
	ctx context.Context, userID string,
) (domain.Cart, error) {
	if err := ctx.Err(); err != nil {
		return domain.Cart{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[userID]
	if !ok {
		return domain.Cart{UserID: userID}, nil
	}
	return copyCart(cart), nil
}

func (s *MemoryCartStore) SaveCart(
	ctx context.Context, cart domain.Cart,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[cart.UserID] = copyCart(cart)
	return nil
}

func (s *MemoryCartStore) ClearCart(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
	return nil
}

func copyCart(cart domain.Cart) domain.Cart {
	items := make([]domain.CartItem, len(cart.Items))
	copy(items, cart.Items)
	cart.Items = items
	return cart
}

var _ port.WishlistStore = (*MemoryWishlistStore)(nil)

type MemoryWishlistStore struct {
	mu    sync.RWMutex
	lists map[string][]int
}

func NewMemoryWishlistStore() *MemoryWishlistStore {
	return &MemoryWishlistStore{lists: make(map[string][]int)}
}

func (s *MemoryWishlistStore) Wishlist(
	ctx context.Context, userID string,
) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, len(s.lists[userID]))
	copy(ids, s.lists[userID])
	return ids, nil
}

func (s *MemoryWishlistStore) SaveWishlist(
	ctx context.Context, userID string, productIDs []int,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int, len(productIDs))
	copy(ids, productIDs)
	s.lists[userID] = ids
	return nil
}

var _ port.OrderRepository = (*MemoryOrderRepository)(nil)

// MemoryOrderRepository keeps per-user order history newest-first.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string][]domain.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make(map[string][]domain.Order)}
}

func (s *MemoryOrderRepository) StoreOrder(
	ctx context.Context, order domain.Order,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.orders[order.UserID]
	s.orders[order.UserID] = append([]domain.Order{order}, history...)
	return nil
}

func (s *MemoryOrderRepository) OrdersByUser(
	ctx context.Context, userID string,
) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	history := make([]domain.Order, len(s.orders[userID]))
	copy(history, s.orders[userID])
	return history, nil
}

func (s *MemoryOrderRepository) UpdateOrderStatus(
	ctx context.Context, upd domain.OrderStatusUpdate,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for userID, history := range s.orders {
		for i := range history {
			if history[i].ID == upd.OrderID {
				history[i].Status = upd.Status
				s.orders[userID] = history
				return nil
			}
		}
	}
	return ErrOrderNotFound
}
