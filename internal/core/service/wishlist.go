package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cammarket/storefront/internal/core/domain"
	"github.com/cammarket/storefront/internal/core/port"
	"github.com/google/uuid"
)

var _ port.WishlistService = (*WishlistService)(nil)

type WishlistService struct {
	source port.CatalogSource
	store  port.WishlistStore
	events port.ClientEventProducer
}

func NewWishlistService(
	source port.CatalogSource,
	store port.WishlistStore,
	events port.ClientEventProducer,
) WishlistService {
	return WishlistService{source, store, events}
}

// Toggle adds the product when absent and removes it when present.
func (s WishlistService) Toggle(
	ctx context.Context, userID string, productID int,
) (bool, error) {
	const op = "WishlistService.Toggle"

	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if _, ok := findProduct(s.source, productID); !ok {
		return false, fmt.Errorf("%s: %w", op, ErrProductNotFound)
	}

	ids, err := s.store.Wishlist(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	added := true
	next := ids[:0:0]
	for _, id := range ids {
		if id == productID {
			added = false
			continue
		}
		next = append(next, id)
	}
	if added {
		next = append(next, productID)
	}

	if err := s.store.SaveWishlist(ctx, userID, next); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	s.emitEvent(ctx, domain.ClientEvent{
		Kind: domain.EventWishlistToggle, UserID: userID, ProductID: productID,
	})
	return added, nil
}

func (s WishlistService) List(
	ctx context.Context, userID string,
) ([]domain.Product, error) {
	const op = "WishlistService.List"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ids, err := s.store.Wishlist(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var products []domain.Product
	for _, id := range ids {
		if p, ok := findProduct(s.source, id); ok {
			products = append(products, p)
		}
	}
	return products, nil
}

func (s WishlistService) emitEvent(ctx context.Context, ev domain.ClientEvent) {
	if s.events == nil {
		return
	}
	ev.EventID = uuid.NewString()
	ev.At = time.Now()
	if err := s.events.ProduceClientEvent(ctx, ev); err != nil {
		slog.Warn("failed to produce client event",
			"kind", ev.Kind, "err", err)
	}
}
