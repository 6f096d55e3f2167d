package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/cammarket/storefront/internal/core/domain"
	"github.com/cammarket/storefront/internal/core/port"
	"github.com/cammarket/storefront/pkg/retry"
	"github.com/google/uuid"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrInvalidStatus = errors.New("invalid order status")
)

var _ port.CheckoutService = (*CheckoutService)(nil)
var _ port.OrderStatusSaver = (*CheckoutService)(nil)

// CheckoutService turns a non-empty cart into a placed order: line
// prices are snapshotted, id and tracking number generated, the order
// prepended to history and the cart cleared. A placed order is never
// mutated by the buyer; status updates arrive from the seller side.
type CheckoutService struct {
	source      port.CatalogSource
	carts       port.CartStore
	orders      port.OrderRepository
	orderEvents port.OrderEventProducer
	events      port.ClientEventProducer
}

func NewCheckoutService(
	source port.CatalogSource,
	carts port.CartStore,
	orders port.OrderRepository,
	orderEvents port.OrderEventProducer,
	events port.ClientEventProducer,
) CheckoutService {
	return CheckoutService{source, carts, orders, orderEvents, events}
}

func (s CheckoutService) PlaceOrder(
	ctx context.Context, userID string, addr domain.Address,
) (domain.Order, error) {
	const op = "CheckoutService.PlaceOrder"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	cart, err := s.carts.Cart(ctx, userID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	if len(cart.Items) == 0 {
		return domain.Order{}, fmt.Errorf("%s: %w", op, ErrEmptyCart)
	}

	lines := joinCartLines(s.source, cart)
	now := time.Now()

	order := domain.Order{
		ID:       newOrderID(now),
		UserID:   userID,
		Address:  addr,
		Totals:   ComputeTotals(lines),
		Status:   domain.OrderProcessing,
		Tracking: newTrackingNumber(now),
		PlacedAt: now,
	}
	for _, l := range lines {
		order.Lines = append(order.Lines, domain.OrderLine{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.EffectivePrice,
		})
	}

	if err := s.orders.StoreOrder(ctx, order); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.carts.ClearCart(ctx, userID); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	s.produceOrderPlaced(ctx, order)

	s.emitEvent(ctx, domain.ClientEvent{
		Kind: domain.EventOrderPlaced, UserID: userID, OrderID: order.ID,
	})

	log.Info("order placed", "orderID", order.ID, "nLines", len(order.Lines))
	return order, nil
}

func (s CheckoutService) History(
	ctx context.Context, userID string,
) ([]domain.Order, error) {
	const op = "CheckoutService.History"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	orders, err := s.orders.OrdersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return orders, nil
}

func (s CheckoutService) SaveOrderStatus(
	ctx context.Context, upd domain.OrderStatusUpdate,
) error {
	const op = "CheckoutService.SaveOrderStatus"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !domain.ValidStatus(upd.Status) {
		return fmt.Errorf("%s: %w: %q", op, ErrInvalidStatus, upd.Status)
	}

	if err := s.orders.UpdateOrderStatus(ctx, upd); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// produceOrderPlaced is best-effort: the order is already stored, a
// failed emit only loses the downstream notification.
func (s CheckoutService) produceOrderPlaced(
	ctx context.Context, order domain.Order,
) {
	const op = "CheckoutService.produceOrderPlaced"

	if s.orderEvents == nil {
		return
	}

	cfg := retry.RetryConfig{
		MaxAttempts: 3,
		Backoff:     retry.ExponentialBackoff(100 * time.Millisecond),
	}
	err := retry.Do(ctx, cfg, func() error {
		return s.orderEvents.ProduceOrderPlaced(ctx, order)
	})
	if err != nil {
		slog.Error("failed to produce order event",
			"op", op, "orderID", order.ID, "err", err)
	}
}

func (s CheckoutService) emitEvent(ctx context.Context, ev domain.ClientEvent) {
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

// Order ids and tracking numbers are random, not sequence-based:
// collisions are possible and unhandled, as in the storefront.
func newOrderID(t time.Time) string {
	return fmt.Sprintf("ORD-%d-%04d", t.Year(), rand.IntN(10000))
}

func newTrackingNumber(t time.Time) string {
	return fmt.Sprintf("CAM%d%06d", t.Year(), rand.IntN(1000000))
}
