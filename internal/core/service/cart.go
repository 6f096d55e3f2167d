package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cammarket/storefront/internal/core/domain"
	"github.com/cammarket/storefront/internal/core/port"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrOutOfStock = errors.New("product is out of stock")

var _ port.CartManager = (*CartService)(nil)

// CartService owns the single copy of each buyer's cart. Quantity
// mutations that would leave [1, stock] are silent no-ops, matching the
// disabled-button behaviour of the storefront.
type CartService struct {
	source port.CatalogSource
	store  port.CartStore
	events port.ClientEventProducer
}

func NewCartService(
	source port.CatalogSource,
	store port.CartStore,
	events port.ClientEventProducer,
) CartService {
	return CartService{source, store, events}
}

func (s CartService) Get(
	ctx context.Context, userID string,
) (domain.CartView, error) {
	const op = "CartService.Get"

	if err := ctx.Err(); err != nil {
		return domain.CartView{}, fmt.Errorf("%s: %w", op, err)
	}

	cart, err := s.store.Cart(ctx, userID)
	if err != nil {
		return domain.CartView{}, fmt.Errorf("%s: %w", op, err)
	}

	lines := joinCartLines(s.source, cart)
	return domain.CartView{Lines: lines, Totals: ComputeTotals(lines)}, nil
}

func (s CartService) Add(
	ctx context.Context, userID string, productID, quantity int,
) error {
	const op = "CartService.Add"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	product, ok := s.findProduct(productID)
	if !ok {
		return fmt.Errorf("%s: %w", op, ErrProductNotFound)
	}
	if product.Stock == 0 {
		return fmt.Errorf("%s: %w", op, ErrOutOfStock)
	}
	if quantity < 1 {
		quantity = 1
	}

	cart, err := s.store.Cart(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	cart.UserID = userID

	if i := lineIndex(cart, productID); i >= 0 {
		next := cart.Items[i].Quantity + quantity
		if next <= product.Stock {
			cart.Items[i].Quantity = next
		}
	} else {
		if quantity > product.Stock {
			quantity = product.Stock
		}
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID: productID, Quantity: quantity,
		})
	}

	if err := s.store.SaveCart(ctx, cart); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.emitEvent(ctx, domain.ClientEvent{
		Kind: domain.EventCartAdd, UserID: userID, ProductID: productID,
	})
	return nil
}

func (s CartService) Increment(
	ctx context.Context, userID string, productID int,
) error {
	return s.changeQuantity(ctx, "CartService.Increment", userID, productID, +1)
}

func (s CartService) Decrement(
	ctx context.Context, userID string, productID int,
) error {
	return s.changeQuantity(ctx, "CartService.Decrement", userID, productID, -1)
}

func (s CartService) Remove(
	ctx context.Context, userID string, productID int,
) error {
	const op = "CartService.Remove"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	cart, err := s.store.Cart(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	i := lineIndex(cart, productID)
	if i < 0 {
		return nil
	}
	cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)

	if err := s.store.SaveCart(ctx, cart); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s CartService) Clear(ctx context.Context, userID string) error {
	const op = "CartService.Clear"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.store.ClearCart(ctx, userID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s CartService) changeQuantity(
	ctx context.Context, op, userID string, productID, delta int,
) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	cart, err := s.store.Cart(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	i := lineIndex(cart, productID)
	if i < 0 {
		return nil
	}

	product, ok := s.findProduct(productID)
	if !ok {
		return fmt.Errorf("%s: %w", op, ErrProductNotFound)
	}

	next := cart.Items[i].Quantity + delta
	if next < 1 || next > product.Stock {
		return nil
	}
	cart.Items[i].Quantity = next

	if err := s.store.SaveCart(ctx, cart); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s CartService) findProduct(id int) (domain.Product, bool) {
	return findProduct(s.source, id)
}

// joinCartLines joins cart items with their catalog products. Items
// whose product vanished from the feed are skipped.
func joinCartLines(
	source port.CatalogSource, cart domain.Cart,
) []domain.CartLine {
	var lines []domain.CartLine
	for _, item := range cart.Items {
		product, ok := findProduct(source, item.ProductID)
		if !ok {
			continue
		}
		eff := product.EffectivePrice()
		lines = append(lines, domain.CartLine{
			Product:        product,
			Quantity:       item.Quantity,
			EffectivePrice: eff,
			LineTotal:      eff.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}
	return lines
}

func findProduct(source port.CatalogSource, id int) (domain.Product, bool) {
	for _, p := range source.Products() {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (s CartService) emitEvent(ctx context.Context, ev domain.ClientEvent) {
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

func lineIndex(cart domain.Cart, productID int) int {
	for i, item := range cart.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

// ComputeTotals runs the checkout arithmetic: exact effective prices,
// savings over discounted lines only, a flat delivery fee, and
// total = subtotal + fee.
func ComputeTotals(lines []domain.CartLine) domain.CartTotals {
	subtotal := decimal.Zero
	savings := decimal.Zero

	for _, l := range lines {
		qty := decimal.NewFromInt(int64(l.Quantity))
		subtotal = subtotal.Add(l.EffectivePrice.Mul(qty))
		if l.Product.Discount > 0 {
			full := decimal.NewFromInt(int64(l.Product.Price))
			savings = savings.Add(full.Sub(l.EffectivePrice).Mul(qty))
		}
	}

	fee := decimal.NewFromInt(domain.DeliveryFee)
	return domain.CartTotals{
		Subtotal:    subtotal,
		Savings:     savings,
		DeliveryFee: fee,
		Total:       subtotal.Add(fee),
	}
}
