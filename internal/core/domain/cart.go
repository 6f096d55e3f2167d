package domain

import "github.com/shopspring/decimal"

// DeliveryFee is the flat checkout delivery fee in FCFA. It is unrelated
// to the delivery-zone estimator, which is a standalone display widget.
const DeliveryFee = 2000

type (
	// A CartItem references a catalog product. Quantity stays within
	// [1, product stock]; out-of-bound mutations are silent no-ops.
	CartItem struct {
		ProductID int
		Quantity  int
	}

	// A Cart is keyed by product id: adding an existing product
	// increments its quantity instead of appending a duplicate line.
	Cart struct {
		UserID string
		Items  []CartItem
	}

	// A CartLine is a cart item joined with its catalog product.
	CartLine struct {
		Product        Product
		Quantity       int
		EffectivePrice decimal.Decimal
		LineTotal      decimal.Decimal
	}

	// CartTotals is the checkout arithmetic over the joined lines.
	// Effective prices are kept exact, not rounded to whole FCFA.
	CartTotals struct {
		Subtotal    decimal.Decimal
		Savings     decimal.Decimal
		DeliveryFee decimal.Decimal
		Total       decimal.Decimal
	}
)

// A CartView is the cart joined with the catalog plus its totals,
// ready for display.
type CartView struct {
	Lines  []CartLine
	Totals CartTotals
}

// EffectivePrice applies the product discount as a whole-number percent.
func (p Product) EffectivePrice() decimal.Decimal {
	price := decimal.NewFromInt(int64(p.Price))
	if p.Discount == 0 {
		return price
	}
	factor := decimal.NewFromInt(int64(100 - p.Discount)).
		Div(decimal.NewFromInt(100))
	return price.Mul(factor)
}
