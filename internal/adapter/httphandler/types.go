package httphandler

import (
	"github.com/cammarket/storefront/internal/core/domain"
)

type (
	Product struct {
		ID              int      `json:"id"`
		Name            string   `json:"name"`
		NameFr          string   `json:"name_fr"`
		Price           int      `json:"price"`
		CategoryID      string   `json:"category_id"`
		RegionID        string   `json:"region_id"`
		Seller          string   `json:"seller"`
		Rating          float64  `json:"rating"`
		Stock           int      `json:"stock"`
		Discount        int      `json:"discount,omitempty"`
		IsFlashSale     bool     `json:"is_flash_sale"`
		DeliveryOptions []string `json:"delivery_options"`
		Condition       string   `json:"condition"`
	}

	CatalogPage struct {
		Products   []Product `json:"products"`
		Page       int       `json:"page"`
		TotalItems int       `json:"total_items"`
		TotalPages int       `json:"total_pages"`
		PageRail   []int     `json:"page_rail,omitempty"`
	}

	Category struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		NameFr string `json:"name_fr"`
	}

	Region struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Capital string `json:"capital"`
	}

	Vendor struct {
		Name     string  `json:"name"`
		RegionID string  `json:"region_id"`
		Rating   float64 `json:"rating"`
	}

	// FlashSales carries the discounted products plus the countdown
	// deadline the storefront renders next to them.
	FlashSales struct {
		EndsAt   string    `json:"ends_at"`
		Products []Product `json:"products"`
	}
)

type (
	CartLine struct {
		Product        Product `json:"product"`
		Quantity       int     `json:"quantity"`
		EffectivePrice string  `json:"effective_price"`
		LineTotal      string  `json:"line_total"`
	}

	CartTotals struct {
		Subtotal    string `json:"subtotal"`
		Savings     string `json:"savings"`
		DeliveryFee string `json:"delivery_fee"`
		Total       string `json:"total"`
	}

	CartView struct {
		Lines  []CartLine `json:"lines"`
		Totals CartTotals `json:"totals"`
	}

	AddCartItem struct {
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}
)

type (
	Address struct {
		FullName string `json:"full_name"`
		Phone    string `json:"phone"`
		Line1    string `json:"line1"`
		City     string `json:"city"`
		RegionID string `json:"region_id"`
	}

	CheckoutRequest struct {
		Address Address `json:"address"`
	}

	OrderLine struct {
		ProductID int    `json:"product_id"`
		Name      string `json:"name"`
		Quantity  int    `json:"quantity"`
		UnitPrice string `json:"unit_price"`
	}

	Order struct {
		ID       string      `json:"id"`
		Lines    []OrderLine `json:"lines"`
		Address  Address     `json:"address"`
		Totals   CartTotals  `json:"totals"`
		Status   string      `json:"status"`
		Tracking string      `json:"tracking"`
		PlacedAt string      `json:"placed_at"`
	}

	TrackingStatus struct {
		OrderID  string `json:"order_id"`
		Tracking string `json:"tracking"`
		Status   string `json:"status"`
	}
)

type (
	WishlistToggle struct {
		Added bool `json:"added"`
	}

	DeliveryEstimate struct {
		Zone    string `json:"zone"`
		Fee     int    `json:"fee"`
		MinDays int    `json:"min_days"`
		MaxDays int    `json:"max_days"`
	}
)

func toProductJSON(p domain.Product) Product {
	return Product{
		ID:              p.ID,
		Name:            p.Name,
		NameFr:          p.NameFr,
		Price:           p.Price,
		CategoryID:      p.CategoryID,
		RegionID:        p.RegionID,
		Seller:          p.Seller,
		Rating:          p.Rating,
		Stock:           p.Stock,
		Discount:        p.Discount,
		IsFlashSale:     p.IsFlashSale,
		DeliveryOptions: p.DeliveryOptions,
		Condition:       p.Condition,
	}
}

func toProductsJSON(ps []domain.Product) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProductJSON(p))
	}
	return out
}

func toTotalsJSON(t domain.CartTotals) CartTotals {
	return CartTotals{
		Subtotal:    t.Subtotal.String(),
		Savings:     t.Savings.String(),
		DeliveryFee: t.DeliveryFee.String(),
		Total:       t.Total.String(),
	}
}

func toCartViewJSON(v domain.CartView) CartView {
	out := CartView{
		Lines:  make([]CartLine, 0, len(v.Lines)),
		Totals: toTotalsJSON(v.Totals),
	}
	for _, l := range v.Lines {
		out.Lines = append(out.Lines, CartLine{
			Product:        toProductJSON(l.Product),
			Quantity:       l.Quantity,
			EffectivePrice: l.EffectivePrice.String(),
			LineTotal:      l.LineTotal.String(),
		})
	}
	return out
}

func toOrderJSON(o domain.Order) Order {
	out := Order{
		ID: o.ID,
		Address: Address{
			FullName: o.Address.FullName,
			Phone:    o.Address.Phone,
			Line1:    o.Address.Line1,
			City:     o.Address.City,
			RegionID: o.Address.RegionID,
		},
		Totals:   toTotalsJSON(o.Totals),
		Status:   string(o.Status),
		Tracking: o.Tracking,
		PlacedAt: o.PlacedAt.Format(timeLayout),
	}
	for _, l := range o.Lines {
		out.Lines = append(out.Lines, OrderLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.String(),
		})
	}
	return out
}

func toAddress(a Address) domain.Address {
	return domain.Address{
		FullName: a.FullName,
		Phone:    a.Phone,
		Line1:    a.Line1,
		City:     a.City,
		RegionID: a.RegionID,
	}
}
