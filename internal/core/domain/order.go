package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderProcessing OrderStatus = "processing"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

type (
	// An Address is the delivery destination collected at checkout.
	Address struct {
		FullName string
		Phone    string
		Line1    string
		City     string
		RegionID string
	}

	// An OrderLine snapshots the unit price at the time of purchase.
	OrderLine struct {
		ProductID int
		Name      string
		Quantity  int
		UnitPrice decimal.Decimal
	}

	// An Order is created once at checkout and never mutated by the
	// buyer. Status changes arrive from the seller side as events.
	Order struct {
		ID       string // ORD-<year>-<4 digit random>, not guaranteed unique
		UserID   string
		Lines    []OrderLine
		Address  Address
		Totals   CartTotals
		Status   OrderStatus
		Tracking string // CAM<year><6 digit random>
		PlacedAt time.Time
	}

	// An OrderStatusUpdate is a seller-side status change for one order.
	OrderStatusUpdate struct {
		OrderID  string
		Tracking string
		Status   OrderStatus
	}
)

// ValidStatus reports whether s is one of the order status values.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case OrderProcessing, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}
