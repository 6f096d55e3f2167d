package domain

import "time"

// Client event kinds emitted by the buyer flows. They back the
// notification surface and are best-effort: a failed emit never
// fails the buyer action.
const (
	EventCartAdd        = "cart_add"
	EventWishlistToggle = "wishlist_toggle"
	EventOrderPlaced    = "order_placed"
)

type ClientEvent struct {
	EventID   string
	Kind      string
	UserID    string
	ProductID int    // zero for order events
	OrderID   string // empty for product events
	At        time.Time
}
