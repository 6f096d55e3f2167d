package port

import (
	"context"
	"errors"
	"sync"

	"github.com/cammarket/storefront/internal/core/domain"
)

// ErrTrackingNotFound is returned by a TrackingViewer for an unknown
// tracking number.
var ErrTrackingNotFound = errors.New("tracking number not found")

type (
	runnerContextWg interface {
		Run(context.Context, context.CancelFunc, *sync.WaitGroup)
	}

	closer interface {
		Close()
	}
)

// CatalogSource is the read-only catalog feed.
type CatalogSource interface {
	Products() []domain.Product
	Categories() []domain.Category
	Regions() []domain.Region
	Vendors() []domain.Vendor
}

type CatalogQuerier interface {
	Query(ctx context.Context, q domain.CatalogQuery) (domain.CatalogPage, error)
	Product(ctx context.Context, id int) (domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	Regions(ctx context.Context) ([]domain.Region, error)
	Vendors(ctx context.Context) ([]domain.Vendor, error)
	FlashSales(ctx context.Context) ([]domain.Product, error)
}

type CartManager interface {
	Get(ctx context.Context, userID string) (domain.CartView, error)
	Add(ctx context.Context, userID string, productID, quantity int) error
	Increment(ctx context.Context, userID string, productID int) error
	Decrement(ctx context.Context, userID string, productID int) error
	Remove(ctx context.Context, userID string, productID int) error
	Clear(ctx context.Context, userID string) error
}

type CheckoutService interface {
	PlaceOrder(ctx context.Context, userID string, addr domain.Address) (domain.Order, error)
	History(ctx context.Context, userID string) ([]domain.Order, error)
}

type WishlistService interface {
	Toggle(ctx context.Context, userID string, productID int) (added bool, err error)
	List(ctx context.Context, userID string) ([]domain.Product, error)
}

type DeliveryEstimator interface {
	Estimate(zone string) (domain.DeliveryEstimate, error)
}

type CartStore interface {
	Cart(ctx context.Context, userID string) (domain.Cart, error)
	SaveCart(ctx context.Context, cart domain.Cart) error
	ClearCart(ctx context.Context, userID string) error
}

type WishlistStore interface {
	Wishlist(ctx context.Context, userID string) ([]int, error)
	SaveWishlist(ctx context.Context, userID string, productIDs []int) error
}

type OrderRepository interface {
	StoreOrder(ctx context.Context, order domain.Order) error
	OrdersByUser(ctx context.Context, userID string) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, upd domain.OrderStatusUpdate) error
}

type OrderEventProducer interface {
	ProduceOrderPlaced(ctx context.Context, order domain.Order) error
}

type ClientEventProducer interface {
	ProduceClientEvent(ctx context.Context, ev domain.ClientEvent) error
}

// OrderStatusSaver applies seller-side status updates to stored orders.
type OrderStatusSaver interface {
	SaveOrderStatus(ctx context.Context, upd domain.OrderStatusUpdate) error
}

type OrderStatusProcessor interface {
	runnerContextWg
	closer
}

type TrackingViewer interface {
	Track(tracking string) (domain.OrderStatusUpdate, error)
}
