package domain

// Condition of a listed product.
const (
	ConditionNew  = "new"
	ConditionUsed = "used"
	ConditionAll  = "all"
)

type (
	// A Product is an immutable catalog entry. The catalog is loaded once
	// from the seed feed and never mutated, only filtered and copied.
	Product struct {
		ID              int
		Name            string
		NameFr          string
		Price           int // FCFA, whole units
		CategoryID      string
		RegionID        string
		Seller          string
		Rating          float64
		Stock           int
		Discount        int // whole percent, 0 = no discount
		IsFlashSale     bool
		DeliveryOptions []string
		Condition       string
	}

	Category struct {
		ID     string
		Name   string
		NameFr string
	}

	// A Region is one of Cameroon's 10 administrative regions.
	Region struct {
		ID      string
		Name    string
		Capital string
	}

	Vendor struct {
		Name     string
		RegionID string
		Rating   float64
	}
)

// FilterState carries the buyer-selected facets for a category page.
// It is replaced wholesale on every change, never partially mutated.
// Empty sets and zero values mean "no constraint".
type FilterState struct {
	MinPrice          int
	MaxPrice          int
	SelectedRegions   []string
	SelectedRating    int // rating floor, 0 = unconstrained
	SelectedDelivery  []string
	SelectedCondition string // "all", "new" or "used"
}

type SortKey string

const (
	SortPopular   SortKey = "popular"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

// PageSize is the fixed catalog page size.
const PageSize = 12

// PageEllipsis marks a collapsed run in a page-link rail.
const PageEllipsis = -1

// A CatalogQuery is one run of the catalog query pipeline: the page's
// fixed category plus the buyer's filter, sort and page selections.
type CatalogQuery struct {
	CategoryID string
	Filter     FilterState
	Sort       SortKey
	Page       int
}

// A CatalogPage is one rendered page of the catalog query pipeline.
type CatalogPage struct {
	Products   []Product
	Page       int
	TotalItems int
	TotalPages int
	PageRail   []int // page links with PageEllipsis markers, empty when TotalPages <= 1
}
