package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/cammarket/storefront/internal/core/domain"
	"github.com/cammarket/storefront/internal/core/port"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrUnknownSortKey  = errors.New("unknown sort key")
)

var _ port.CatalogQuerier = (*CatalogService)(nil)

// CatalogService runs the catalog query pipeline over the static feed:
// filter predicate chain, then a stable sort, then pagination.
type CatalogService struct {
	source port.CatalogSource
}

func NewCatalogService(source port.CatalogSource) CatalogService {
	return CatalogService{source}
}

func (s CatalogService) Query(
	ctx context.Context, q domain.CatalogQuery,
) (domain.CatalogPage, error) {
	const op = "CatalogService.Query"

	if err := ctx.Err(); err != nil {
		return domain.CatalogPage{}, fmt.Errorf("%s: %w", op, err)
	}

	filtered := filterProducts(s.source.Products(), q.CategoryID, q.Filter)

	sorted, err := sortProducts(filtered, q.Sort)
	if err != nil {
		return domain.CatalogPage{}, fmt.Errorf("%s: %w", op, err)
	}

	return paginate(sorted, q.Page), nil
}

func (s CatalogService) Product(
	ctx context.Context, id int,
) (domain.Product, error) {
	const op = "CatalogService.Product"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	for _, p := range s.source.Products() {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("%s: %w", op, ErrProductNotFound)
}

func (s CatalogService) Categories(
	ctx context.Context,
) ([]domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.source.Categories(), nil
}

func (s CatalogService) Regions(ctx context.Context) ([]domain.Region, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.source.Regions(), nil
}

func (s CatalogService) Vendors(ctx context.Context) ([]domain.Vendor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.source.Vendors(), nil
}

func (s CatalogService) FlashSales(
	ctx context.Context,
) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var sales []domain.Product
	for _, p := range s.source.Products() {
		if p.IsFlashSale {
			sales = append(sales, p)
		}
	}
	return sales, nil
}

// filterProducts applies the predicate chain. Every predicate must hold;
// empty facet sets and zero values are "no constraint".
func filterProducts(
	ps []domain.Product, categoryID string, f domain.FilterState,
) []domain.Product {
	var out []domain.Product
	for _, p := range ps {
		if matchesFilter(p, categoryID, f) {
			out = append(out, p)
		}
	}
	return out
}

func matchesFilter(p domain.Product, categoryID string, f domain.FilterState) bool {
	if p.CategoryID != categoryID {
		return false
	}
	if p.Price < f.MinPrice || p.Price > f.MaxPrice {
		return false
	}
	if len(f.SelectedRegions) != 0 && !contains(f.SelectedRegions, p.RegionID) {
		return false
	}
	if p.Rating < float64(f.SelectedRating) {
		return false
	}
	if len(f.SelectedDelivery) != 0 && !overlaps(p.DeliveryOptions, f.SelectedDelivery) {
		return false
	}
	if f.SelectedCondition != "" && f.SelectedCondition != domain.ConditionAll &&
		p.Condition != f.SelectedCondition {
		return false
	}
	return true
}

func contains(vs []string, v string) bool {
	for _, s := range vs {
		if s == v {
			return true
		}
	}
	return false
}

// overlaps reports whether any product option is selected (OR semantics).
func overlaps(options, selected []string) bool {
	for _, o := range options {
		if contains(selected, o) {
			return true
		}
	}
	return false
}

// sortProducts returns a newly ordered copy. The sort is stable so that
// equal-key products keep their filtered-list relative order across
// renders. "popular" is an alias of "rating" on purpose.
func sortProducts(
	ps []domain.Product, key domain.SortKey,
) ([]domain.Product, error) {
	out := make([]domain.Product, len(ps))
	copy(out, ps)

	var less func(a, b domain.Product) bool
	switch key {
	case domain.SortPriceLow:
		less = func(a, b domain.Product) bool { return a.Price < b.Price }
	case domain.SortPriceHigh:
		less = func(a, b domain.Product) bool { return a.Price > b.Price }
	case domain.SortRating, domain.SortPopular:
		less = func(a, b domain.Product) bool { return a.Rating > b.Rating }
	case domain.SortNewest:
		// higher id = more recently added
		less = func(a, b domain.Product) bool { return a.ID > b.ID }
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSortKey, key)
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out, nil
}

// paginate slices the sorted list into fixed-size pages. A page past the
// end resets to page 1 so a stale index never shows "page 5 of 1".
func paginate(ps []domain.Product, page int) domain.CatalogPage {
	totalItems := len(ps)
	totalPages := (totalItems + domain.PageSize - 1) / domain.PageSize

	if page < 1 || page > totalPages {
		page = 1
	}

	start := (page - 1) * domain.PageSize
	end := start + domain.PageSize
	if end > totalItems {
		end = totalItems
	}

	var items []domain.Product
	if start < totalItems {
		items = ps[start:end]
	}

	return domain.CatalogPage{
		Products:   items,
		Page:       page,
		TotalItems: totalItems,
		TotalPages: totalPages,
		PageRail:   pageRail(page, totalPages),
	}
}

// pageRail builds the page-link row: first, last, current and its
// neighbours, with collapsed runs marked by a single ellipsis. The rail
// is suppressed entirely when there is at most one page.
func pageRail(current, totalPages int) []int {
	if totalPages <= 1 {
		return nil
	}

	var rail []int
	prev := 0
	for p := 1; p <= totalPages; p++ {
		if p != 1 && p != totalPages && abs(p-current) > 1 {
			continue
		}
		if prev != 0 && p-prev > 1 {
			rail = append(rail, domain.PageEllipsis)
		}
		rail = append(rail, p)
		prev = p
	}
	return rail
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
