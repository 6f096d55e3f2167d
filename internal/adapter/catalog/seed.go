// Package catalog serves the static seed catalog. The feed is loaded
// once at startup and treated as immutable: accessors hand out copies
// so no caller can mutate the session's catalog.
package catalog

import (
	"github.com/cammarket/storefront/internal/core/domain"
	"github.com/cammarket/storefront/internal/core/port"
)

var _ port.CatalogSource = (*SeedCatalog)(nil)

type SeedCatalog struct {
	products   []domain.Product
	categories []domain.Category
	regions    []domain.Region
	vendors    []domain.Vendor
}

func NewSeedCatalog() SeedCatalog {
	return SeedCatalog{
		products:   seedProducts,
		categories: seedCategories,
		regions:    seedRegions,
		vendors:    seedVendors,
	}
}

func (c SeedCatalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c SeedCatalog) Categories() []domain.Category {
	out := make([]domain.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c SeedCatalog) Regions() []domain.Region {
	out := make([]domain.Region, len(c.regions))
	copy(out, c.regions)
	return out
}

func (c SeedCatalog) Vendors() []domain.Vendor {
	out := make([]domain.Vendor, len(c.vendors))
	copy(out, c.vendors)
	return out
}
