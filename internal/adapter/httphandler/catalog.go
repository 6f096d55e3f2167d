package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cammarket/storefront/internal/core/domain"
	"github.com/cammarket/storefront/internal/core/port"
	"github.com/cammarket/storefront/internal/core/service"
)

const timeLayout = time.RFC3339

type CatalogHandler struct {
	querier port.CatalogQuerier
}

func RegisterCatalog(mux *http.ServeMux, querier port.CatalogQuerier) {
	h := CatalogHandler{querier}
	mux.HandleFunc("GET /v1/catalog/products", h.GetProducts)
	mux.HandleFunc("GET /v1/catalog/products/{id}", h.GetProduct)
	mux.HandleFunc("GET /v1/catalog/categories", h.GetCategories)
	mux.HandleFunc("GET /v1/catalog/regions", h.GetRegions)
	mux.HandleFunc("GET /v1/catalog/vendors", h.GetVendors)
	mux.HandleFunc("GET /v1/catalog/flash-sales", h.GetFlashSales)
}

func (h CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProducts"
	log := slog.With("op", op)

	q, err := parseCatalogQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := h.querier.Query(r.Context(), q)
	if err != nil {
		if errors.Is(err, service.ErrUnknownSortKey) {
			http.Error(w, "unknown sort key", http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to query catalog", http.StatusServiceUnavailable)
		log.Error("failed to query catalog", "err", err)
		return
	}

	writeJSON(w, CatalogPage{
		Products:   toProductsJSON(page.Products),
		Page:       page.Page,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
		PageRail:   page.PageRail,
	})
}

func (h CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProduct"
	log := slog.With("op", op)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	product, err := h.querier.Product(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to read product", http.StatusServiceUnavailable)
		log.Error("failed to read product", "err", err)
		return
	}

	writeJSON(w, toProductJSON(product))
}

func (h CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	cs, err := h.querier.Categories(r.Context())
	if err != nil {
		http.Error(w, "failed to read categories", http.StatusServiceUnavailable)
		return
	}

	out := make([]Category, 0, len(cs))
	for _, c := range cs {
		out = append(out, Category{ID: c.ID, Name: c.Name, NameFr: c.NameFr})
	}
	writeJSON(w, out)
}

func (h CatalogHandler) GetRegions(w http.ResponseWriter, r *http.Request) {
	rs, err := h.querier.Regions(r.Context())
	if err != nil {
		http.Error(w, "failed to read regions", http.StatusServiceUnavailable)
		return
	}

	out := make([]Region, 0, len(rs))
	for _, v := range rs {
		out = append(out, Region{ID: v.ID, Name: v.Name, Capital: v.Capital})
	}
	writeJSON(w, out)
}

func (h CatalogHandler) GetVendors(w http.ResponseWriter, r *http.Request) {
	vs, err := h.querier.Vendors(r.Context())
	if err != nil {
		http.Error(w, "failed to read vendors", http.StatusServiceUnavailable)
		return
	}

	out := make([]Vendor, 0, len(vs))
	for _, v := range vs {
		out = append(out, Vendor{Name: v.Name, RegionID: v.RegionID, Rating: v.Rating})
	}
	writeJSON(w, out)
}

func (h CatalogHandler) GetFlashSales(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetFlashSales"
	log := slog.With("op", op)

	ps, err := h.querier.FlashSales(r.Context())
	if err != nil {
		http.Error(w, "failed to read flash sales", http.StatusServiceUnavailable)
		log.Error("failed to read flash sales", "err", err)
		return
	}

	// the sale clock runs to local midnight, then restarts
	now := time.Now()
	endsAt := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())

	writeJSON(w, FlashSales{
		EndsAt:   endsAt.Format(timeLayout),
		Products: toProductsJSON(ps),
	})
}

// parseCatalogQuery maps query params onto one pipeline run. Missing
// price bounds mean "unconstrained"; the page index defaults to 1 and
// out-of-range values are clamped by the paginator itself.
func parseCatalogQuery(r *http.Request) (domain.CatalogQuery, error) {
	qp := r.URL.Query()

	category := qp.Get("category")
	if category == "" {
		return domain.CatalogQuery{}, errors.New("category is required")
	}

	q := domain.CatalogQuery{
		CategoryID: category,
		Filter: domain.FilterState{
			MaxPrice:          math.MaxInt,
			SelectedCondition: domain.ConditionAll,
		},
		Sort: domain.SortPopular,
		Page: 1,
	}

	var err error
	if v := qp.Get("min_price"); v != "" {
		if q.Filter.MinPrice, err = strconv.Atoi(v); err != nil {
			return domain.CatalogQuery{}, errors.New("invalid min_price")
		}
	}
	if v := qp.Get("max_price"); v != "" {
		if q.Filter.MaxPrice, err = strconv.Atoi(v); err != nil {
			return domain.CatalogQuery{}, errors.New("invalid max_price")
		}
	}
	if v := qp.Get("regions"); v != "" {
		q.Filter.SelectedRegions = strings.Split(v, ",")
	}
	if v := qp.Get("rating"); v != "" {
		if q.Filter.SelectedRating, err = strconv.Atoi(v); err != nil {
			return domain.CatalogQuery{}, errors.New("invalid rating")
		}
	}
	if v := qp.Get("delivery"); v != "" {
		q.Filter.SelectedDelivery = strings.Split(v, ",")
	}
	if v := qp.Get("condition"); v != "" {
		q.Filter.SelectedCondition = v
	}
	if v := qp.Get("sort"); v != "" {
		q.Sort = domain.SortKey(v)
	}
	if v := qp.Get("page"); v != "" {
		if q.Page, err = strconv.Atoi(v); err != nil {
			return domain.CatalogQuery{}, errors.New("invalid page")
		}
	}

	return q, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "err", err)
	}
}
