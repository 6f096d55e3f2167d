package httphandler

import (
	"errors"
	"net/http"

	"github.com/cammarket/storefront/internal/core/port"
	"github.com/cammarket/storefront/internal/core/service"
)

// The estimator endpoint is a display widget; checkout charges the
// flat fee regardless of what this returns.
type DeliveryHandler struct {
	estimator port.DeliveryEstimator
}

func RegisterDelivery(mux *http.ServeMux, estimator port.DeliveryEstimator) {
	h := DeliveryHandler{estimator}
	mux.HandleFunc("GET /v1/delivery/estimate", h.Estimate)
}

func (h DeliveryHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	zone := r.URL.Query().Get("zone")

	est, err := h.estimator.Estimate(zone)
	if err != nil {
		if errors.Is(err, service.ErrUnknownZone) {
			http.Error(w, "unknown delivery zone", http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to estimate", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, DeliveryEstimate{
		Zone:    est.Zone,
		Fee:     est.Fee,
		MinDays: est.MinDays,
		MaxDays: est.MaxDays,
	})
}
