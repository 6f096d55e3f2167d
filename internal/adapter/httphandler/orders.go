package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cammarket/storefront/internal/core/port"
	"github.com/cammarket/storefront/internal/core/service"
)

type OrdersHandler struct {
	checkout port.CheckoutService
	tracker  port.TrackingViewer
}

func RegisterOrders(
	mux *http.ServeMux,
	checkout port.CheckoutService,
	tracker port.TrackingViewer,
) {
	h := OrdersHandler{checkout, tracker}
	mux.HandleFunc("POST /v1/checkout", h.PlaceOrder)
	mux.HandleFunc("GET /v1/orders", h.GetOrders)
	mux.HandleFunc("GET /v1/tracking/{number}", h.Track)
}

func (h OrdersHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.PlaceOrder"
	log := slog.With("op", op)

	user := userID(r)
	if user == "" {
		http.Error(w, "missing user id", http.StatusBadRequest)
		return
	}

	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	order, err := h.checkout.PlaceOrder(r.Context(), user, toAddress(req.Address))
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			http.Error(w, "cart is empty", http.StatusConflict)
			return
		}
		http.Error(w, "failed to place order", http.StatusServiceUnavailable)
		log.Error("failed to place order", "err", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toOrderJSON(order)); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

func (h OrdersHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.GetOrders"
	log := slog.With("op", op)

	user := userID(r)
	if user == "" {
		http.Error(w, "missing user id", http.StatusBadRequest)
		return
	}

	orders, err := h.checkout.History(r.Context(), user)
	if err != nil {
		http.Error(w, "failed to read orders", http.StatusServiceUnavailable)
		log.Error("failed to read orders", "err", err)
		return
	}

	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderJSON(o))
	}
	writeJSON(w, out)
}

func (h OrdersHandler) Track(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.Track"
	log := slog.With("op", op)

	if h.tracker == nil {
		http.Error(w, "tracking is unavailable", http.StatusServiceUnavailable)
		return
	}

	number := r.PathValue("number")
	upd, err := h.tracker.Track(number)
	if err != nil {
		if errors.Is(err, port.ErrTrackingNotFound) {
			http.Error(w, "unknown tracking number", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to read tracking", http.StatusServiceUnavailable)
		log.Error("failed to read tracking", "err", err)
		return
	}

	writeJSON(w, TrackingStatus{
		OrderID:  upd.OrderID,
		Tracking: upd.Tracking,
		Status:   string(upd.Status),
	})
}
