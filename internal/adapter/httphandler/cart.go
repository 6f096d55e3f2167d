package httphandler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cammarket/storefront/internal/core/port"
	"github.com/cammarket/storefront/internal/core/service"
)

type CartHandler struct {
	cart port.CartManager
}

func RegisterCart(mux *http.ServeMux, cart port.CartManager) {
	h := CartHandler{cart}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.AddItem)
	mux.HandleFunc("POST /v1/cart/items/{id}/increment", h.IncrementItem)
	mux.HandleFunc("POST /v1/cart/items/{id}/decrement", h.DecrementItem)
	mux.HandleFunc("DELETE /v1/cart/items/{id}", h.RemoveItem)
	mux.HandleFunc("DELETE /v1/cart", h.Clear)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"
	log := slog.With("op", op)

	user := userID(r)
	if user == "" {
		http.Error(w, "missing user id", http.StatusBadRequest)
		return
	}

	view, err := h.cart.Get(r.Context(), user)
	if err != nil {
		http.Error(w, "failed to read cart", http.StatusServiceUnavailable)
		log.Error("failed to read cart", "err", err)
		return
	}
	writeJSON(w, toCartViewJSON(view))
}

func (h CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.AddItem"
	log := slog.With("op", op)

	user := userID(r)
	if user == "" {
		http.Error(w, "missing user id", http.StatusBadRequest)
		return
	}

	var req AddCartItem
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	err := h.cart.Add(r.Context(), user, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		case errors.Is(err, service.ErrOutOfStock):
			http.Error(w, "product is out of stock", http.StatusConflict)
		default:
			http.Error(w, "failed to add item", http.StatusServiceUnavailable)
			log.Error("failed to add item", "err", err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) IncrementItem(w http.ResponseWriter, r *http.Request) {
	h.changeQuantity(w, r, h.cart.Increment)
}

func (h CartHandler) DecrementItem(w http.ResponseWriter, r *http.Request) {
	h.changeQuantity(w, r, h.cart.Decrement)
}

func (h CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.changeQuantity(w, r, h.cart.Remove)
}

func (h CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.Clear"
	log := slog.With("op", op)

	user := userID(r)
	if user == "" {
		http.Error(w, "missing user id", http.StatusBadRequest)
		return
	}

	if err := h.cart.Clear(r.Context(), user); err != nil {
		http.Error(w, "failed to clear cart", http.StatusServiceUnavailable)
		log.Error("failed to clear cart", "err", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) changeQuantity(
	w http.ResponseWriter, r *http.Request,
	fn func(ctx context.Context, userID string, productID int) error,
) {
	const op = "CartHandler.changeQuantity"
	log := slog.With("op", op)

	user := userID(r)
	if user == "" {
		http.Error(w, "missing user id", http.StatusBadRequest)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	if err := fn(r.Context(), user, id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to update cart", http.StatusServiceUnavailable)
		log.Error("failed to update cart", "err", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
