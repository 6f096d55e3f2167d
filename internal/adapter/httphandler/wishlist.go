package httphandler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cammarket/storefront/internal/core/port"
	"github.com/cammarket/storefront/internal/core/service"
)

type WishlistHandler struct {
	wishlist port.WishlistService
}

func RegisterWishlist(mux *http.ServeMux, wishlist port.WishlistService) {
	h := WishlistHandler{wishlist}
	mux.HandleFunc("GET /v1/wishlist", h.GetWishlist)
	mux.HandleFunc("POST /v1/wishlist/{id}", h.Toggle)
}

func (h WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.GetWishlist"
	log := slog.With("op", op)

	user := userID(r)
	if user == "" {
		http.Error(w, "missing user id", http.StatusBadRequest)
		return
	}

	products, err := h.wishlist.List(r.Context(), user)
	if err != nil {
		http.Error(w, "failed to read wishlist", http.StatusServiceUnavailable)
		log.Error("failed to read wishlist", "err", err)
		return
	}
	writeJSON(w, toProductsJSON(products))
}

func (h WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.Toggle"
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

	added, err := h.wishlist.Toggle(r.Context(), user, id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to toggle wishlist", http.StatusServiceUnavailable)
		log.Error("failed to toggle wishlist", "err", err)
		return
	}

	writeJSON(w, WishlistToggle{Added: added})
}
