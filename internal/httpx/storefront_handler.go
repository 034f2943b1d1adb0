package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/chaunsagold/storefront/internal/cart"
	"github.com/chaunsagold/storefront/internal/catalog"
	"github.com/chaunsagold/storefront/internal/checkout"
	"github.com/chaunsagold/storefront/internal/concierge"
	"github.com/chaunsagold/storefront/internal/orders"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Shoppers without a session header share this cart, same as a single
// browser tab did.
const defaultSession = "default"

type StorefrontHandler struct {
	Catalog   *catalog.Catalog
	Carts     *cart.Sessions
	Checkout  *checkout.Service
	Concierge *concierge.Concierge
	Log       *zap.Logger
}

func (h *StorefrontHandler) Register(r *chi.Mux) {
	r.Get("/products", h.listProducts)
	r.Post("/products/{id}/reviews", h.addReview)
	r.Get("/cart", h.getCart)
	r.Post("/cart/items", h.addToCart)
	r.Patch("/cart/items/{id}", h.updateQuantity)
	r.Delete("/cart/items/{id}", h.removeFromCart)
	r.Post("/checkout", h.checkout)
	r.Post("/chat", h.chat)
}

func sessionID(r *http.Request) string {
	if s := r.Header.Get("X-Session-ID"); s != "" {
		return s
	}
	return defaultSession
}

func (h *StorefrontHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.List())
}

type addReviewReq struct {
	Author  string `json:"userName"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *StorefrontHandler) addReview(w http.ResponseWriter, r *http.Request) {
	var req addReviewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	rv, err := h.Catalog.AddReview(chi.URLParam(r, "id"), req.Author, req.Rating, req.Comment)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case err != nil:
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeJSON(w, http.StatusCreated, rv)
	}
}

type cartView struct {
	Items []cart.Line `json:"items"`
	Total int         `json:"total"`
	Count int         `json:"count"`
}

func viewOf(c *cart.Cart) cartView {
	return cartView{Items: c.Items(), Total: c.Total(), Count: c.Count()}
}

func (h *StorefrontHandler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, viewOf(h.Carts.Get(sessionID(r))))
}

type addToCartReq struct {
	ProductID string `json:"product_id"`
}

func (h *StorefrontHandler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	p, ok := h.Catalog.Get(req.ProductID)
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	c := h.Carts.Get(sessionID(r))
	c.Add(p)
	writeJSON(w, http.StatusOK, viewOf(c))
}

type updateQuantityReq struct {
	Delta int `json:"delta"`
}

func (h *StorefrontHandler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	c := h.Carts.Get(sessionID(r))
	c.UpdateQuantity(chi.URLParam(r, "id"), req.Delta)
	writeJSON(w, http.StatusOK, viewOf(c))
}

func (h *StorefrontHandler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	c := h.Carts.Get(sessionID(r))
	c.Remove(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, viewOf(c))
}

func (h *StorefrontHandler) checkout(w http.ResponseWriter, r *http.Request) {
	var info orders.CustomerInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	sid := sessionID(r)
	res, err := h.Checkout.Submit(ctx, sid, h.Carts.Get(sid), info)

	var verr *checkout.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": verr.Error(), "field": verr.Field})
	case errors.Is(err, checkout.ErrEmptyCart):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, checkout.ErrInFlight):
		writeError(w, http.StatusConflict, err.Error())
	case err != nil:
		h.Log.Error("checkout failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not save your order, please try again")
	default:
		writeJSON(w, http.StatusCreated, res)
	}
}

type chatReq struct {
	Message string `json:"message"`
}

func (h *StorefrontHandler) chat(w http.ResponseWriter, r *http.Request) {
	var req chatReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	writeJSON(w, http.StatusOK, map[string]string{"reply": h.Concierge.Ask(ctx, req.Message)})
}
