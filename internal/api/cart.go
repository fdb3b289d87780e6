package api

import (
	"net/http"

	"ayushyaa-be/internal/cart"
	"ayushyaa-be/internal/order"
	"ayushyaa-be/internal/product"
	"ayushyaa-be/internal/utils"

	"github.com/samber/lo"
)

type addCartItemRequest struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
	Quantity  *int   `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	l, err := h.ledger(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, l.Snapshot())
}

// AddCartItem resolves the product (active only) and variant from the store
// so cart lines always carry current catalog data.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}
	if req.ProductID == "" || req.VariantID == "" {
		writeError(w, r, cart.ErrInvalidItem)
		return
	}

	ctx := r.Context()
	p, err := h.products.GetByID(ctx, product.GetProductOptions{ProductID: req.ProductID, OnlyActive: true})
	if err != nil {
		writeError(w, r, err)
		return
	}
	variants, err := h.products.ListVariants(ctx, p.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	v, ok := lo.Find(variants, func(v *product.Variant) bool { return v.ID == req.VariantID })
	if !ok {
		writeError(w, r, product.ErrVariantNotFound)
		return
	}

	l, err := h.ledger(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := l.Add(ctx, *p, *v, qty); err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, l.Snapshot())
}

func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req updateCartItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	l, err := h.ledger(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := l.UpdateQuantity(r.Context(), r.PathValue("productID"), r.PathValue("variantID"), req.Quantity); err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, l.Snapshot())
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	l, err := h.ledger(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := l.Remove(r.Context(), r.PathValue("productID"), r.PathValue("variantID")); err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, l.Snapshot())
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	l, err := h.ledger(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := l.Clear(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, l.Snapshot())
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var c order.Customer
	if err := decodeJSON(w, r, &c); err != nil {
		writeError(w, r, err)
		return
	}

	l, err := h.ledger(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	o, err := h.orders.Checkout(r.Context(), l, c)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.checkouts.Inc()
	utils.WriteJSON(w, http.StatusCreated, o)
}
