// Package api is the JSON-over-HTTP surface of the storefront. Every handler
// converts failures into a status code and an {"error": "..."} body.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"ayushyaa-be/internal/admin"
	"ayushyaa-be/internal/cart"
	"ayushyaa-be/internal/catalog"
	"ayushyaa-be/internal/kvstore"
	"ayushyaa-be/internal/logger"
	"ayushyaa-be/internal/metrics"
	"ayushyaa-be/internal/middleware"
	"ayushyaa-be/internal/order"
	"ayushyaa-be/internal/product"
	"ayushyaa-be/internal/user"
	"ayushyaa-be/internal/utils"

	"go.uber.org/zap"
)

const maxJSONBody = 1 << 20

type Deps struct {
	Catalog   catalog.Service
	Products  product.Repository
	Admin     admin.Service
	Orders    order.Service
	Store     kvstore.Store
	Registry  *user.Registry
	AdminCred *user.AdminCredential
}

type Handler struct {
	catalog   catalog.Service
	products  product.Repository
	admin     admin.Service
	orders    order.Service
	store     kvstore.Store
	registry  *user.Registry
	adminCred *user.AdminCredential

	cartUpdates metrics.Counter
	checkouts   metrics.Counter
}

func NewHandler(d Deps) *Handler {
	return &Handler{
		catalog:   d.Catalog,
		products:  d.Products,
		admin:     d.Admin,
		orders:    d.Orders,
		store:     d.Store,
		registry:  d.Registry,
		adminCred: d.AdminCred,
	}
}

// Routes registers every endpoint. Callers wrap the result with the
// request-scoped middleware (request id, client scope, auth, rate limit).
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/catalog", h.ListCatalog)
	mux.HandleFunc("GET /api/categories", h.ListCategories)

	mux.HandleFunc("GET /api/cart", h.GetCart)
	mux.HandleFunc("POST /api/cart/items", h.AddCartItem)
	mux.HandleFunc("PATCH /api/cart/items/{productID}/{variantID}", h.UpdateCartItem)
	mux.HandleFunc("DELETE /api/cart/items/{productID}/{variantID}", h.RemoveCartItem)
	mux.HandleFunc("DELETE /api/cart", h.ClearCart)
	mux.HandleFunc("POST /api/checkout", h.Checkout)

	mux.HandleFunc("POST /api/auth/signup", h.Signup)
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("POST /api/auth/admin/login", h.AdminLogin)
	mux.HandleFunc("POST /api/auth/logout", h.Logout)
	mux.HandleFunc("GET /api/auth/me", h.Me)

	adminOnly := func(fn http.HandlerFunc) http.Handler {
		return middleware.RequireAdmin(h.requireAdminSession(fn))
	}
	mux.Handle("GET /api/admin/products", adminOnly(h.AdminListProducts))
	mux.Handle("POST /api/admin/products", adminOnly(h.AdminCreateProduct))
	mux.Handle("PUT /api/admin/products/{id}", adminOnly(h.AdminUpdateProduct))
	mux.Handle("DELETE /api/admin/products/{id}", adminOnly(h.AdminDeleteProduct))
	mux.Handle("POST /api/admin/products/{id}/toggle", adminOnly(h.AdminToggleProduct))
	mux.Handle("POST /api/admin/categories", adminOnly(h.AdminCreateCategory))
	mux.Handle("GET /api/admin/stats", adminOnly(h.AdminStats))

	return mux
}

// ledger loads the caller's cart and counts its mutations.
func (h *Handler) ledger(ctx context.Context) (*cart.Ledger, error) {
	l, err := cart.Load(ctx, h.store, utils.GetClientIDFromContext(ctx))
	if err != nil {
		return nil, err
	}
	log := logger.FromCtx(ctx)
	l.Subscribe(func(s cart.Snapshot) {
		h.cartUpdates.Inc()
		log.Debug("cart badge", zap.Int("count", s.Count))
	})
	return l, nil
}

func (h *Handler) session(ctx context.Context) (*user.Session, error) {
	return user.NewSession(h.store, h.registry, h.adminCred, utils.GetClientIDFromContext(ctx))
}

// requireAdminSession admits a token only while the client's persisted session
// is still the same admin, so logging out revokes the token for admin routes.
func (h *Handler) requireAdminSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := h.session(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		u, err := s.Restore(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		tokenUser, _ := utils.GetUserIDFromContext(r.Context())
		if u == nil || !u.IsAdmin() || u.ID != tokenUser {
			logger.FromCtx(r.Context()).Info("admin token without admin session", zap.String("user_id", tokenUser))
			utils.WriteJSONError(w, "session ended", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

var errBadRequest = errors.New("malformed request body")

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errBadRequest
		}
		return errors.Join(errBadRequest, err)
	}
	return nil
}
