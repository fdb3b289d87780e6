package api

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"ayushyaa-be/internal/admin"
	"ayushyaa-be/internal/blob"
	"ayushyaa-be/internal/catalog"
	"ayushyaa-be/internal/utils"

	"github.com/samber/lo"
)

const maxFormMemory = blob.MaxUploadSize + 1<<20

type adminProductView struct {
	*catalog.ProductWithVariants
	Stock int `json:"stock"`
}

func (h *Handler) AdminListProducts(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.LoadAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	views := lo.Map(items, func(p *catalog.ProductWithVariants, _ int) adminProductView {
		v := adminProductView{ProductWithVariants: p}
		if first := p.FirstVariant(); first != nil {
			v.Stock = first.Stock
		}
		return v
	})
	utils.WriteJSON(w, http.StatusOK, map[string]any{"products": views})
}

func (h *Handler) AdminCreateProduct(w http.ResponseWriter, r *http.Request) {
	form, err := parseProductForm(r, true)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer form.close()

	rec, err := h.admin.CreateProduct(r.Context(), form.product, form.variant, form.image)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, rec)
}

func (h *Handler) AdminUpdateProduct(w http.ResponseWriter, r *http.Request) {
	form, err := parseProductForm(r, false)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer form.close()

	rec, err := h.admin.UpdateProduct(r.Context(), r.PathValue("id"), form.product, form.variant, form.image)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, rec)
}

func (h *Handler) AdminDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.admin.DeleteProduct(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminToggleProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.admin.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	toggled, err := h.admin.ToggleActive(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, toggled)
}

func (h *Handler) AdminCreateCategory(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name        string `json:"name"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
	}
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.admin.CreateCategory(r.Context(), admin.CategoryInput(in))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"catalog":      h.catalog.Stats(),
		"cart_updates": h.cartUpdates.Load(),
		"checkouts":    h.checkouts.Load(),
	})
}

type productForm struct {
	product admin.ProductInput
	variant admin.VariantInput
	image   *blob.Upload
	file    multipart.File
}

func (f *productForm) close() {
	if f.file != nil {
		f.file.Close()
	}
}

// parseProductForm reads the admin product form, multipart or urlencoded.
// Unparseable numbers are reported per field like any other validation error.
func parseProductForm(r *http.Request, creating bool) (*productForm, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, errors.Join(errBadRequest, err)
	}

	fields := map[string]string{}
	number := func(key string) float64 {
		raw := strings.TrimSpace(r.FormValue(key))
		if raw == "" {
			return 0
		}
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fields[key] = "must be a number"
		}
		return n
	}
	integer := func(key string) int {
		raw := strings.TrimSpace(r.FormValue(key))
		if raw == "" {
			return 0
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			fields[key] = "must be a whole number"
		}
		return n
	}

	active := creating
	if raw := strings.TrimSpace(r.FormValue("is_active")); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			fields["is_active"] = "must be true or false"
		}
		active = b
	}

	form := &productForm{
		product: admin.ProductInput{
			Name:        r.FormValue("name"),
			Slug:        r.FormValue("slug"),
			Description: r.FormValue("description"),
			CategoryID:  r.FormValue("category_id"),
			ImageURL:    r.FormValue("image_url"),
			BasePrice:   number("base_price"),
			IsActive:    active,
		},
		variant: admin.VariantInput{
			Weight: r.FormValue("weight"),
			Price:  number("price"),
			Stock:  integer("stock"),
		},
	}
	if len(fields) > 0 {
		return nil, &admin.ValidationError{Fields: fields}
	}

	file, header, err := r.FormFile("image")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	case err != nil:
		return nil, errors.Join(errBadRequest, err)
	default:
		form.file = file
		form.image = &blob.Upload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Body:        file,
		}
	}
	return form, nil
}
