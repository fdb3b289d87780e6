package api

import (
	"errors"
	"net/http"

	"ayushyaa-be/internal/admin"
	"ayushyaa-be/internal/blob"
	"ayushyaa-be/internal/cart"
	"ayushyaa-be/internal/category"
	"ayushyaa-be/internal/logger"
	"ayushyaa-be/internal/order"
	"ayushyaa-be/internal/product"
	"ayushyaa-be/internal/user"
	"ayushyaa-be/internal/utils"

	"go.uber.org/zap"
)

const genericFailure = "something went wrong, please try again"

var badRequestErrors = []error{
	errBadRequest,
	admin.ErrValidation,
	admin.ErrMissingImage,
	blob.ErrNotImage,
	blob.ErrTooLarge,
	blob.ErrInvalidImage,
	cart.ErrInvalidQuantity,
	cart.ErrInvalidItem,
	cart.ErrMissingClientID,
	user.ErrInvalidInput,
	user.ErrMissingClientID,
	order.ErrCartEmpty,
	order.ErrInvalidCustomer,
}

var notFoundErrors = []error{
	product.ErrProductNotFound,
	product.ErrVariantNotFound,
	cart.ErrCartItemNotFound,
}

func statusFor(err error) int {
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	if errors.Is(err, user.ErrInvalidCredentials) {
		return http.StatusUnauthorized
	}
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return http.StatusNotFound
		}
	}
	if errors.Is(err, user.ErrDuplicateEmail) || errors.Is(err, category.ErrDuplicateSlug) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// writeError maps err onto a status and a message safe to show the user.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	msg := err.Error()

	var verr *admin.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.WriteJSON(w, code, map[string]any{
			"error":  admin.ErrValidation.Error(),
			"fields": verr.Fields,
		})
		return
	case errors.Is(err, errBadRequest):
		msg = errBadRequest.Error()
	case code == http.StatusInternalServerError:
		logger.FromCtx(r.Context()).Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		msg = genericFailure
	}

	utils.WriteJSONError(w, msg, code)
}
