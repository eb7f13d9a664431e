// Package errhttp maps catalog domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/Lilith-exe/LilysCloset/pkg/httpx"
	catalogdomain "github.com/Lilith-exe/LilysCloset/services/catalog/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, catalogdomain.ErrItemNotFound),
		errors.Is(err, catalogdomain.ErrCategoryNotFound),
		errors.Is(err, catalogdomain.ErrSubcategoryNotFound),
		errors.Is(err, catalogdomain.ErrTagCategoryNotFound),
		errors.Is(err, catalogdomain.ErrTagNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, catalogdomain.ErrCategoryExists),
		errors.Is(err, catalogdomain.ErrSubcategoryExists),
		errors.Is(err, catalogdomain.ErrTagCategoryExists),
		errors.Is(err, catalogdomain.ErrTagExists):
		return http.StatusConflict // 409
	case errors.Is(err, catalogdomain.ErrTagCategoryProtected):
		return http.StatusForbidden // 403
	case errors.Is(err, catalogdomain.ErrInvalidItem),
		errors.Is(err, catalogdomain.ErrInvalidInput):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
