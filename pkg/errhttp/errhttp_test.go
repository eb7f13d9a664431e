package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	catalogdomain "github.com/Lilith-exe/LilysCloset/services/catalog/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrItemNotFound", catalogdomain.ErrItemNotFound, http.StatusNotFound},
		{"ErrCategoryNotFound", catalogdomain.ErrCategoryNotFound, http.StatusNotFound},
		{"ErrSubcategoryNotFound", catalogdomain.ErrSubcategoryNotFound, http.StatusNotFound},
		{"ErrTagCategoryNotFound", catalogdomain.ErrTagCategoryNotFound, http.StatusNotFound},
		{"ErrTagNotFound", catalogdomain.ErrTagNotFound, http.StatusNotFound},
		{"ErrCategoryExists", catalogdomain.ErrCategoryExists, http.StatusConflict},
		{"ErrSubcategoryExists", catalogdomain.ErrSubcategoryExists, http.StatusConflict},
		{"ErrTagCategoryExists", catalogdomain.ErrTagCategoryExists, http.StatusConflict},
		{"ErrTagExists", catalogdomain.ErrTagExists, http.StatusConflict},
		{"ErrTagCategoryProtected", catalogdomain.ErrTagCategoryProtected, http.StatusForbidden},
		{"ErrInvalidItem", catalogdomain.ErrInvalidItem, http.StatusUnprocessableEntity},
		{"ErrInvalidInput", catalogdomain.ErrInvalidInput, http.StatusUnprocessableEntity},
		{"wrapped ErrItemNotFound", fmt.Errorf("get item: %w", catalogdomain.ErrItemNotFound), http.StatusNotFound},
		{"wrapped ErrTagCategoryProtected", fmt.Errorf("%w: %q", catalogdomain.ErrTagCategoryProtected, "color"), http.StatusForbidden},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, catalogdomain.ErrItemNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body["error"] != "clothing item not found" {
		t.Fatalf("unexpected error message: %q", body["error"])
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, catalogdomain.ErrItemNotFound)

	ct := w.Header().Get("Content-Type")
	if ct != "application/json; charset=utf-8" {
		t.Fatalf("unexpected Content-Type: %q", ct)
	}
}
