package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Lilith-exe/LilysCloset/pkg/errhttp"
	"github.com/Lilith-exe/LilysCloset/pkg/httpx"
	pkgvalidator "github.com/Lilith-exe/LilysCloset/pkg/validator"
	appsvcs "github.com/Lilith-exe/LilysCloset/services/catalog/application/services"
	"github.com/Lilith-exe/LilysCloset/services/catalog/domain/models"
)

// CreateCategoryRequest is the request body for POST /categories.
type CreateCategoryRequest struct {
	Name       string `json:"name" validate:"required,max=255" example:"Jackets"`
	CustomIcon string `json:"custom_icon"`
} // @name CreateCategoryRequest

// UpdateCategoryIconRequest is the request body for PUT /categories/{id}.
// Only the icon is mutable; the name is fixed at creation.
type UpdateCategoryIconRequest struct {
	CustomIcon string `json:"custom_icon"`
} // @name UpdateCategoryIconRequest

// CategoryResponse is a stored top-level category.
type CategoryResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name" example:"Jackets"`
	CustomIcon string    `json:"custom_icon,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
} // @name CategoryResponse

func toCategoryResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:         c.ID,
		Name:       c.Name,
		CustomIcon: c.CustomIcon,
		CreatedAt:  c.CreatedAt,
	}
}

// CategoriesHandler handles the /categories endpoints.
type CategoriesHandler struct {
	svc *appsvcs.Services
}

// NewCategoriesHandler returns a CategoriesHandler backed by the given services.
func NewCategoriesHandler(svc *appsvcs.Services) *CategoriesHandler {
	return &CategoriesHandler{svc: svc}
}

// Create creates a new category.
//
//	@Summary	Create category
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateCategoryRequest	true	"Category fields"
//	@Success	201		{object}	CategoryResponse
//	@Failure	409		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/categories [post]
func (h *CategoriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateCategoryRequest](w, r)
	if !ok {
		return
	}

	cat, err := h.svc.Category.Create(r.Context(), req.Name, req.CustomIcon)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toCategoryResponse(cat))
}

// List returns all categories.
//
//	@Summary	List categories
//	@Tags		categories
//	@Produce	json
//	@Success	200	{array}		CategoryResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/categories [get]
func (h *CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.Category.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	out := make([]CategoryResponse, len(cats))
	for i, c := range cats {
		out[i] = toCategoryResponse(c)
	}
	httpx.JSON(w, http.StatusOK, out)
}

// UpdateIcon replaces a category's custom icon.
//
//	@Summary	Update category icon
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Category ID"
//	@Param		request	body		UpdateCategoryIconRequest	true	"Icon"
//	@Success	200		{object}	CategoryResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/categories/{id} [put]
func (h *CategoriesHandler) UpdateIcon(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateCategoryIconRequest](w, r)
	if !ok {
		return
	}

	cat, err := h.svc.Category.UpdateIcon(r.Context(), id, req.CustomIcon)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toCategoryResponse(cat))
}

// Delete removes a category. Items referencing the category are untouched.
//
//	@Summary	Delete category
//	@Tags		categories
//	@Produce	json
//	@Param		id	path		string	true	"Category ID"
//	@Success	200	{object}	MessageResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/categories/{id} [delete]
func (h *CategoriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Category.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSONMessage(w, http.StatusOK, "Category deleted successfully")
}
