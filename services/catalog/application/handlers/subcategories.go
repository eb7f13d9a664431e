package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Lilith-exe/LilysCloset/pkg/errhttp"
	"github.com/Lilith-exe/LilysCloset/pkg/httpx"
	pkgvalidator "github.com/Lilith-exe/LilysCloset/pkg/validator"
	appsvcs "github.com/Lilith-exe/LilysCloset/services/catalog/application/services"
	"github.com/Lilith-exe/LilysCloset/services/catalog/domain/models"
)

// CreateSubcategoryRequest is the request body for POST /subcategories.
type CreateSubcategoryRequest struct {
	Name           string `json:"name" validate:"required,max=255" example:"Denim"`
	ParentCategory string `json:"parent_category" validate:"required,max=255" example:"Jackets"`
	CustomIcon     string `json:"custom_icon"`
} // @name CreateSubcategoryRequest

// SubcategoryResponse is a stored subcategory.
type SubcategoryResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name" example:"Denim"`
	ParentCategory string    `json:"parent_category" example:"Jackets"`
	CustomIcon     string    `json:"custom_icon,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
} // @name SubcategoryResponse

func toSubcategoryResponse(s *models.Subcategory) SubcategoryResponse {
	return SubcategoryResponse{
		ID:             s.ID,
		Name:           s.Name,
		ParentCategory: s.ParentCategory,
		CustomIcon:     s.CustomIcon,
		CreatedAt:      s.CreatedAt,
	}
}

// SubcategoriesHandler handles the /subcategories endpoints.
type SubcategoriesHandler struct {
	svc *appsvcs.Services
}

// NewSubcategoriesHandler returns a SubcategoriesHandler backed by the given services.
func NewSubcategoriesHandler(svc *appsvcs.Services) *SubcategoriesHandler {
	return &SubcategoriesHandler{svc: svc}
}

// Create creates a new subcategory under a parent category name.
//
//	@Summary	Create subcategory
//	@Tags		subcategories
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateSubcategoryRequest	true	"Subcategory fields"
//	@Success	201		{object}	SubcategoryResponse
//	@Failure	409		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/subcategories [post]
func (h *SubcategoriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateSubcategoryRequest](w, r)
	if !ok {
		return
	}

	sub, err := h.svc.Subcategory.Create(r.Context(), req.Name, req.ParentCategory, req.CustomIcon)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toSubcategoryResponse(sub))
}

// ListByParent returns the subcategories of one parent category name.
// The parent name is matched exactly, including case.
//
// The URL param is registered as {key} because the sibling PUT and DELETE
// routes carry an ID in the same position and chi requires one name per slot.
//
//	@Summary	List subcategories by parent
//	@Tags		subcategories
//	@Produce	json
//	@Param		parent_category	path		string	true	"Parent category name"
//	@Success	200				{array}		SubcategoryResponse
//	@Failure	500				{object}	ErrorResponse
//	@Router		/subcategories/{parent_category} [get]
func (h *SubcategoriesHandler) ListByParent(w http.ResponseWriter, r *http.Request) {
	parent := chi.URLParam(r, "key")

	subs, err := h.svc.Subcategory.ListByParent(r.Context(), parent)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	out := make([]SubcategoryResponse, len(subs))
	for i, s := range subs {
		out[i] = toSubcategoryResponse(s)
	}
	httpx.JSON(w, http.StatusOK, out)
}

// UpdateIcon replaces a subcategory's custom icon.
//
//	@Summary	Update subcategory icon
//	@Tags		subcategories
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Subcategory ID"
//	@Param		request	body		UpdateCategoryIconRequest	true	"Icon"
//	@Success	200		{object}	SubcategoryResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/subcategories/{id} [put]
func (h *SubcategoriesHandler) UpdateIcon(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "key"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateCategoryIconRequest](w, r)
	if !ok {
		return
	}

	sub, uerr := h.svc.Subcategory.UpdateIcon(r.Context(), id, req.CustomIcon)
	if uerr != nil {
		errhttp.WriteError(w, uerr)
		return
	}
	httpx.JSON(w, http.StatusOK, toSubcategoryResponse(sub))
}

// Delete removes a subcategory.
//
//	@Summary	Delete subcategory
//	@Tags		subcategories
//	@Produce	json
//	@Param		id	path		string	true	"Subcategory ID"
//	@Success	200	{object}	MessageResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/subcategories/{id} [delete]
func (h *SubcategoriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "key"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.Subcategory.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSONMessage(w, http.StatusOK, "Subcategory deleted successfully")
}
