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

// CreateItemRequest is the request body for POST /clothing-items.
// The image is a self-describing base64 string embedded in the JSON body.
type CreateItemRequest struct {
	Name        string              `json:"name" validate:"required,max=255" example:"Blue denim jacket"`
	Category    string              `json:"category" validate:"required,max=255" example:"Jackets"`
	Subcategory string              `json:"subcategory" example:"Denim"`
	Image       string              `json:"image" validate:"required"`
	Tags        map[string][]string `json:"tags"`
	Notes       string              `json:"notes"`
} // @name CreateItemRequest

// UpdateItemRequest is the request body for PUT /clothing-items/{id}.
// Every field is optional: omitted fields are untouched, explicit nulls clear
// the field (subcategory, notes, tags only — required fields cannot be cleared).
type UpdateItemRequest struct {
	Name        models.Optional[string]        `json:"name"`
	Category    models.Optional[string]        `json:"category"`
	Subcategory models.Optional[string]        `json:"subcategory"`
	Image       models.Optional[string]        `json:"image"`
	Tags        models.Optional[models.TagMap] `json:"tags"`
	Notes       models.Optional[string]        `json:"notes"`
} // @name UpdateItemRequest

// ItemResponse is the full stored item record, returned by every item endpoint.
type ItemResponse struct {
	ID              uuid.UUID           `json:"id"`
	InventoryNumber int                 `json:"inventory_number" example:"1"`
	Name            string              `json:"name" example:"Blue denim jacket"`
	Category        string              `json:"category" example:"Jackets"`
	Subcategory     string              `json:"subcategory,omitempty" example:"Denim"`
	Image           string              `json:"image"`
	Tags            map[string][]string `json:"tags"`
	Notes           string              `json:"notes"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
} // @name ItemResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"clothing item not found"`
} // @name ErrorResponse

// MessageResponse is returned by the delete endpoints.
type MessageResponse struct {
	Message string `json:"message" example:"Clothing item deleted successfully"`
} // @name MessageResponse

func toItemResponse(it *models.Item) ItemResponse {
	return ItemResponse{
		ID:              it.ID,
		InventoryNumber: it.InventoryNumber,
		Name:            it.Name,
		Category:        it.Category,
		Subcategory:     it.Subcategory,
		Image:           it.Image,
		Tags:            it.Tags,
		Notes:           it.Notes,
		CreatedAt:       it.CreatedAt,
		UpdatedAt:       it.UpdatedAt,
	}
}

func toItemResponses(items []*models.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, it := range items {
		out[i] = toItemResponse(it)
	}
	return out
}

// ItemsHandler handles the /clothing-items endpoints.
type ItemsHandler struct {
	svc *appsvcs.Services
}

// NewItemsHandler returns an ItemsHandler backed by the given services.
func NewItemsHandler(svc *appsvcs.Services) *ItemsHandler {
	return &ItemsHandler{svc: svc}
}

// Create creates a new clothing item.
//
//	@Summary		Create clothing item
//	@Description	Creates an item and assigns the next sequential inventory number
//	@Tags			clothing-items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item fields"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/clothing-items [post]
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Create(r.Context(), appsvcs.CreateItemInput{
		Name:        req.Name,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Image:       req.Image,
		Notes:       req.Notes,
		Tags:        req.Tags,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}

// List returns all clothing items by ascending inventory number.
//
//	@Summary	List clothing items
//	@Tags		clothing-items
//	@Produce	json
//	@Success	200	{array}		ItemResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/clothing-items [get]
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Item.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponses(items))
}

// Get returns one clothing item by ID.
//
//	@Summary	Get clothing item
//	@Tags		clothing-items
//	@Produce	json
//	@Param		id	path		string	true	"Item ID"
//	@Success	200	{object}	ItemResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/clothing-items/{id} [get]
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Get(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}

// Update applies a partial update and returns the stored result.
//
//	@Summary		Update clothing item
//	@Description	Omitted fields are untouched; explicit nulls clear optional fields. An empty body is a no-op.
//	@Tags			clothing-items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Item ID"
//	@Param			request	body		UpdateItemRequest	true	"Partial item fields"
//	@Success		200		{object}	ItemResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/clothing-items/{id} [put]
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Update(r.Context(), id, models.ItemPatch{
		Name:        req.Name,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Image:       req.Image,
		Tags:        req.Tags,
		Notes:       req.Notes,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}

// Delete removes a clothing item permanently.
//
//	@Summary	Delete clothing item
//	@Tags		clothing-items
//	@Produce	json
//	@Param		id	path		string	true	"Item ID"
//	@Success	200	{object}	MessageResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/clothing-items/{id} [delete]
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Item.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSONMessage(w, http.StatusOK, "Clothing item deleted successfully")
}

// parseID reads the {id} URL param as a UUID, writing a 400 on garbage input.
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}
