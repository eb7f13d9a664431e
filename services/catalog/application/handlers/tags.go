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

// CreateTagCategoryRequest is the request body for POST /tag-categories.
type CreateTagCategoryRequest struct {
	Name string `json:"name" validate:"required,max=255" example:"season"`
} // @name CreateTagCategoryRequest

// TagCategoryResponse is a stored tag category (axis of the taxonomy).
type TagCategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name" example:"color"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
} // @name TagCategoryResponse

// CreateTagRequest is the request body for POST /tags.
type CreateTagRequest struct {
	Name       string   `json:"name" validate:"required,max=255" example:"blue"`
	TagType    string   `json:"tag_type" validate:"required,max=255" example:"color"`
	Categories []string `json:"categories"`
} // @name CreateTagRequest

// TagResponse is a stored registered tag value.
type TagResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name" example:"blue"`
	TagType    string    `json:"tag_type" example:"color"`
	Categories []string  `json:"categories"`
	CreatedAt  time.Time `json:"created_at"`
} // @name TagResponse

func toTagCategoryResponse(tc *models.TagCategory) TagCategoryResponse {
	return TagCategoryResponse{
		ID:        tc.ID,
		Name:      tc.Name,
		IsDefault: models.IsProtectedTagCategory(tc.Name),
		CreatedAt: tc.CreatedAt,
	}
}

func toTagResponse(t *models.Tag) TagResponse {
	return TagResponse{
		ID:         t.ID,
		Name:       t.Name,
		TagType:    t.TagType,
		Categories: t.Categories,
		CreatedAt:  t.CreatedAt,
	}
}

func toTagResponses(tags []*models.Tag) []TagResponse {
	out := make([]TagResponse, len(tags))
	for i, t := range tags {
		out[i] = toTagResponse(t)
	}
	return out
}

// TagsHandler handles the /tag-categories and /tags endpoints.
type TagsHandler struct {
	svc *appsvcs.Services
}

// NewTagsHandler returns a TagsHandler backed by the given services.
func NewTagsHandler(svc *appsvcs.Services) *TagsHandler {
	return &TagsHandler{svc: svc}
}

// CreateTagCategory creates a new tag category.
//
//	@Summary	Create tag category
//	@Tags		tags
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateTagCategoryRequest	true	"Tag category fields"
//	@Success	201		{object}	TagCategoryResponse
//	@Failure	409		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/tag-categories [post]
func (h *TagsHandler) CreateTagCategory(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateTagCategoryRequest](w, r)
	if !ok {
		return
	}

	tc, err := h.svc.Taxonomy.CreateTagCategory(r.Context(), req.Name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toTagCategoryResponse(tc))
}

// ListTagCategories returns every tag category. The default categories are
// recreated here if any are missing, so the response always contains them.
//
//	@Summary	List tag categories
//	@Tags		tags
//	@Produce	json
//	@Success	200	{array}		TagCategoryResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/tag-categories [get]
func (h *TagsHandler) ListTagCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.Taxonomy.ListTagCategories(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	out := make([]TagCategoryResponse, len(cats))
	for i, c := range cats {
		out[i] = toTagCategoryResponse(c)
	}
	httpx.JSON(w, http.StatusOK, out)
}

// DeleteTagCategory removes a tag category. The default categories cannot be
// deleted and return 403.
//
//	@Summary	Delete tag category
//	@Tags		tags
//	@Produce	json
//	@Param		id	path		string	true	"Tag category ID"
//	@Success	200	{object}	MessageResponse
//	@Failure	403	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/tag-categories/{id} [delete]
func (h *TagsHandler) DeleteTagCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Taxonomy.DeleteTagCategory(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSONMessage(w, http.StatusOK, "Tag category deleted successfully")
}

// CreateTag registers a new tag value under a tag type.
//
//	@Summary	Create tag
//	@Tags		tags
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateTagRequest	true	"Tag fields"
//	@Success	201		{object}	TagResponse
//	@Failure	409		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/tags [post]
func (h *TagsHandler) CreateTag(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateTagRequest](w, r)
	if !ok {
		return
	}

	tag, err := h.svc.Taxonomy.CreateTag(r.Context(), req.Name, req.TagType, req.Categories)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toTagResponse(tag))
}

// ListTags returns every registered tag.
//
//	@Summary	List tags
//	@Tags		tags
//	@Produce	json
//	@Success	200	{array}		TagResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/tags [get]
func (h *TagsHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.Taxonomy.ListTags(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toTagResponses(tags))
}

// ListTagsByType returns the tags of one tag type. An optional ?category=
// query narrows the result to tags scoped to that clothing category; the
// literal value "all" disables the filter.
//
// The URL param is registered as {key} because the sibling DELETE route
// carries an ID in the same position and chi requires one name per slot.
//
//	@Summary	List tags by type
//	@Tags		tags
//	@Produce	json
//	@Param		tag_type	path		string	true	"Tag type"
//	@Param		category	query		string	false	"Clothing category filter"
//	@Success	200			{array}		TagResponse
//	@Failure	500			{object}	ErrorResponse
//	@Router		/tags/{tag_type} [get]
func (h *TagsHandler) ListTagsByType(w http.ResponseWriter, r *http.Request) {
	tagType := chi.URLParam(r, "key")
	category := r.URL.Query().Get("category")

	tags, err := h.svc.Taxonomy.ListTagsByType(r.Context(), tagType, category)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toTagResponses(tags))
}

// DeleteTag removes a registered tag value.
//
//	@Summary	Delete tag
//	@Tags		tags
//	@Produce	json
//	@Param		id	path		string	true	"Tag ID"
//	@Success	200	{object}	MessageResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/tags/{id} [delete]
func (h *TagsHandler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "key"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.Taxonomy.DeleteTag(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSONMessage(w, http.StatusOK, "Tag deleted successfully")
}
