package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Lilith-exe/LilysCloset/pkg/errhttp"
	"github.com/Lilith-exe/LilysCloset/pkg/httpx"
	appsvcs "github.com/Lilith-exe/LilysCloset/services/catalog/application/services"
)

// QueryHandler handles the search and stats endpoints.
type QueryHandler struct {
	svc *appsvcs.Services
}

// NewQueryHandler returns a QueryHandler backed by the given services.
func NewQueryHandler(svc *appsvcs.Services) *QueryHandler {
	return &QueryHandler{svc: svc}
}

// Search searches clothing items. An all-digit query is treated as an exact
// inventory number lookup; anything else is a case-insensitive substring
// match over name, category, notes and registered tag values.
//
//	@Summary	Search clothing items
//	@Tags		clothing-items
//	@Produce	json
//	@Param		query	path		string	true	"Search query"
//	@Success	200		{array}		ItemResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/clothing-items/search/{query} [get]
func (h *QueryHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := chi.URLParam(r, "query")

	items, err := h.svc.Query.Search(r.Context(), query)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponses(items))
}

// Stats returns catalog-wide aggregate counts: total items, items per
// category, and per tag type the count of items carrying each tag value.
// Count maps are ordered highest first.
//
//	@Summary	Catalog statistics
//	@Tags		stats
//	@Produce	json
//	@Success	200	{object}	services.Stats
//	@Failure	500	{object}	ErrorResponse
//	@Router		/stats [get]
func (h *QueryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Query.Stats(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, stats)
}
