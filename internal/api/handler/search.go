package handler

import (
	"fmt"
	"net/http"

	"github.com/avendano/geoportal/internal/api/request"
	"github.com/avendano/geoportal/internal/api/response"
	"github.com/avendano/geoportal/internal/core"
	"github.com/avendano/geoportal/internal/geo"
)

type Search struct {
	svc *core.SearchService
	// maxRadiusKm caps the requested radius at the HTTP boundary; 0 means
	// unlimited.
	maxRadiusKm float64
}

func NewSearch(svc *core.SearchService, maxRadiusKm float64) *Search {
	return &Search{svc: svc, maxRadiusKm: maxRadiusKm}
}

func (h *Search) Nearby(w http.ResponseWriter, r *http.Request) {
	params, err := request.ParseSearch(r, h.maxRadiusKm)
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.maxRadiusKm > 0 && params.RadiusKm > h.maxRadiusKm {
		response.WriteError(w, http.StatusBadRequest,
			fmt.Sprintf("radius_km must not exceed %g", h.maxRadiusKm))
		return
	}

	center, err := geo.NewCoordinate(params.Lat, params.Lng)
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	results, err := h.svc.Search(r.Context(), center, params.RadiusKm)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}
	if results == nil {
		results = []core.SearchResult{}
	}

	response.WriteJSON(w, http.StatusOK, results)
}
