package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avendano/geoportal/internal/api/request"
	"github.com/avendano/geoportal/internal/api/response"
	"github.com/avendano/geoportal/internal/core"
)

type Station struct {
	svc *core.CatalogService
}

func NewStation(svc *core.CatalogService) *Station {
	return &Station{svc: svc}
}

func (h *Station) List(w http.ResponseWriter, r *http.Request) {
	filter := request.ParseStationFilter(r)
	page := request.ParsePagination(r)

	stations, hasMore, err := h.svc.List(r.Context(), filter, page.Limit, page.Cursor)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	nextCursor := ""
	if hasMore && len(stations) > 0 {
		nextCursor = stations[len(stations)-1].StationName
	}

	response.WritePaginated(w, http.StatusOK, stations, nextCursor, hasMore)
}

func (h *Station) Count(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Count(r.Context())
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]int{"count": n})
}

func (h *Station) Get(w http.ResponseWriter, r *http.Request) {
	name, err := request.RequireParam("name", chi.URLParam(r, "name"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	station, err := h.svc.ByName(r.Context(), name)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, station)
}
