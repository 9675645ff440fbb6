package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avendano/geoportal/internal/api/request"
	"github.com/avendano/geoportal/internal/api/response"
	"github.com/avendano/geoportal/internal/core"
)

type Reconciliation struct {
	svc *core.ReconciliationService
}

func NewReconciliation(svc *core.ReconciliationService) *Reconciliation {
	return &Reconciliation{svc: svc}
}

func (h *Reconciliation) List(w http.ResponseWriter, r *http.Request) {
	includeResolved := false
	if raw := r.URL.Query().Get("include_resolved"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			includeResolved = v
		}
	}

	tasks, err := h.svc.List(r.Context(), includeResolved)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, tasks)
}

func (h *Reconciliation) Resolve(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireParam("id", chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.Resolve(r.Context(), id); err != nil {
		response.WriteServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
