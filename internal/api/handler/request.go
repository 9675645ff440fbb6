package handler

import (
	"net/http"

	"github.com/avendano/geoportal/internal/api/request"
	"github.com/avendano/geoportal/internal/api/response"
	"github.com/avendano/geoportal/internal/core"
	"github.com/avendano/geoportal/internal/model"
)

type Request struct {
	svc *core.LedgerService
}

func NewRequest(svc *core.LedgerService) *Request {
	return &Request{svc: svc}
}

func (h *Request) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitRequest
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	ticketID, err := h.svc.Submit(r.Context(), req.ClientName, req.Email, req.StationNames)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, map[string]string{"ticket_id": ticketID})
}

type completionItem struct {
	TicketID string                    `json:"ticket_id"`
	Status   string                    `json:"status"`
	Error    string                    `json:"error,omitempty"`
	Record   *model.CertificateRequest `json:"record,omitempty"`
}

func (h *Request) Complete(w http.ResponseWriter, r *http.Request) {
	var req request.CompleteRequests
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	results := h.svc.CompleteBatch(r.Context(), req.TicketIDs)

	items := make([]completionItem, 0, len(results))
	for _, res := range results {
		item := completionItem{TicketID: res.TicketID}
		if res.Err != nil {
			item.Status = "failed"
			item.Error = res.Err.Error()
		} else {
			item.Status = "completed"
			item.Record = res.Record
		}
		items = append(items, item)
	}

	response.WriteJSON(w, http.StatusOK, map[string]any{"results": items})
}

func (h *Request) Track(w http.ResponseWriter, r *http.Request) {
	ticketID, email, err := request.ParseTrack(r)
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.svc.Lookup(r.Context(), ticketID, email)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, rec)
}

func (h *Request) Pending(w http.ResponseWriter, r *http.Request) {
	page := request.ParsePagination(r)

	requests, hasMore, err := h.svc.PendingList(r.Context(), page.Limit, page.Cursor)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	nextCursor := ""
	if hasMore && len(requests) > 0 {
		nextCursor = requests[len(requests)-1].TicketID
	}

	response.WritePaginated(w, http.StatusOK, requests, nextCursor, hasMore)
}
