package response

import (
	"encoding/json"
	"net/http"

	"github.com/avendano/geoportal/internal/core"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"error": message})
}

// WriteServiceError maps a service error onto an HTTP status. Unclassified
// errors are reported as internal failures without leaking the cause.
func WriteServiceError(w http.ResponseWriter, err error) {
	switch {
	case core.ErrKind(err, core.KindInvalidRequest):
		WriteError(w, http.StatusBadRequest, err.Error())
	case core.ErrKind(err, core.KindNotFound):
		WriteError(w, http.StatusNotFound, err.Error())
	case core.ErrKind(err, core.KindConflict):
		WriteError(w, http.StatusConflict, err.Error())
	case core.ErrKind(err, core.KindDownstream):
		WriteError(w, http.StatusBadGateway, err.Error())
	default:
		WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

// PaginatedResponse wraps a list with pagination metadata.
type PaginatedResponse struct {
	Items      any    `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more"`
}

// WritePaginated writes a paginated JSON response.
func WritePaginated(w http.ResponseWriter, status int, items any, nextCursor string, hasMore bool) {
	WriteJSON(w, status, PaginatedResponse{
		Items:      items,
		NextCursor: nextCursor,
		HasMore:    hasMore,
	})
}
