package request

import "net/http"

// SubmitRequest is the body of a certificate request submission.
type SubmitRequest struct {
	ClientName   string   `json:"client_name" validate:"required"`
	Email        string   `json:"email" validate:"required,email"`
	StationNames []string `json:"station_names" validate:"required,min=1,dive,required"`
}

// CompleteRequests asks for a batch of pending tickets to be completed.
type CompleteRequests struct {
	TicketIDs []string `json:"ticket_ids" validate:"required,min=1,dive,required"`
}

// ParseTrack extracts the ticket/email pair used to look up a request.
func ParseTrack(r *http.Request) (ticketID, email string, err error) {
	q := r.URL.Query()
	if ticketID, err = RequireParam("ticket_id", q.Get("ticket_id")); err != nil {
		return "", "", err
	}
	if email, err = RequireParam("email", q.Get("email")); err != nil {
		return "", "", err
	}
	return ticketID, email, nil
}
