package model

import "time"

// Certificate request states. Completed is terminal.
const (
	RequestStatePending   = "pending"
	RequestStateCompleted = "completed"
)

// CertificateRequest is one certificate ticket. A ticket lives in exactly one
// of the pending or completed record sets; CompletionDate is set only on the
// transition to completed.
type CertificateRequest struct {
	TicketID       string     `json:"ticket_id" db:"ticket_id"`
	ClientName     string     `json:"client_name" db:"client_name"`
	Email          string     `json:"email" db:"email"`
	StationNames   []string   `json:"station_names" db:"station_names"`
	State          string     `json:"state"`
	RequestDate    time.Time  `json:"request_date" db:"request_date"`
	CompletionDate *time.Time `json:"completion_date,omitempty" db:"completion_date"`
}

// Reconciliation task kinds for post-commit side effects that failed.
const (
	ReconcileKindRender = "render"
	ReconcileKindEmail  = "email"
)

// ReconciliationTask records a downstream failure (certificate render or
// email delivery) that happened after a ticket was completed. The ledger
// state is already terminal, so the failure is surfaced to operators here
// instead of being retried through Complete.
type ReconciliationTask struct {
	ID         string     `json:"id" db:"id"`
	TicketID   string     `json:"ticket_id" db:"ticket_id"`
	Kind       string     `json:"kind" db:"kind"`
	Detail     string     `json:"detail" db:"detail"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty" db:"resolved_at"`
}
