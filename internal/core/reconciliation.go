package core

import (
	"context"
	"fmt"

	"github.com/avendano/geoportal/internal/model"
)

// ReconciliationService exposes the downstream-failure queue to staff
// tooling: fulfillment problems recorded after a ticket reached its
// terminal state.
type ReconciliationService struct {
	db DB
}

func NewReconciliationService(db DB) *ReconciliationService {
	return &ReconciliationService{db: db}
}

// List returns reconciliation tasks, oldest first. Resolved tasks are
// excluded unless includeResolved is set.
func (s *ReconciliationService) List(ctx context.Context, includeResolved bool) ([]model.ReconciliationTask, error) {
	query := `SELECT id, ticket_id, kind, detail, created_at, resolved_at FROM reconciliation_tasks`
	if !includeResolved {
		query += ` WHERE resolved_at IS NULL`
	}
	query += ` ORDER BY created_at`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, storage("list reconciliation tasks", err)
	}
	defer rows.Close()

	var tasks []model.ReconciliationTask
	for rows.Next() {
		var t model.ReconciliationTask
		if err := rows.Scan(&t.ID, &t.TicketID, &t.Kind, &t.Detail, &t.CreatedAt, &t.ResolvedAt); err != nil {
			return nil, storage("scan reconciliation task", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, storage("iterate reconciliation tasks", err)
	}
	return tasks, nil
}

// Resolve marks one open task as handled.
func (s *ReconciliationService) Resolve(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE reconciliation_tasks SET resolved_at = now() WHERE id = $1 AND resolved_at IS NULL`, id)
	if err != nil {
		return storage(fmt.Sprintf("resolve reconciliation task %s", id), err)
	}
	if tag.RowsAffected() == 0 {
		return notFoundf("open reconciliation task %s not found", id)
	}
	return nil
}
