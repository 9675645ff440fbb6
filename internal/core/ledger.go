package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/avendano/geoportal/internal/model"
	"github.com/avendano/geoportal/internal/platform"
)

var validate = validator.New()

type submitInput struct {
	ClientName   string   `validate:"required"`
	Email        string   `validate:"required,email"`
	StationNames []string `validate:"required,min=1,dive,required"`
}

// LedgerService is the certificate-request state machine. A ticket is
// created pending by Submit and moved exactly once to the completed archive
// by Complete; the two record sets stay disjoint and together lossless.
type LedgerService struct {
	db      DB
	clock   clockwork.Clock
	tickets *TicketIDGenerator
	logger  zerolog.Logger

	renderer Renderer
	notifier Notifier
}

func NewLedgerService(db DB, clock clockwork.Clock, logger zerolog.Logger) *LedgerService {
	return &LedgerService{
		db:      db,
		clock:   clock,
		tickets: NewTicketIDGenerator(clock),
		logger:  logger,
	}
}

// WithFulfillment attaches the renderer and notifier invoked after a
// completion commits. Without both, Complete still transitions tickets and
// skips fulfillment.
func (s *LedgerService) WithFulfillment(r Renderer, n Notifier) *LedgerService {
	s.renderer = r
	s.notifier = n
	return s
}

// Submit creates a new pending request and returns its ticket ID. The
// ticket is visible to Lookup and Complete before Submit returns.
func (s *LedgerService) Submit(ctx context.Context, clientName, email string, stationNames []string) (string, error) {
	in := submitInput{
		ClientName:   strings.TrimSpace(clientName),
		Email:        strings.TrimSpace(email),
		StationNames: stationNames,
	}
	if err := validate.Struct(in); err != nil {
		return "", &Error{Kind: KindInvalidRequest, Msg: "invalid certificate request", Err: err}
	}

	ticketID := s.tickets.Next()
	_, err := s.db.Exec(ctx,
		`INSERT INTO pending_requests (ticket_id, client_name, email, station_names, request_date)
		 VALUES ($1, $2, $3, $4, $5)`,
		ticketID, in.ClientName, in.Email, in.StationNames, s.clock.Now().UTC(),
	)
	if err != nil {
		return "", storage("insert pending request", err)
	}
	return ticketID, nil
}

// The move from pending to completed happens in one statement, so
// concurrent completions of the same ticket resolve to exactly one winner
// and the ticket can never exist in both sets or in neither.
const completeQuery = `
	WITH moved AS (
		DELETE FROM pending_requests
		WHERE ticket_id = $1
		RETURNING ticket_id, client_name, email, station_names, request_date
	)
	INSERT INTO completed_requests (ticket_id, client_name, email, station_names, request_date, completion_date)
	SELECT ticket_id, client_name, email, station_names, request_date, $2
	FROM moved
	RETURNING ticket_id, client_name, email, station_names, request_date, completion_date`

// Complete moves a pending ticket to the completed archive, stamping the
// completion date. A ticket already completed fails with Conflict; an
// unknown ticket with NotFound. Fulfillment side effects run after the
// move commits and never roll it back.
func (s *LedgerService) Complete(ctx context.Context, ticketID string) (*model.CertificateRequest, error) {
	if ticketID == "" {
		return nil, invalidRequestf("ticket id is required")
	}

	var rec model.CertificateRequest
	var completion time.Time
	err := s.db.QueryRow(ctx, completeQuery, ticketID, s.clock.Now().UTC()).
		Scan(&rec.TicketID, &rec.ClientName, &rec.Email, &rec.StationNames, &rec.RequestDate, &completion)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, s.classifyMissing(ctx, ticketID)
	}
	if err != nil {
		return nil, storage(fmt.Sprintf("complete ticket %s", ticketID), err)
	}

	rec.State = model.RequestStateCompleted
	rec.CompletionDate = &completion

	if s.renderer != nil && s.notifier != nil {
		go s.fulfill(rec)
	}
	return &rec, nil
}

// classifyMissing distinguishes a ticket that already reached the terminal
// state from one that never existed. Both leave the record sets untouched.
func (s *LedgerService) classifyMissing(ctx context.Context, ticketID string) error {
	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM completed_requests WHERE ticket_id = $1)`, ticketID).Scan(&exists)
	if err != nil {
		return storage(fmt.Sprintf("check completed ticket %s", ticketID), err)
	}
	if exists {
		return conflictf("ticket %s is already completed", ticketID)
	}
	return notFoundf("ticket %s not found", ticketID)
}

// CompletionResult is the per-ticket outcome of a batch completion.
type CompletionResult struct {
	TicketID string
	Record   *model.CertificateRequest
	Err      error
}

// CompleteBatch completes each ticket independently. A failure on one
// ticket never aborts transitions already committed for its siblings.
func (s *LedgerService) CompleteBatch(ctx context.Context, ticketIDs []string) []CompletionResult {
	results := make([]CompletionResult, 0, len(ticketIDs))
	for _, id := range ticketIDs {
		rec, err := s.Complete(ctx, id)
		results = append(results, CompletionResult{TicketID: id, Record: rec, Err: err})
	}
	return results
}

// Lookup returns the request for the public tracker. The email must match
// the stored address case-insensitively; a mismatch reads the same as an
// absent ticket so the tracker never confirms a ticket for the wrong email.
func (s *LedgerService) Lookup(ctx context.Context, ticketID, email string) (*model.CertificateRequest, error) {
	if ticketID == "" || email == "" {
		return nil, invalidRequestf("ticket id and email are required")
	}

	var rec model.CertificateRequest
	err := s.db.QueryRow(ctx,
		`SELECT ticket_id, client_name, email, station_names, request_date
		 FROM pending_requests WHERE ticket_id = $1 AND lower(email) = lower($2)`,
		ticketID, email,
	).Scan(&rec.TicketID, &rec.ClientName, &rec.Email, &rec.StationNames, &rec.RequestDate)
	if err == nil {
		rec.State = model.RequestStatePending
		return &rec, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, storage(fmt.Sprintf("lookup pending ticket %s", ticketID), err)
	}

	var completion time.Time
	err = s.db.QueryRow(ctx,
		`SELECT ticket_id, client_name, email, station_names, request_date, completion_date
		 FROM completed_requests WHERE ticket_id = $1 AND lower(email) = lower($2)`,
		ticketID, email,
	).Scan(&rec.TicketID, &rec.ClientName, &rec.Email, &rec.StationNames, &rec.RequestDate, &completion)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFoundf("ticket %s not found", ticketID)
	}
	if err != nil {
		return nil, storage(fmt.Sprintf("lookup completed ticket %s", ticketID), err)
	}

	rec.State = model.RequestStateCompleted
	rec.CompletionDate = &completion
	return &rec, nil
}

// PendingList returns one page of the staff queue, cursor-paginated by
// ticket ID.
func (s *LedgerService) PendingList(ctx context.Context, limit int, cursor string) ([]model.CertificateRequest, bool, error) {
	query := `SELECT ticket_id, client_name, email, station_names, request_date FROM pending_requests`
	var args []any
	argIdx := 1

	if cursor != "" {
		query += fmt.Sprintf(` WHERE ticket_id > $%d`, argIdx)
		args = append(args, cursor)
		argIdx++
	}
	query += fmt.Sprintf(` ORDER BY ticket_id LIMIT $%d`, argIdx)
	args = append(args, limit+1)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, false, storage("list pending requests", err)
	}
	defer rows.Close()

	var requests []model.CertificateRequest
	for rows.Next() {
		var rec model.CertificateRequest
		if err := rows.Scan(&rec.TicketID, &rec.ClientName, &rec.Email, &rec.StationNames, &rec.RequestDate); err != nil {
			return nil, false, storage("scan pending request", err)
		}
		rec.State = model.RequestStatePending
		requests = append(requests, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, false, storage("iterate pending requests", err)
	}

	hasMore := len(requests) > limit
	if hasMore {
		requests = requests[:limit]
	}
	return requests, hasMore, nil
}

// fulfill renders and emails the certificate after a completion commits.
// Failures are recorded as reconciliation tasks for operators; the ledger
// state is already terminal and stays that way.
func (s *LedgerService) fulfill(rec model.CertificateRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stations, err := s.stationsByName(ctx, rec.StationNames)
	if err != nil {
		s.recordDownstreamFailure(ctx, rec.TicketID, model.ReconcileKindRender, err)
		return
	}

	doc, err := s.renderer.Render(ctx, &rec, stations)
	if err != nil {
		s.recordDownstreamFailure(ctx, rec.TicketID, model.ReconcileKindRender, err)
		return
	}

	subject := fmt.Sprintf("Your certificate request %s is ready", rec.TicketID)
	body := fmt.Sprintf("Dear %s,\n\nYour certificate request %s for %s has been completed. The certificate is attached.\n",
		rec.ClientName, rec.TicketID, strings.Join(rec.StationNames, ", "))
	if err := s.notifier.Send(ctx, rec.Email, subject, body, doc, rec.TicketID+".pdf"); err != nil {
		s.recordDownstreamFailure(ctx, rec.TicketID, model.ReconcileKindEmail, err)
	}
}

func (s *LedgerService) stationsByName(ctx context.Context, names []string) ([]model.Station, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+stationColumns+` FROM stations WHERE station_name = ANY($1) ORDER BY station_name`, names)
	if err != nil {
		return nil, storage("get request stations", err)
	}
	defer rows.Close()

	return collectStations(rows)
}

func (s *LedgerService) recordDownstreamFailure(ctx context.Context, ticketID, kind string, cause error) {
	derr := downstream(fmt.Sprintf("%s failed for ticket %s", kind, ticketID), cause)
	s.logger.Error().Err(derr).
		Str("ticket_id", ticketID).
		Str("kind", kind).
		Msg("fulfillment failed after ledger commit")

	_, err := s.db.Exec(ctx,
		`INSERT INTO reconciliation_tasks (id, ticket_id, kind, detail, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		platform.NewID(), ticketID, kind, derr.Error(), s.clock.Now().UTC(),
	)
	if err != nil {
		s.logger.Error().Err(err).Str("ticket_id", ticketID).Msg("failed to record reconciliation task")
	}
}
