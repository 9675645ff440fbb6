package core

import (
	"errors"
	"fmt"
)

// Kind discriminates the core error taxonomy so callers can branch on
// category instead of matching message strings.
type Kind int

const (
	// KindInvalidRequest is bad caller input; never retried automatically.
	KindInvalidRequest Kind = iota + 1
	// KindNotFound is an absent ticket or station.
	KindNotFound
	// KindConflict is an attempted re-completion of a terminal ticket.
	KindConflict
	// KindStorage is a backing-store failure. The whole operation is safe
	// to retry: atomicity guarantees no partial effect was left behind.
	KindStorage
	// KindDownstream is a render or email failure after the ledger commit.
	// Surfaced as a reconciliation task, never retried through Complete.
	KindDownstream
)

func (k Kind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid_request"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindStorage:
		return "storage_failure"
	case KindDownstream:
		return "downstream_failure"
	default:
		return "unknown"
	}
}

// Error is a categorised core error.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// ErrKind reports whether err carries the given kind anywhere in its chain.
func ErrKind(err error, k Kind) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == k
}

func invalidRequestf(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidRequest, Msg: fmt.Sprintf(format, args...)}
}

func notFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

func storage(msg string, err error) *Error {
	return &Error{Kind: KindStorage, Msg: msg, Err: err}
}

func downstream(msg string, err error) *Error {
	return &Error{Kind: KindDownstream, Msg: msg, Err: err}
}
