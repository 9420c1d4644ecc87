// Package apperr defines the error taxonomy used across services. Handlers
// map each kind to an HTTP status at the boundary; nothing below the handler
// layer knows about HTTP.
package apperr

import "errors"

// Kind classifies an error for boundary handling.
type Kind int

const (
	// KindValidation: input fails a precondition (no capacity left,
	// out-of-sequence status transition, missing field). No partial write.
	KindValidation Kind = iota
	// KindConflict: the operation would violate an invariant held by
	// existing data (deleting an item with outstanding assignments).
	KindConflict
	// KindNotFound: a referenced entity does not exist at write time.
	KindNotFound
	// KindTransient: network/storage failure; the action can simply be
	// retried by the user, no automatic retry is performed.
	KindTransient
)

// Error carries a kind and a user-presentable message.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // optional cause, kept for logs only
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error { return &Error{Kind: KindValidation, Msg: msg} }
func Conflict(msg string) *Error   { return &Error{Kind: KindConflict, Msg: msg} }
func NotFound(msg string) *Error   { return &Error{Kind: KindNotFound, Msg: msg} }

// Transient wraps a storage/network failure with a generic notice. The cause
// is preserved for logging but never shown to clients.
func Transient(msg string, cause error) *Error {
	return &Error{Kind: KindTransient, Msg: msg, Err: cause}
}

// KindOf extracts the kind of err. ok is false for untyped errors, which the
// boundary treats as internal.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// Is reports whether err is an apperr of the given kind.
func Is(err error, k Kind) bool {
	kind, ok := KindOf(err)
	return ok && kind == k
}
