// Package apperr carries the error taxonomy shared by all domain
// packages: a Kind classifies who is at fault and how the HTTP layer
// should answer, without the domain code knowing about status codes.
package apperr

import "errors"

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUpload
	KindUnauthorized
)

type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.msg != "" {
		return e.msg
	}
	if e.err != nil {
		return e.err.Error()
	}
	return "internal error"
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Kind() Kind { return e.kind }

func Validation(msg string) *Error { return &Error{kind: KindValidation, msg: msg} }
func NotFound(msg string) *Error   { return &Error{kind: KindNotFound, msg: msg} }
func Conflict(msg string) *Error   { return &Error{kind: KindConflict, msg: msg} }
func Upload(msg string) *Error     { return &Error{kind: KindUpload, msg: msg} }

func Unauthorized(msg string) *Error { return &Error{kind: KindUnauthorized, msg: msg} }

// Internal wraps an unexpected failure. The original error stays
// reachable via Unwrap but must not be shown to clients.
func Internal(err error) *Error { return &Error{kind: KindInternal, err: err} }

// KindOf classifies any error; non-taxonomy errors count as internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindInternal
}
