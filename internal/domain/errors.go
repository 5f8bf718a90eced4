package domain

import "errors"

// Kind classifies a business-rule failure so the transport layer can map it
// to a stable outward signal.
type Kind int

const (
	KindNotFound Kind = iota
	KindBadRequest
	KindForbidden
	KindNotAvailable
	KindConflict
)

// Error is a typed business-rule violation. All failures produced by the
// service layer are of this type; infrastructure faults are wrapped
// separately by the repositories.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewNotFoundError reports that a referenced entity does not exist (or must
// appear not to exist to the caller).
func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NewBadRequestError reports malformed or semantically invalid input.
func NewBadRequestError(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// NewForbiddenError reports an ownership violation.
func NewForbiddenError(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// NewNotAvailableError reports that the target item is not available for
// booking.
func NewNotAvailableError(message string) *Error {
	return &Error{Kind: KindNotAvailable, Message: message}
}

// NewConflictError reports a uniqueness violation.
func NewConflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// KindOf returns the kind of a domain error, or ok=false for any other error.
func KindOf(err error) (Kind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return 0, false
}

// IsNotFound reports whether err is a domain not-found error.
func IsNotFound(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindNotFound
}

// IsBadRequest reports whether err is a domain bad-request error.
func IsBadRequest(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindBadRequest
}

// IsForbidden reports whether err is a domain forbidden error.
func IsForbidden(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindForbidden
}
