package domain

// ErrorKind classifies a failure for the HTTP boundary. Every error that
// crosses out of the core carries exactly one kind; the API layer maps kinds
// to status codes in a single place.
type ErrorKind string

const (
	KindAuth       ErrorKind = "auth"       // identity could not be established
	KindAuthz      ErrorKind = "authz"      // identity established, role not permitted
	KindValidation ErrorKind = "validation" // malformed caller input
	KindNotFound   ErrorKind = "not_found"
	KindConflict   ErrorKind = "conflict"
	KindInternal   ErrorKind = "internal"
)

// Error is the typed failure surfaced to the request boundary.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// Is matches two *Error values by kind, so call sites can write
// errors.Is(err, domain.ErrNotFound()) style checks against a prototype.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func NewAuthError(msg string) *Error {
	return &Error{Kind: KindAuth, Message: msg}
}

func NewAuthzError(msg string) *Error {
	return &Error{Kind: KindAuthz, Message: msg}
}

func NewValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func NewNotFoundError(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func NewConflictError(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// NewInternalError wraps an unexpected failure. The wrapped cause is for logs
// only; the API layer renders a generic message for this kind.
func NewInternalError(msg string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: msg, cause: cause}
}

// IsKind reports whether err is a domain *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Kind == kind
}
