package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"google.golang.org/api/googleapi"
)

// Kind identifies the failure category of a tool call. Every error that
// reaches the tool dispatcher boundary carries exactly one kind.
type Kind string

const (
	// KindAuthentication means no usable Application Default Credentials
	// were found, or the credentials were rejected. Never retried.
	KindAuthentication Kind = "AUTHENTICATION_ERROR"

	// KindInvalidArgument means the tool arguments were malformed or
	// contradictory. The caller must correct the request.
	KindInvalidArgument Kind = "INVALID_ARGUMENT"

	// KindAmbiguousReference means a free-text property reference matched
	// two or more candidates.
	KindAmbiguousReference Kind = "AMBIGUOUS_REFERENCE"

	// KindNotFound means an identifier could not be resolved.
	KindNotFound Kind = "NOT_FOUND"

	// KindReportAPI means the remote API rejected a built request, for
	// example an incompatible dimension/metric pairing. The remote message
	// is passed through verbatim.
	KindReportAPI Kind = "REPORT_API_ERROR"

	// KindQuotaExceeded means the remote API rate-limited the call. The
	// error carries a retry-after hint when the API provided one; this
	// layer never retries silently.
	KindQuotaExceeded Kind = "QUOTA_EXCEEDED"
)

// Error is the structured kind+message pair surfaced at the dispatcher
// boundary. Candidates and RetryAfter are populated only for the kinds that
// define them.
type Error struct {
	Kind       Kind
	Message    string
	Candidates []string      // ambiguous-reference candidates, if any
	RetryAfter time.Duration // quota retry hint, zero when unknown
}

func (e *Error) Error() string {
	if len(e.Candidates) > 0 {
		return fmt.Sprintf("%s: %s (candidates: %v)", e.Kind, e.Message, e.Candidates)
	}
	if e.RetryAfter > 0 {
		return fmt.Sprintf("%s: %s (retry after %s)", e.Kind, e.Message, e.RetryAfter)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New creates an Error with the given kind and formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// InvalidArgument is shorthand for the most common validation failure.
func InvalidArgument(format string, args ...any) *Error {
	return New(KindInvalidArgument, format, args...)
}

// Ambiguous creates an ambiguous-reference error listing the candidates.
func Ambiguous(input string, candidates []string) *Error {
	return &Error{
		Kind:       KindAmbiguousReference,
		Message:    fmt.Sprintf("property reference %q matches multiple properties", input),
		Candidates: candidates,
	}
}

// NotFound creates a not-found error for an unresolvable reference.
func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, format, args...)
}

// KindOf returns the kind of err if it is (or wraps) an *Error, or an empty
// kind otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// FromGoogleAPI classifies an error returned by a generated Google API
// client into the tool-facing taxonomy. Non-API errors (transport failures,
// context cancellation) become report API errors so that callers still see
// a single structured result.
func FromGoogleAPI(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return New(KindReportAPI, "%v", err)
	}

	switch gerr.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return New(KindAuthentication, "%s", gerr.Message)
	case http.StatusNotFound:
		return NotFound("%s", gerr.Message)
	case http.StatusTooManyRequests:
		return &Error{
			Kind:       KindQuotaExceeded,
			Message:    gerr.Message,
			RetryAfter: retryAfterHint(gerr),
		}
	default:
		return New(KindReportAPI, "%s", gerr.Message)
	}
}

// retryAfterHint extracts a Retry-After duration from the response headers,
// if the API sent one. Both delta-seconds and HTTP-date forms are accepted.
func retryAfterHint(gerr *googleapi.Error) time.Duration {
	if gerr.Header == nil {
		return 0
	}
	v := gerr.Header.Get("Retry-After")
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}
