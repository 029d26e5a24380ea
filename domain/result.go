package domain

import "net/http"

// ResultKind classifies an ActionResult for callers that branch on failure
// class rather than raw status code.
type ResultKind int

const (
	KindSuccess ResultKind = iota
	KindValidation
	KindAuth
	KindNotFound
	KindRemote
	KindNetwork
)

// NetworkFailureMessage is the fixed message returned whenever the backend
// could not be reached at all.
const NetworkFailureMessage = "Internal server error"

// ActionResult is the uniform return value of every remote action adapter.
// Status 200 implies Data is the raw backend payload and Errors is empty;
// any other status carries a Message describing the failure and optional
// field-level Errors. Adapters never return a Go error to their callers.
type ActionResult struct {
	Status  int                 `json:"status"`
	Message string              `json:"message"`
	Data    any                 `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// Success builds the 200 result carrying the backend payload unmodified.
func Success(message string, data any) ActionResult {
	return ActionResult{Status: http.StatusOK, Message: message, Data: data}
}

// ValidationFailure builds the 422 result for form-level validation errors.
// No HTTP call may have been issued when this is returned.
func ValidationFailure(errs map[string][]string) ActionResult {
	return ActionResult{
		Status:  http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  errs,
	}
}

// AuthFailure builds a 401/403 result.
func AuthFailure(status int, message string) ActionResult {
	return ActionResult{Status: status, Message: message}
}

// NotFoundFailure builds the 404 result.
func NotFoundFailure(message string) ActionResult {
	return ActionResult{Status: http.StatusNotFound, Message: message}
}

// RemoteFailure builds a result for any other non-2xx backend response.
func RemoteFailure(status int, message string, errs map[string][]string) ActionResult {
	return ActionResult{Status: status, Message: message, Errors: errs}
}

// NetworkFailure builds the result used when no HTTP response was received.
// The status is coerced to 500 and the message is fixed, so the UI never
// sees a raw transport error.
func NetworkFailure(detail any) ActionResult {
	return ActionResult{
		Status:  http.StatusInternalServerError,
		Message: NetworkFailureMessage,
		Data:    detail,
	}
}

// OK reports whether the result is a success.
func (r ActionResult) OK() bool { return r.Status == http.StatusOK }

// Kind maps the result onto the client-facing error taxonomy.
func (r ActionResult) Kind() ResultKind {
	switch {
	case r.Status == http.StatusOK:
		return KindSuccess
	case len(r.Errors) > 0 &&
		(r.Status == http.StatusUnprocessableEntity || r.Status == http.StatusBadRequest):
		return KindValidation
	case r.Status == http.StatusUnauthorized || r.Status == http.StatusForbidden:
		return KindAuth
	case r.Status == http.StatusNotFound:
		return KindNotFound
	case r.Message == NetworkFailureMessage && r.Status == http.StatusInternalServerError:
		return KindNetwork
	default:
		return KindRemote
	}
}
