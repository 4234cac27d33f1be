package errors

import (
	"errors"
	"fmt"
)

const (
	STAGE_CONFIG         = "config"
	STAGE_BEFORE_REQUEST = "before-request"
	STAGE_REQUEST        = "request"
	STAGE_AFTER_REQUEST  = "after-request"

	TYPE_UNKNOWN        = "unknown"
	TYPE_INVALID_CONFIG = "invalid-config"
	TYPE_CANCELLED      = "cancelled"
	TYPE_JSON_PARSE     = "json"
	TYPE_REQUEST_PREP   = "request-prep"
	TYPE_IO             = "io"
	TYPE_HTTP_STATUS    = "not-ok-http-status"
	TYPE_INVALID_DATA   = "invalid-data"
)

// ApiError is returned by every failing operation of the CRPT client.
// Stage tells where in the request lifecycle the failure happened,
// Type tells what kind of failure it was.
type ApiError struct {
	Stage          string
	Type           string
	SourceErr      error
	Body           []byte
	HttpStatusCode int

	// CrptCode holds the machine-readable error code from the CRPT
	// error response body, when one could be parsed.
	CrptCode string
}

var _ error = &ApiError{}

func (e *ApiError) Error() string {
	var err string
	if e.SourceErr != nil {
		err = e.SourceErr.Error()
	} else {
		err = string(e.Body)
	}
	return fmt.Sprintf(
		"http request to CRPT failed during '%s' stage with error type '%s', httpStatus: '%d'; original err: %v",
		e.Stage, e.Type, e.HttpStatusCode, err,
	)
}

// Unwrap exposes the source error so that callers can use
// errors.Is(err, context.Canceled) and friends.
func (e *ApiError) Unwrap() error {
	return e.SourceErr
}

// Is method is required by errors.Is() to properly distinguish between
// different types -vs- same pointer to the same type.
// Without it, errors.Is(err, &ApiError{}) returns false:
// ok := errors.Is(errors.Join(&crpt_errors.ApiError{}), &crpt_errors.ApiError{})
// ^ would be false
func (e *ApiError) Is(other error) bool {
	var err *ApiError
	return errors.As(other, &err) && err != nil
}
