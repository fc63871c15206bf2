// Package handlers defines HTTP-layer error codes used across all API
// endpoints.
//
// The codes are the machine-readable values carried in the "error" field of
// every failure response. Generic codes mirror common HTTP status
// semantics; the submission-specific ones (invalid_type, missing_fields,
// save_error) are the stable contract the site front-end branches on.
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeNotFound         = "not_found"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeInternal         = "internal_error"

	// Submission-specific:
	ErrCodeInvalidType   = "invalid_type"
	ErrCodeMissingFields = "missing_fields"
	ErrCodeSaveError     = "save_error"
	ErrCodeListFailed    = "list_failed"
)
