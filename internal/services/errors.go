// Package services defines the business logic for the application lifecycle.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the
// handler/console layer.
package services

import "errors"

var (
	// ErrInvalidType is returned when a submission names a type other
	// than "cups" or "brand".
	ErrInvalidType = errors.New(`application type must be "cups" or "brand"`)

	// ErrMissingCupsFields is returned when a cups submission lacks any
	// of contact, city, or phone.
	ErrMissingCupsFields = errors.New("cups applications require contact, city and phone")

	// ErrMissingBrandFields is returned when a brand submission lacks any
	// of contact, phone, or size.
	ErrMissingBrandFields = errors.New("brand applications require contact, phone and size")

	// ErrInvalidStatus is returned when a status-change operation names a
	// value outside the lifecycle enum.
	ErrInvalidStatus = errors.New("unknown application status")

	// ErrApplicationNotFound indicates that the referenced application
	// does not exist.
	ErrApplicationNotFound = errors.New("application not found")
)
