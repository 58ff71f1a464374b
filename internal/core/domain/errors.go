package domain

import "errors"

// ErrValidation is an error thrown when input is malformed or missing
var ErrValidation = errors.New("validation failed")

// ErrUnauthorized is an error thrown when credentials are missing or invalid
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden is an error thrown when the principal is not entitled to act on the resource
var ErrForbidden = errors.New("forbidden")

// ErrNotFound is an error thrown when a resource does not exist
var ErrNotFound = errors.New("not found")

// ErrConflict is an error thrown when a unique field is duplicated
var ErrConflict = errors.New("conflict")

// ErrUploadFailed is an error thrown when the media store rejects an upload or returns no reference
var ErrUploadFailed = errors.New("upload failed")

// ErrPersistenceFailed is an error thrown when a record fails to save or delete
var ErrPersistenceFailed = errors.New("persistence failed")

// ErrInternal is an error thrown on unexpected failures
var ErrInternal = errors.New("internal error")
