package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidStatus indicates an unknown sale status value.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrStatusFinal indicates a transition out of a terminal sale status.
	ErrStatusFinal = errors.New("status is final")
)
