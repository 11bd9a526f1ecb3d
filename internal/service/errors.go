package service

import "errors"

var (
	// ErrInvalidKind is returned when a parent kind has no reconciliation profile.
	ErrInvalidKind = errors.New("invalid parent kind")
)
