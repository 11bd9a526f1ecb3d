package store

import "errors"

var (
	// ErrParentNotFound is returned when a parent entity does not exist.
	ErrParentNotFound = errors.New("parent not found")
	// ErrResourceNotFound is returned when no catalog entry holds a url.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrResourceExists is returned when a catalog entry already holds a url.
	ErrResourceExists = errors.New("resource already exists")
	// ErrUnknownKind is returned for a parent kind without tables.
	ErrUnknownKind = errors.New("unknown parent kind")
)
