package store

import "github.com/google/uuid"

// IDSource hands out task ids. Implementations must never repeat an id.
type IDSource interface {
	NewID() string
}

// IDSourceFunc adapts a function to IDSource.
type IDSourceFunc func() string

func (f IDSourceFunc) NewID() string {
	return f()
}

// UUIDSource generates time-ordered UUIDv7 ids, falling back to a random
// UUIDv4 if the v7 generator fails.
type UUIDSource struct{}

func (UUIDSource) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
