package storage

import (
	"context"
	"errors"
)

// Collection names used by the court service.
const (
	CollectionCases    = "cases"
	CollectionVerdicts = "verdicts"
)

// ErrNotFound is returned by Get when a collection has never been written.
var ErrNotFound = errors.New("collection not found")

// Store is the key-value collaborator backing the court service. Collections are
// read and written whole; there are no partial updates and no transactions.
type Store interface {
	// Get returns the raw payload of a collection, or ErrNotFound.
	Get(ctx context.Context, collection string) ([]byte, error)

	// Put replaces the entire payload of a collection.
	Put(ctx context.Context, collection string, data []byte) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
