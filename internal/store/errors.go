// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

package store

import (
	"context"
	"errors"
	"fmt"

	gobreaker "github.com/sony/gobreaker/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/tomtom215/mimapa/internal/store/objectid"
)

var (
	// ErrInvalidID means the id is not a hex ObjectID. Returned before any
	// store round trip.
	ErrInvalidID = objectid.ErrInvalid

	// ErrNotFound means no document (or no document and element pair)
	// matched an array mutation.
	ErrNotFound = errors.New("document not found")

	// ErrElementNotFound means the document exists but no array element
	// matched. errors.Is(err, ErrNotFound) also holds for it.
	ErrElementNotFound = fmt.Errorf("%w: no array element matched", ErrNotFound)

	// ErrNoFields rejects an update that would set nothing.
	ErrNoFields = errors.New("no fields to update")
)

// StoreError wraps a driver, network or circuit breaker failure.
type StoreError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StoreError) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("store %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// IsStoreError reports whether err is, or wraps, a *StoreError.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

func wrap(op, collection string, err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Collection: collection, Err: err}
}

// errorClass buckets an error into a low-cardinality metrics label.
func errorClass(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded), mongo.IsTimeout(err):
		return "timeout"
	case mongo.IsNetworkError(err):
		return "network"
	case mongo.IsDuplicateKeyError(err):
		return "duplicate_key"
	default:
		return "other"
	}
}

// countsAsFailure decides what the circuit breaker treats as an outage.
// Caller cancellation and ordinary "nothing matched" results are not outages.
func countsAsFailure(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, context.Canceled):
		return false
	case errors.Is(err, mongo.ErrNoDocuments):
		return false
	case mongo.IsDuplicateKeyError(err):
		return false
	default:
		return true
	}
}
