// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

// Package objectid converts between the 24 character hex identifiers used in
// URLs and JSON and the 12 byte MongoDB ObjectID stored in _id.
package objectid

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ErrInvalid is returned for any string that is not a 24 character hex ObjectID.
var ErrInvalid = errors.New("invalid document id")

// IsValid reports whether id decodes. It never panics.
func IsValid(id string) bool {
	_, err := bson.ObjectIDFromHex(id)
	return err == nil
}

// Decode parses a hex id. Upper case hex is accepted.
func Decode(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("%w %q", ErrInvalid, id)
	}
	return oid, nil
}

// Encode renders oid as lower case hex.
func Encode(oid bson.ObjectID) string {
	return oid.Hex()
}
