// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

package query

import "go.mongodb.org/mongo-driver/v2/bson"

// Spec is everything a list operation needs. It is built per request and
// never stored.
type Spec struct {
	Filter     bson.D
	Projection bson.D // nil selects every field
	Sort       bson.D // nil keeps store order
	Skip       int64
	Limit      int64 // 0 means no limit
}

// NewSpec assembles a Spec from raw request values. Negative offset or limit
// are treated as 0.
func NewSpec(filter bson.D, fieldsCSV, sortCSV string, offset, limit int64) Spec {
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}
	if filter == nil {
		filter = bson.D{}
	}
	return Spec{
		Filter:     filter,
		Projection: BuildProjection(fieldsCSV),
		Sort:       BuildSort(sortCSV),
		Skip:       offset,
		Limit:      limit,
	}
}

// FilterOrEmpty never returns nil, which the driver rejects as a filter.
func (s Spec) FilterOrEmpty() bson.D {
	if s.Filter == nil {
		return bson.D{}
	}
	return s.Filter
}
