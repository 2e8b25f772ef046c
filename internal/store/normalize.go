// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

package store

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// TimestampLayout is used for every timestamp leaving the gateway.
const TimestampLayout = time.RFC3339

// normalize rewrites doc in place for JSON callers: the ObjectID becomes hex
// and, when hasTimestamp is set, a native date-time timestamp becomes an
// ISO-8601 string in the gateway's zone. Any other timestamp value (already a
// string, or missing because of a projection) is left alone.
func (g *Gateway) normalize(doc Document, hasTimestamp bool) {
	if doc == nil {
		return
	}
	if oid, ok := doc[FieldID].(bson.ObjectID); ok {
		doc[FieldID] = oid.Hex()
	}
	if !hasTimestamp {
		return
	}
	if v, ok := doc[FieldTimestamp]; ok {
		doc[FieldTimestamp] = FormatTimestamp(v, g.loc)
	}
}

// FormatTimestamp renders time.Time and bson.DateTime values in loc using
// TimestampLayout. Other values are returned unchanged.
func FormatTimestamp(v any, loc *time.Location) any {
	if loc == nil {
		loc = time.UTC
	}
	switch t := v.(type) {
	case time.Time:
		return t.In(loc).Format(TimestampLayout)
	case *time.Time:
		if t == nil {
			return nil
		}
		return t.In(loc).Format(TimestampLayout)
	case bson.DateTime:
		return t.Time().In(loc).Format(TimestampLayout)
	default:
		return v
	}
}

func sortElements(d bson.D) {
	sort.Slice(d, func(i, j int) bool { return d[i].Key < d[j].Key })
}
