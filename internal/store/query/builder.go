// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

package query

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Builder accumulates filter conditions. All conditions must match.
//
//	f := query.NewBuilder().
//		AddEquals("creador", r.URL.Query().Get("creador")).
//		AddPattern("lugar", r.URL.Query().Get("lugar")).
//		Filter()
//	// {creador: "a@b.com", lugar: {$regex: "parque", $options: "i"}}
type Builder struct {
	conds bson.D
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{conds: bson.D{}}
}

// AddEquals adds an exact match on field. Empty values are skipped, which is
// how an absent query parameter means "no constraint".
func (b *Builder) AddEquals(field, value string) *Builder {
	if field == "" || value == "" {
		return b
	}
	b.conds = append(b.conds, bson.E{Key: field, Value: value})
	return b
}

// AddPattern adds a case-insensitive substring match on field. text is matched
// literally; regex metacharacters in it have no special meaning.
func (b *Builder) AddPattern(field, text string) *Builder {
	if field == "" || text == "" {
		return b
	}
	b.conds = append(b.conds, bson.E{Key: field, Value: bson.D{
		{Key: "$regex", Value: regexp.QuoteMeta(text)},
		{Key: "$options", Value: "i"},
	}})
	return b
}

// IsEmpty reports whether no conditions were added.
func (b *Builder) IsEmpty() bool {
	return len(b.conds) == 0
}

// Count returns the number of conditions.
func (b *Builder) Count() int {
	return len(b.conds)
}

// Filter returns the conjunctive filter document. Conditions on distinct
// fields stay a flat document; if a field repeats, the conditions are wrapped
// in $and so the later one does not silently replace the earlier one.
func (b *Builder) Filter() bson.D {
	seen := make(map[string]struct{}, len(b.conds))
	repeated := false
	for _, c := range b.conds {
		if _, dup := seen[c.Key]; dup {
			repeated = true
			break
		}
		seen[c.Key] = struct{}{}
	}

	if !repeated {
		out := make(bson.D, len(b.conds))
		copy(out, b.conds)
		return out
	}

	clauses := make(bson.A, 0, len(b.conds))
	for _, c := range b.conds {
		clauses = append(clauses, bson.D{c})
	}
	return bson.D{{Key: "$and", Value: clauses}}
}

// BuildProjection turns "lugar,lat" into an inclusion projection. Empty input
// returns nil, meaning every field. Field names are not checked.
func BuildProjection(fieldsCSV string) bson.D {
	fields := splitCSV(fieldsCSV)
	if len(fields) == 0 {
		return nil
	}
	proj := make(bson.D, 0, len(fields))
	for _, f := range fields {
		proj = append(proj, bson.E{Key: f, Value: 1})
	}
	return proj
}

// BuildSort turns "creador,-lugar" into [{creador 1} {lugar -1}]. Empty input
// returns nil, leaving order to the store.
func BuildSort(sortCSV string) bson.D {
	fields := splitCSV(sortCSV)
	if len(fields) == 0 {
		return nil
	}
	sort := make(bson.D, 0, len(fields))
	for _, f := range fields {
		dir := 1
		if strings.HasPrefix(f, "-") {
			dir = -1
			f = strings.TrimSpace(f[1:])
		}
		if f == "" {
			continue
		}
		sort = append(sort, bson.E{Key: f, Value: dir})
	}
	if len(sort) == 0 {
		return nil
	}
	return sort
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
