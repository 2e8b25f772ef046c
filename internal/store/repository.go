// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tomtom215/mimapa/internal/store/query"
)

// Repository binds one collection to the resource struct T. Documents leave
// the gateway already normalized (string _id, formatted timestamp) and are
// decoded into T through BSON, so T declares its fields with bson tags.
type Repository[T any] struct {
	gw          *Gateway
	collection  string
	timestamped bool
}

// NewRepository returns a repository over collection. timestamped marks
// collections whose documents carry a server-assigned timestamp.
func NewRepository[T any](gw *Gateway, collection string, timestamped bool) *Repository[T] {
	return &Repository[T]{gw: gw, collection: collection, timestamped: timestamped}
}

// Collection returns the collection name.
func (r *Repository[T]) Collection() string { return r.collection }

func (r *Repository[T]) Count(ctx context.Context, filter bson.D) (int64, error) {
	return r.gw.Count(ctx, r.collection, filter)
}

func (r *Repository[T]) List(ctx context.Context, spec query.Spec) ([]T, error) {
	docs, err := r.gw.List(ctx, r.collection, spec, r.timestamped)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		v, err := fromDocument[T](d)
		if err != nil {
			return nil, wrap("decode", r.collection, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Get returns the resource with id. found is false when nothing matched.
func (r *Repository[T]) Get(ctx context.Context, id string) (v T, found bool, err error) {
	doc, found, err := r.gw.ReadByID(ctx, r.collection, id, nil, r.timestamped)
	if err != nil || !found {
		return v, found, err
	}
	v, err = fromDocument[T](doc)
	if err != nil {
		return v, false, wrap("decode", r.collection, err)
	}
	return v, true, nil
}

// Create stores in, any bson-marshalable struct or Document, and returns the
// stored resource including its new id.
func (r *Repository[T]) Create(ctx context.Context, in any) (v T, err error) {
	doc, err := toDocument(in)
	if err != nil {
		return v, err
	}
	if _, err := r.gw.Create(ctx, r.collection, doc, r.timestamped); err != nil {
		return v, err
	}
	v, err = fromDocument[T](doc)
	if err != nil {
		return v, wrap("decode", r.collection, err)
	}
	return v, nil
}

// Update sets the non-empty fields of fields. Pointer fields tagged omitempty
// drop out when nil, so a partial request body maps straight onto $set.
func (r *Repository[T]) Update(ctx context.Context, id string, fields any) (v T, found bool, err error) {
	doc, err := toDocument(fields)
	if err != nil {
		return v, false, err
	}
	out, found, err := r.gw.UpdateByID(ctx, r.collection, id, doc, r.timestamped)
	if err != nil || !found {
		return v, found, err
	}
	v, err = fromDocument[T](out)
	if err != nil {
		return v, false, wrap("decode", r.collection, err)
	}
	return v, true, nil
}

func (r *Repository[T]) Delete(ctx context.Context, id string) (int64, error) {
	return r.gw.DeleteByID(ctx, r.collection, id)
}

// toDocument flattens v into a Document. A Document is passed through as is.
func toDocument(v any) (Document, error) {
	switch d := v.(type) {
	case nil:
		return Document{}, nil
	case Document:
		return d, nil
	}

	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %T: %w", v, err)
	}
	doc := Document{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("encode %T: %w", v, err)
	}
	return doc, nil
}

func fromDocument[T any](doc Document) (T, error) {
	var v T
	raw, err := bson.Marshal(doc)
	if err != nil {
		return v, err
	}
	if err := bson.Unmarshal(raw, &v); err != nil {
		return v, err
	}
	return v, nil
}
