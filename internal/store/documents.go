// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

package store

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/tomtom215/mimapa/internal/logging"
	"github.com/tomtom215/mimapa/internal/store/objectid"
	"github.com/tomtom215/mimapa/internal/store/query"
)

// Count returns how many documents match filter. A nil filter matches all.
func (g *Gateway) Count(ctx context.Context, collection string, filter bson.D) (int64, error) {
	if filter == nil {
		filter = bson.D{}
	}

	var n int64
	err := g.run(ctx, "count", collection, func(ctx context.Context) error {
		coll, err := g.collection(ctx, collection)
		if err != nil {
			return err
		}
		n, err = coll.CountDocuments(ctx, filter)
		return err
	})
	if err != nil {
		return 0, wrap("count", collection, err)
	}
	return n, nil
}

// List runs spec and returns normalized documents, never nil. Clauses apply
// in the order filter, sort, limit, skip; a caller paging through results
// must supply a sort for the pages to be stable.
func (g *Gateway) List(ctx context.Context, collection string, spec query.Spec, hasTimestamp bool) ([]Document, error) {
	opts := options.Find()
	if spec.Projection != nil {
		opts.SetProjection(spec.Projection)
	}
	if len(spec.Sort) > 0 {
		opts.SetSort(spec.Sort)
	}
	if spec.Limit > 0 {
		opts.SetLimit(spec.Limit)
	}
	if spec.Skip > 0 {
		opts.SetSkip(spec.Skip)
	}

	logging.Ctx(ctx).Debug().
		Str("collection", collection).
		Interface("filter", spec.FilterOrEmpty()).
		Int64("skip", spec.Skip).
		Int64("limit", spec.Limit).
		Msg("List query")

	docs := make([]Document, 0)
	err := g.run(ctx, "find", collection, func(ctx context.Context) error {
		coll, err := g.collection(ctx, collection)
		if err != nil {
			return err
		}
		cur, err := coll.Find(ctx, spec.FilterOrEmpty(), opts)
		if err != nil {
			return err
		}
		return cur.All(ctx, &docs)
	})
	if err != nil {
		return nil, wrap("find", collection, err)
	}

	for _, d := range docs {
		g.normalize(d, hasTimestamp)
	}
	return docs, nil
}

// Create inserts doc and returns its id. On success doc is updated in place:
// _id becomes the hex string and, with hasTimestamp, the timestamp becomes
// ISO-8601, so the caller can echo it back. On failure doc is left as it was.
func (g *Gateway) Create(ctx context.Context, collection string, doc Document, hasTimestamp bool) (string, error) {
	if doc == nil {
		doc = Document{}
	}
	_, hasID := doc[FieldID]
	if !hasID {
		doc[FieldID] = bson.NewObjectID()
	}

	err := g.run(ctx, "insert", collection, func(ctx context.Context) error {
		coll, err := g.collection(ctx, collection)
		if err != nil {
			return err
		}
		_, err = coll.InsertOne(ctx, doc)
		return err
	})
	if err != nil {
		if !hasID {
			delete(doc, FieldID)
		}
		return "", wrap("insert", collection, err)
	}

	g.normalize(doc, hasTimestamp)
	id, _ := doc[FieldID].(string)
	logging.Ctx(ctx).Info().Str("collection", collection).Str("id", id).Msg("Document created")
	return id, nil
}

// ReadByID fetches one document. An undecodable id fails with ErrInvalidID
// before any round trip; a valid id with no match returns found == false and
// no error.
func (g *Gateway) ReadByID(ctx context.Context, collection, id string, projection bson.D, hasTimestamp bool) (doc Document, found bool, err error) {
	oid, err := objectid.Decode(id)
	if err != nil {
		return nil, false, err
	}

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	err = g.run(ctx, "find_one", collection, func(ctx context.Context) error {
		coll, err := g.collection(ctx, collection)
		if err != nil {
			return err
		}
		return coll.FindOne(ctx, bson.D{{Key: FieldID, Value: oid}}, opts).Decode(&doc)
	})
	if errors.Is(err, mongo.ErrNoDocuments) {
		logging.Ctx(ctx).Warn().Str("collection", collection).Str("id", id).Msg("Document not found")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, wrap("find_one", collection, err)
	}

	g.normalize(doc, hasTimestamp)
	return doc, true, nil
}

// UpdateByID sets only the given fields and returns the document as it is
// after the update. No match returns found == false and no error. An empty
// field set fails with ErrNoFields without touching the store.
func (g *Gateway) UpdateByID(ctx context.Context, collection, id string, fields Document, hasTimestamp bool) (doc Document, found bool, err error) {
	oid, err := objectid.Decode(id)
	if err != nil {
		return nil, false, err
	}
	set := settableFields(fields)
	if len(set) == 0 {
		return nil, false, ErrNoFields
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = g.run(ctx, "update", collection, func(ctx context.Context) error {
		coll, err := g.collection(ctx, collection)
		if err != nil {
			return err
		}
		return coll.FindOneAndUpdate(ctx,
			bson.D{{Key: FieldID, Value: oid}},
			bson.D{{Key: "$set", Value: set}},
			opts,
		).Decode(&doc)
	})
	if errors.Is(err, mongo.ErrNoDocuments) {
		logging.Ctx(ctx).Warn().Str("collection", collection).Str("id", id).Msg("No document to update")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, wrap("update", collection, err)
	}

	g.normalize(doc, hasTimestamp)
	doc[FieldID] = objectid.Encode(oid)
	logging.Ctx(ctx).Info().Str("collection", collection).Str("id", id).Msg("Document updated")
	return doc, true, nil
}

// DeleteByID removes one document and returns how many were deleted, 0 or 1.
// A missing document is not an error.
func (g *Gateway) DeleteByID(ctx context.Context, collection, id string) (int64, error) {
	oid, err := objectid.Decode(id)
	if err != nil {
		return 0, err
	}

	var deleted int64
	err = g.run(ctx, "delete", collection, func(ctx context.Context) error {
		coll, err := g.collection(ctx, collection)
		if err != nil {
			return err
		}
		res, err := coll.DeleteOne(ctx, bson.D{{Key: FieldID, Value: oid}})
		if err != nil {
			return err
		}
		deleted = res.DeletedCount
		return nil
	})
	if err != nil {
		return 0, wrap("delete", collection, err)
	}

	level := zerolog.InfoLevel
	if deleted == 0 {
		level = zerolog.WarnLevel
	}
	logging.Ctx(ctx).WithLevel(level).Str("collection", collection).Str("id", id).Int64("deleted", deleted).Msg("Delete by id")
	return deleted, nil
}

// settableFields drops nil values and the immutable _id.
func settableFields(fields Document) bson.D {
	set := make(bson.D, 0, len(fields))
	for k, v := range fields {
		if k == FieldID || v == nil {
			continue
		}
		set = append(set, bson.E{Key: k, Value: v})
	}
	sortElements(set)
	return set
}
