// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

package store

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/tomtom215/mimapa/internal/logging"
	"github.com/tomtom215/mimapa/internal/store/objectid"
)

// PushToArray appends element to arrayField of the document with id. It
// fails with ErrNotFound when no document has that id; unlike DeleteByID, a
// miss here is an error.
func (g *Gateway) PushToArray(ctx context.Context, collection, id, arrayField string, element any) error {
	oid, err := objectid.Decode(id)
	if err != nil {
		return err
	}

	res, err := g.updateOne(ctx, "push", collection, pushFilter(oid), pushUpdate(arrayField, element))
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		logging.Ctx(ctx).Warn().Str("collection", collection).Str("id", id).Msg("No document to push an element into")
		return ErrNotFound
	}
	logging.Ctx(ctx).Info().Str("collection", collection).Str("id", id).Str("array", arrayField).Msg("Array element added")
	return nil
}

// SetArrayElement replaces the first element of arrayField matching matcher
// with value. "First" is whatever order the store holds the array in. It
// fails with ErrNotFound when no document with id holds a matching element;
// one round trip cannot tell those two cases apart.
func (g *Gateway) SetArrayElement(ctx context.Context, collection, id, arrayField string, matcher, value any) error {
	oid, err := objectid.Decode(id)
	if err != nil {
		return err
	}

	res, err := g.updateOne(ctx, "set_element", collection,
		setElementFilter(oid, arrayField, matcher),
		setElementUpdate(arrayField, value),
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		logging.Ctx(ctx).Warn().Str("collection", collection).Str("id", id).Msg("No array element to update")
		return ErrNotFound
	}
	logging.Ctx(ctx).Info().Str("collection", collection).Str("id", id).Str("array", arrayField).Msg("Array element updated")
	return nil
}

// PullFromArray removes every element of arrayField matching matcher. A
// missing document fails with ErrNotFound; a present document with nothing to
// remove fails with ErrElementNotFound, which still satisfies
// errors.Is(err, ErrNotFound).
func (g *Gateway) PullFromArray(ctx context.Context, collection, id, arrayField string, matcher any) error {
	oid, err := objectid.Decode(id)
	if err != nil {
		return err
	}

	res, err := g.updateOne(ctx, "pull", collection, pushFilter(oid), pullUpdate(arrayField, matcher))
	if err != nil {
		return err
	}
	if err := pullOutcome(res); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("collection", collection).Str("id", id).Msg("Nothing pulled from array")
		return err
	}
	logging.Ctx(ctx).Info().Str("collection", collection).Str("id", id).Str("array", arrayField).Msg("Array elements removed")
	return nil
}

func (g *Gateway) updateOne(ctx context.Context, op, collection string, filter, update bson.D) (*mongo.UpdateResult, error) {
	var res *mongo.UpdateResult
	err := g.run(ctx, op, collection, func(ctx context.Context) error {
		coll, err := g.collection(ctx, collection)
		if err != nil {
			return err
		}
		res, err = coll.UpdateOne(ctx, filter, update)
		return err
	})
	if err != nil {
		return nil, wrap(op, collection, err)
	}
	return res, nil
}

func pushFilter(oid bson.ObjectID) bson.D {
	return bson.D{{Key: FieldID, Value: oid}}
}

func pushUpdate(arrayField string, element any) bson.D {
	return bson.D{{Key: "$push", Value: bson.D{{Key: arrayField, Value: element}}}}
}

// setElementFilter pairs the id with the element matcher so the positional
// operator in setElementUpdate knows which element matched.
func setElementFilter(oid bson.ObjectID, arrayField string, matcher any) bson.D {
	return bson.D{
		{Key: FieldID, Value: oid},
		{Key: arrayField, Value: matcher},
	}
}

func setElementUpdate(arrayField string, value any) bson.D {
	return bson.D{{Key: "$set", Value: bson.D{{Key: arrayField + ".$", Value: value}}}}
}

func pullUpdate(arrayField string, matcher any) bson.D {
	return bson.D{{Key: "$pull", Value: bson.D{{Key: arrayField, Value: matcher}}}}
}

func pullOutcome(res *mongo.UpdateResult) error {
	switch {
	case res.MatchedCount == 0:
		return ErrNotFound
	case res.ModifiedCount == 0:
		return ErrElementNotFound
	default:
		return nil
	}
}
