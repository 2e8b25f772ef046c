// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

/*
Package models defines the resources served by the API and their request and
response bodies.

Resources:

  - Marker: a place on a user's map, stored in the "marcador" collection
  - Visit: one user visiting another user's map, stored in "visita"

Each resource has a Create body (POST) and an Update body (PUT). Update
bodies use pointer fields: a nil field is "not specified" and is left out of
the MongoDB $set. Struct tags serve three consumers:

  - json: the HTTP wire format (goccy/go-json)
  - bson: the stored document (mongo-driver)
  - validate: request validation (go-playground/validator)

Usage Example:

	import "github.com/tomtom215/mimapa/internal/models"

	lugar := "Retiro"
	upd := models.MarkerUpdate{Lugar: &lugar}
	if upd.IsEmpty() {
	    // reject with 422
	}
*/
package models
