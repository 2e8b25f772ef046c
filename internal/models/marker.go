// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

package models

// CollectionMarkers is the MongoDB collection holding markers.
const CollectionMarkers = "marcador"

// Marker is a named geographic point placed on a user's map.
//
// Every field except ID is a pointer so that a projected read (?fields=lugar)
// leaves the rest absent instead of zero valued. The MongoDB _id travels as
// its hex string form.
type Marker struct {
	ID      string   `json:"_id" bson:"_id,omitempty" example:"65a1b2c3d4e5f60718293a4b"`
	Lugar   *string  `json:"lugar,omitempty" bson:"lugar,omitempty" example:"Puerta del Sol"`
	Lat     *float64 `json:"lat,omitempty" bson:"lat,omitempty" example:"40.4168"`
	Lon     *float64 `json:"lon,omitempty" bson:"lon,omitempty" example:"-3.7038"`
	Creador *string  `json:"creador,omitempty" bson:"creador,omitempty" example:"ana@example.com"`
	Imagen  *string  `json:"imagen,omitempty" bson:"imagen,omitempty" example:"https://example.com/sol.jpg"`
}

// MarkerCreate is the POST /marcadores body. All fields are optional.
type MarkerCreate struct {
	Lugar   *string  `json:"lugar" bson:"lugar,omitempty"`
	Lat     *float64 `json:"lat" bson:"lat,omitempty" validate:"omitempty,latitude"`
	Lon     *float64 `json:"lon" bson:"lon,omitempty" validate:"omitempty,longitude"`
	Creador *string  `json:"creador" bson:"creador,omitempty"`
	Imagen  *string  `json:"imagen" bson:"imagen,omitempty" validate:"omitempty,max=2048"`
}

// MarkerUpdate is the PUT /marcadores/{id} body. Null or missing fields are
// left untouched.
type MarkerUpdate MarkerCreate

// IsEmpty reports whether the update names no field.
func (u MarkerUpdate) IsEmpty() bool {
	return u.Lugar == nil && u.Lat == nil && u.Lon == nil && u.Creador == nil && u.Imagen == nil
}
