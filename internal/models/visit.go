// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

package models

import "time"

// CollectionVisits is the MongoDB collection holding visits.
const CollectionVisits = "visita"

// Visit records one user looking at another user's map.
//
// Timestamp is assigned by the server when the visit is created and is always
// rendered as RFC 3339 with the offset of the configured zone.
type Visit struct {
	ID               string  `json:"_id" bson:"_id,omitempty" example:"65a1b2c3d4e5f60718293a4c"`
	UsuarioVisitado  *string `json:"usuarioVisitado,omitempty" bson:"usuarioVisitado,omitempty" example:"ana@example.com"`
	UsuarioVisitante *string `json:"usuarioVisitante,omitempty" bson:"usuarioVisitante,omitempty" example:"luis@example.com"`
	OauthToken       *string `json:"oauthToken,omitempty" bson:"oauthToken,omitempty"`
	Timestamp        string  `json:"timestamp,omitempty" bson:"timestamp,omitempty" example:"2026-10-14T18:30:00+02:00"`
}

// VisitCreate is the POST /visitas body. A timestamp sent by the client is
// ignored; the handler sets Timestamp before storing.
type VisitCreate struct {
	UsuarioVisitado  *string   `json:"usuarioVisitado" bson:"usuarioVisitado,omitempty"`
	UsuarioVisitante *string   `json:"usuarioVisitante" bson:"usuarioVisitante,omitempty"`
	OauthToken       *string   `json:"oauthToken" bson:"oauthToken,omitempty"`
	Timestamp        time.Time `json:"-" bson:"timestamp" swaggerignore:"true"`
}

// VisitUpdate is the PUT /visitas/{id} body. The timestamp cannot be changed.
type VisitUpdate struct {
	UsuarioVisitado  *string `json:"usuarioVisitado" bson:"usuarioVisitado,omitempty"`
	UsuarioVisitante *string `json:"usuarioVisitante" bson:"usuarioVisitante,omitempty"`
	OauthToken       *string `json:"oauthToken" bson:"oauthToken,omitempty"`
}

// IsEmpty reports whether the update names no field.
func (u VisitUpdate) IsEmpty() bool {
	return u.UsuarioVisitado == nil && u.UsuarioVisitante == nil && u.OauthToken == nil
}
