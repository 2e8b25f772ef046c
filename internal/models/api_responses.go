// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

package models

// DetailResponse carries a human readable message. Every error response uses
// it, as do a few success responses.
//
//	{"detail": "Marcador con ID 65a1b2c3d4e5f60718293a4b no encontrado"}
type DetailResponse struct {
	Detail string `json:"detail" example:"Marcador con ID 65a1b2c3d4e5f60718293a4b no encontrado"`
}

// UpdateResponse is returned by a successful PUT: a confirmation and the
// document as stored after the update.
type UpdateResponse[T any] struct {
	Detail string `json:"detail" example:"El marcador se ha editado correctamente"`
	Result T      `json:"result"`
}

// DeleteResponse confirms a deletion. The key is "details", plural, unlike
// the error body.
type DeleteResponse struct {
	Details string `json:"details" example:"El marcador se ha eliminado correctamente"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Detail string `json:"detail,omitempty"`
}
