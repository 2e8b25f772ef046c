// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

// Package validation validates request bodies with go-playground/validator v10.
//
// A single validator instance is shared by all handlers; it caches struct
// metadata, so building one per request would be wasteful. Rules live in the
// `validate` struct tags of the models package:
//
//	type MarkerCreate struct {
//	    Lat     *float64 `json:"lat" validate:"omitempty,latitude"`
//	    Imagen  *string  `json:"imagen" validate:"omitempty,max=2048"`
//	}
//
// Failures are returned as *RequestValidationError. Its Error method yields
// the Spanish message sent to clients, naming fields by their JSON names:
//
//	lat debe ser una latitud válida (-90 a 90); imagen debe tener como máximo 2048 caracteres
package validation
