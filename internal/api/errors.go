// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

package api

import "errors"

// Request errors. Their messages are sent to clients.
var (
	ErrEmptyBody    = errors.New("el cuerpo de la petición está vacío")
	ErrBodyTooLarge = errors.New("el cuerpo de la petición es demasiado grande")
)

// Fixed response details shared by both resources.
const (
	detailNotAcceptable      = "La API solo produce application/json"
	detailUnsupportedMedia   = "El cuerpo debe enviarse como application/json"
	detailInvalidQueryInt    = "El parámetro %s debe ser un número entero"
	detailFormatError        = "Error de formato: %v"
	detailNotFoundRoute      = "Not Found"
	detailMethodNotAllowed   = "Method Not Allowed"
	detailTooManyRequests    = "Demasiadas peticiones, inténtalo más tarde"
	detailServiceUnavailable = "La base de datos no está disponible"
)

// resourceMessages holds the user-facing texts of one resource.
type resourceMessages struct {
	notFound       string // takes the id
	noFields       string
	updateNotFound string
	updated        string
	deleteNotFound string
	deleted        string

	listFailed   string
	getFailed    string
	createFailed string
	updateFailed string
	deleteFailed string
}

var markerMessages = resourceMessages{
	notFound:       "Marcador con ID %s no encontrado",
	noFields:       "No has especificado ningún campo del marcador",
	updateNotFound: "No se ha encontrado un marcador con ese ID. No se ha editado nada",
	updated:        "El marcador se ha editado correctamente",
	deleteNotFound: "No se ha encontrado un marcador con ese ID. No se ha borrado nada.",
	deleted:        "El marcador se ha eliminado correctamente",

	listFailed:   "Error al buscar los marcadores",
	getFailed:    "Error al obtener el marcador",
	createFailed: "Error al crear el marcador",
	updateFailed: "Error al actualizar el marcador",
	deleteFailed: "Error al eliminar el marcador",
}

var visitMessages = resourceMessages{
	notFound:       "Visita con ID %s no encontrada",
	noFields:       "No has especificado ningún campo de la visita",
	updateNotFound: "No se ha encontrado una visita con ese ID. No se ha editado nada",
	updated:        "La visita se ha editado correctamente",
	deleteNotFound: "No se ha encontrado una visita con ese ID. No se ha borrado nada.",
	deleted:        "La visita se ha eliminado correctamente",

	listFailed:   "Error al buscar las visitas",
	getFailed:    "Error al obtener la visita",
	createFailed: "Error al crear la visita",
	updateFailed: "Error al actualizar la visita",
	deleteFailed: "Error al eliminar la visita",
}
