// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

// Package docs holds the OpenAPI document served at /swagger/doc.json.
// Regenerate with: swag init -g cmd/server/docs.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/mimapa/issues"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.HealthResponse"}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "description": "Returns 503 while MongoDB is unreachable.",
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/models.HealthResponse"}}
                }
            }
        },
        "/marcadores": {
            "get": {
                "description": "Returns the markers matching the filters. X-Total-Count carries the number of matches ignoring offset and limit.",
                "produces": ["application/json"],
                "tags": ["Marcadores"],
                "summary": "List markers",
                "parameters": [
                    {"type": "string", "description": "Creator identifier, exact match", "name": "creador", "in": "query"},
                    {"type": "string", "description": "Place name, case-insensitive substring", "name": "lugar", "in": "query"},
                    {"type": "string", "description": "Comma-separated fields to return", "name": "fields", "in": "query"},
                    {"type": "string", "description": "Comma-separated sort fields, prefix - for descending", "name": "sort", "in": "query"},
                    {"type": "integer", "default": 0, "description": "Results to skip", "name": "offset", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Maximum results, 0 for all", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Marker"}},
                        "headers": {"X-Total-Count": {"type": "integer", "description": "Total matching markers"}}
                    },
                    "406": {"description": "Not Acceptable", "schema": {"$ref": "#/definitions/models.DetailResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/models.DetailResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.DetailResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Marcadores"],
                "summary": "Create a marker",
                "parameters": [
                    {"description": "Marker", "name": "marker", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.MarkerCreate"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Marker"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.DetailResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/models.DetailResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.DetailResponse"}}
                }
            }
        },
        "/marcadores/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Marcadores"],
                "summary": "Get a marker",
                "parameters": [
                    {"type": "string", "description": "Marker ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Marker"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.DetailResponse"}},
                    "406": {"description": "Not Acceptable", "schema": {"$ref": "#/definitions/models.DetailResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.DetailResponse"}}
                }
            },
            "put": {
                "description": "Only non-null fields are changed. A body without any field is rejected with 422.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Marcadores"],
                "summary": "Update a marker",
                "parameters": [
                    {"type": "string", "description": "Marker ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "marker", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.MarkerUpdate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.UpdateResponse-models_Marker"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.DetailResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.DetailResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/models.DetailResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/models.DetailResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.DetailResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Marcadores"],
                "summary": "Delete a marker",
                "parameters": [
                    {"type": "string", "description": "Marker ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.DeleteResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.DetailResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.DetailResponse"}}
                }
            }
        },
        "/visitas": {
            "get": {
                "description": "Returns the visits matching the filters. X-Total-Count carries the number of matches ignoring offset and limit.",
                "produces": ["application/json"],
                "tags": ["Visitas"],
                "summary": "List visits",
                "parameters": [
                    {"type": "string", "description": "Visited user identifier, exact match", "name": "usuarioVisitado", "in": "query"},
                    {"type": "string", "description": "Visiting user identifier, exact match", "name": "usuarioVisitante", "in": "query"},
                    {"type": "string", "description": "Comma-separated fields to return", "name": "fields", "in": "query"},
                    {"type": "string", "description": "Comma-separated sort fields, prefix - for descending", "name": "sort", "in": "query"},
                    {"type": "integer", "default": 0, "description": "Results to skip", "name": "offset", "in": "query"},
                    {"type": "integer", "default": 30, "description": "Maximum results, 0 for all", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Visit"}},
                        "headers": {"X-Total-Count": {"type": "integer", "description": "Total matching visits"}}
                    },
                    "406": {"description": "Not Acceptable", "schema": {"$ref": "#/definitions/models.DetailResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/models.DetailResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.DetailResponse"}}
                }
            },
            "post": {
                "description": "The timestamp is assigned by the server; a client-supplied one is ignored.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Visitas"],
                "summary": "Create a visit",
                "parameters": [
                    {"description": "Visit", "name": "visit", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.VisitCreate"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Visit"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.DetailResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/models.DetailResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.DetailResponse"}}
                }
            }
        },
        "/visitas/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Visitas"],
                "summary": "Get a visit",
                "parameters": [
                    {"type": "string", "description": "Visit ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Visit"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.DetailResponse"}},
                    "406": {"description": "Not Acceptable", "schema": {"$ref": "#/definitions/models.DetailResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.DetailResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Visitas"],
                "summary": "Update a visit",
                "parameters": [
                    {"type": "string", "description": "Visit ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "visit", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.VisitUpdate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.UpdateResponse-models_Visit"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.DetailResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.DetailResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/models.DetailResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/models.DetailResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.DetailResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Visitas"],
                "summary": "Delete a visit",
                "parameters": [
                    {"type": "string", "description": "Visit ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.DeleteResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.DetailResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.DetailResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.DeleteResponse": {
            "type": "object",
            "properties": {"details": {"type": "string"}}
        },
        "models.DetailResponse": {
            "type": "object",
            "properties": {"detail": {"type": "string"}}
        },
        "models.HealthResponse": {
            "type": "object",
            "properties": {"detail": {"type": "string"}, "status": {"type": "string"}}
        },
        "models.Marker": {
            "type": "object",
            "properties": {
                "creador": {"type": "string", "example": "ana@example.com"},
                "_id": {"type": "string", "example": "65a1b2c3d4e5f60718293a4b"},
                "imagen": {"type": "string", "example": "https://example.com/sol.jpg"},
                "lat": {"type": "number", "example": 40.4168},
                "lon": {"type": "number", "example": -3.7038},
                "lugar": {"type": "string", "example": "Puerta del Sol"}
            }
        },
        "models.MarkerCreate": {
            "type": "object",
            "properties": {
                "creador": {"type": "string"},
                "imagen": {"type": "string", "maxLength": 2048},
                "lat": {"type": "number"},
                "lon": {"type": "number"},
                "lugar": {"type": "string"}
            }
        },
        "models.MarkerUpdate": {
            "type": "object",
            "properties": {
                "creador": {"type": "string"},
                "imagen": {"type": "string", "maxLength": 2048},
                "lat": {"type": "number"},
                "lon": {"type": "number"},
                "lugar": {"type": "string"}
            }
        },
        "models.UpdateResponse-models_Marker": {
            "type": "object",
            "properties": {"detail": {"type": "string"}, "result": {"$ref": "#/definitions/models.Marker"}}
        },
        "models.UpdateResponse-models_Visit": {
            "type": "object",
            "properties": {"detail": {"type": "string"}, "result": {"$ref": "#/definitions/models.Visit"}}
        },
        "models.Visit": {
            "type": "object",
            "properties": {
                "_id": {"type": "string", "example": "65a1b2c3d4e5f60718293a4c"},
                "oauthToken": {"type": "string"},
                "timestamp": {"type": "string", "example": "2026-10-14T18:30:00+02:00"},
                "usuarioVisitado": {"type": "string", "example": "ana@example.com"},
                "usuarioVisitante": {"type": "string", "example": "luis@example.com"}
            }
        },
        "models.VisitCreate": {
            "type": "object",
            "properties": {
                "oauthToken": {"type": "string"},
                "usuarioVisitado": {"type": "string"},
                "usuarioVisitante": {"type": "string"}
            }
        },
        "models.VisitUpdate": {
            "type": "object",
            "properties": {
                "oauthToken": {"type": "string"},
                "usuarioVisitado": {"type": "string"},
                "usuarioVisitante": {"type": "string"}
            }
        }
    },
    "tags": [
        {"description": "Liveness and readiness probes", "name": "Core"},
        {"description": "Geographic markers placed on the map", "name": "Marcadores"},
        {"description": "Profile visits between users", "name": "Visitas"}
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Mi Mapa API",
	Description:      "CRUD API for map markers and profile visits stored in MongoDB.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
