// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

package api

import "strings"

// Router sets up HTTP routes using the Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	basePath      string
}

// NewRouter creates a router serving handler's endpoints. The resource routes
// are mounted under basePath, which must be empty or start with a slash;
// a trailing slash is dropped.
func NewRouter(handler *Handler, chiMW *ChiMiddleware, basePath string) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: chiMW,
		basePath:      strings.TrimSuffix(basePath, "/"),
	}
}

// BasePath returns the prefix of the resource routes.
func (router *Router) BasePath() string {
	return router.basePath
}
