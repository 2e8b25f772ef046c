// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

// Package logging is the process-wide zerolog logger.
//
// Call Init once from main with the values loaded by internal/config:
//
//	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
//
//	logging.Info().Str("database", "mi-mapa").Msg("Connected to MongoDB")
//	logging.Ctx(r.Context()).Error().Err(err).Msg("Store failure")
//
// Ctx picks up the request ID placed in the context by the API middleware,
// so every entry written while serving a request carries request_id.
//
// NewSlogLogger feeds the suture supervisor (which logs through slog) into the
// same zerolog output.
//
// Identifiers that belong to users (emails, OAuth tokens) go through MaskEmail
// and MaskSecret before they reach a log line.
package logging
