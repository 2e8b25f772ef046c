// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func largeBody() string { return strings.Repeat(`{"lugar":"Sol"},`, 200) }

func jsonHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Length", "9999")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, largeBody())
	})
}

func TestCompression(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		acceptEncoding string
		method         string
		wantGzip       bool
	}{
		{"gzip", "gzip", http.MethodGet, true},
		{"gzip among others", "deflate, gzip;q=0.8, br", http.MethodGet, true},
		{"case insensitive", "GZIP", http.MethodGet, true},
		{"gzip refused", "gzip;q=0", http.MethodGet, false},
		{"no header", "", http.MethodGet, false},
		{"other coding", "br", http.MethodGet, false},
		{"head request", "gzip", http.MethodHead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, "/marcadores", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()
			Compression(jsonHandler(http.StatusCreated)).ServeHTTP(rec, req)

			if rec.Code != http.StatusCreated {
				t.Errorf("status = %d, want 201", rec.Code)
			}
			if got := rec.Header().Get("Vary"); got != "Accept-Encoding" {
				t.Errorf("Vary = %q", got)
			}

			gotGzip := rec.Header().Get("Content-Encoding") == "gzip"
			if gotGzip != tt.wantGzip {
				t.Fatalf("Content-Encoding gzip = %v, want %v", gotGzip, tt.wantGzip)
			}
			if !tt.wantGzip {
				return
			}

			if rec.Header().Get("Content-Length") != "" {
				t.Error("Content-Length must be dropped when compressing")
			}
			zr, err := gzip.NewReader(rec.Body)
			if err != nil {
				t.Fatalf("gzip.NewReader: %v", err)
			}
			defer zr.Close()
			body, err := io.ReadAll(zr)
			if err != nil {
				t.Fatalf("ReadAll: %v", err)
			}
			if string(body) != largeBody() {
				t.Error("decompressed body differs from the original")
			}
		})
	}
}

func TestGzipResponseWriter_ImplicitStatus(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	gz := gzip.NewWriter(rec)
	gzw := &gzipResponseWriter{Writer: gz, ResponseWriter: rec}

	if _, err := gzw.Write([]byte("hola")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	gzw.WriteHeader(http.StatusTeapot)
	_ = gz.Close()

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want the implicit 200", rec.Code)
	}
}
