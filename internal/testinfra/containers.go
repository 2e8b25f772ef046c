// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

//go:build integration

package testinfra

import (
	"context"
	"io"
	"os/exec"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
)

// maxLogTail bounds how much container output a failed test prints.
const maxLogTail = 8 << 10

// dockerAvailable runs `docker info` once per test binary.
var dockerAvailable = sync.OnceValue(func() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return exec.CommandContext(ctx, "docker", "info").Run() == nil
})

// IsDockerAvailable reports whether a Docker daemon answers.
func IsDockerAvailable() bool {
	return dockerAvailable()
}

// SkipIfNoDocker skips container tests under -short or without Docker.
func SkipIfNoDocker(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("container test skipped in -short mode")
	}
	if !IsDockerAvailable() {
		t.Skip("container test skipped: Docker not available")
	}
}

// CleanupContainer terminates c. When the test failed, the tail of the
// container log is printed first. Termination errors are logged, not fatal.
func CleanupContainer(t *testing.T, ctx context.Context, c testcontainers.Container) {
	t.Helper()
	if c == nil {
		return
	}

	if t.Failed() {
		dumpLogs(t, ctx, c)
	}

	termCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := c.Terminate(termCtx); err != nil {
		t.Logf("terminate container: %v", err)
	}
}

func dumpLogs(t *testing.T, ctx context.Context, c testcontainers.Container) {
	t.Helper()
	rc, err := c.Logs(ctx)
	if err != nil {
		t.Logf("read container logs: %v", err)
		return
	}
	defer rc.Close()

	out, err := io.ReadAll(rc)
	if err != nil {
		t.Logf("read container logs: %v", err)
	}
	if len(out) > maxLogTail {
		out = out[len(out)-maxLogTail:]
	}
	t.Logf("container logs:\n%s", out)
}
