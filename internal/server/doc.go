// Package server provides the MCP server context and its HTTP sidecars.
//
// ServerContext owns the Google Analytics Admin and Data API clients. Both
// are created lazily on first use and cached for the process lifetime, so
// the server can start before Application Default Credentials exist and
// surface credential errors per tool call instead of at startup.
//
// MetricsServer serves Prometheus metrics on a dedicated port, keeping
// operational metrics off the main MCP transport.
//
// HealthChecker provides /healthz, /readyz, and /healthz/detailed endpoints
// for Kubernetes probes when the server runs over HTTP transport.
package server
