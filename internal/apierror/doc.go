// Package apierror defines the structured error taxonomy surfaced by the
// MCP tools and classifies Google API errors into it.
package apierror
