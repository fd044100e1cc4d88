// Package common provides shared utilities for MCP tool implementations.
// It contains the argument coercion helpers that turn untrusted JSON tool
// arguments into typed values, and the instrumentation wrapper applied to
// every tool handler.
package common
