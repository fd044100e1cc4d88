// Package cmd implements the command-line interface for analytics-mcp.
//
// This package provides the following commands:
//   - serve: Start the MCP server exposing read-only Google Analytics tools
//   - version: Display version information
//
// The serve command is the default command when no subcommand is specified.
package cmd
