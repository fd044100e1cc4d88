// Package report_tools registers the MCP tools backed by the Google
// Analytics Data API: core and realtime reports, the reporting schema
// lookups, and the hint tools that show worked argument examples.
package report_tools
