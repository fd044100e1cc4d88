// Package admin_tools registers the MCP tools backed by the Google
// Analytics Admin API: account summaries, property details, Google Ads
// links, and custom dimension/metric definitions. All tools are read-only.
package admin_tools
