// Package admin wraps the Google Analytics Admin API for account,
// property, Google Ads link, and custom-definition lookups.
package admin
