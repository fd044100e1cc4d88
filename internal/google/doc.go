// Package google resolves Application Default Credentials for the Google
// Analytics Admin and Data APIs.
package google
