// Package property canonicalizes user-supplied Google Analytics property
// references into properties/{id} resource names, including free-text
// display-name resolution against account summaries.
package property
