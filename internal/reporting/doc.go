// Package reporting builds Google Analytics Data API report requests from
// loosely-typed tool arguments and flattens the column-oriented responses
// into row-oriented records.
//
// The package owns the validation boundary: date ranges, field names,
// ordering, and filter expressions are checked before any network call so
// malformed input fails as an invalid-argument error instead of a remote
// rejection. Pagination over the offset-based Data API and metric type
// coercion live here as well.
package reporting
