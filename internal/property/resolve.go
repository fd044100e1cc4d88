package property

import (
	"context"
	"fmt"
	"strings"

	"github.com/teemow/analytics-mcp/internal/apierror"
)

// Summary is one account's worth of property summaries, the subset of the
// Admin API account-summary response the resolver needs.
type Summary struct {
	Account     string // resource name, accounts/{id}
	DisplayName string
	Properties  []PropertySummary
}

// PropertySummary is one property under an account summary.
type PropertySummary struct {
	Property    string // resource name, properties/{id}
	DisplayName string
}

// SummaryLister provides the account-summary lookup the resolver matches
// free-text references against.
type SummaryLister interface {
	AccountSummaries(ctx context.Context) ([]Summary, error)
}

// Resolver canonicalizes property references, falling back to a free-text
// display-name match via an account-summary lookup. It holds no state of its
// own; each Resolve call performs at most one lookup.
type Resolver struct {
	lister SummaryLister
}

// NewResolver creates a Resolver backed by the given summary lister.
func NewResolver(lister SummaryLister) *Resolver {
	return &Resolver{lister: lister}
}

// Resolve canonicalizes input into a Ref. Numeric and properties/{id} forms
// resolve without any lookup. Other strings are matched case-insensitively
// as substrings of account and property display names:
//
//   - exactly one matching property resolves to it
//   - zero matches is a not-found error
//   - several matches is an ambiguous-reference error listing every
//     candidate, unless exactly one of them is an exact case-sensitive
//     display-name match, which wins the tie
func (r *Resolver) Resolve(ctx context.Context, input any) (Ref, error) {
	text, isText := input.(string)
	if ref, err := Parse(input); err == nil {
		return ref, nil
	} else if !isText || looksStructural(text) {
		// Numeric and resource-name shaped inputs never fall through to
		// name matching; a malformed properties/... string stays an error.
		return Ref{}, err
	}

	summaries, err := r.lister.AccountSummaries(ctx)
	if err != nil {
		return Ref{}, fmt.Errorf("listing account summaries: %w", err)
	}

	needle := strings.ToLower(strings.TrimSpace(text))
	var matches []candidate
	for _, account := range summaries {
		accountMatch := strings.Contains(strings.ToLower(account.DisplayName), needle)
		for _, p := range account.Properties {
			if accountMatch || strings.Contains(strings.ToLower(p.DisplayName), needle) {
				matches = append(matches, candidate{summary: p, account: account.DisplayName})
			}
		}
	}

	switch len(matches) {
	case 0:
		return Ref{}, apierror.NotFound("no account or property display name matches %q", text)
	case 1:
		return Parse(matches[0].summary.Property)
	}

	// Tie-break: a single exact case-sensitive display-name match wins.
	var exact []candidate
	for _, m := range matches {
		if m.summary.DisplayName == strings.TrimSpace(text) {
			exact = append(exact, m)
		}
	}
	if len(exact) == 1 {
		return Parse(exact[0].summary.Property)
	}

	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = fmt.Sprintf("%s (%s, account %q)", m.summary.DisplayName, m.summary.Property, m.account)
	}
	return Ref{}, apierror.Ambiguous(text, names)
}

type candidate struct {
	summary PropertySummary
	account string
}

// looksStructural reports whether a string is shaped like an ID or resource
// name rather than a display name, so parse failures on it are terminal.
func looksStructural(s string) bool {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "properties/") {
		return true
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
