package admin

import (
	"context"
	"fmt"

	analyticsadmin "google.golang.org/api/analyticsadmin/v1beta"
	"google.golang.org/api/option"

	"github.com/teemow/analytics-mcp/internal/property"
)

// Pagination bounds for Admin API list calls. Result sets here are small
// (accounts, links, schema entries), so one or two pages is the norm.
const (
	defaultPageSize = 200
	maxPageSize     = 200
)

// clampPageSize normalizes a caller-supplied page-size hint; zero and
// out-of-range values fall back to the default.
func clampPageSize(n int64) int64 {
	if n <= 0 || n > maxPageSize {
		return defaultPageSize
	}
	return n
}

// Client wraps the Google Analytics Admin API service.
type Client struct {
	svc *analyticsadmin.Service
}

// NewClient creates an Admin API client using the given client options,
// typically the Application Default Credentials options from the google
// package.
func NewClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := analyticsadmin.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Analytics Admin service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// ListAccountSummaries returns summaries of every account and property the
// credentials can read, following continuation tokens until exhausted.
func (c *Client) ListAccountSummaries(ctx context.Context) ([]AccountSummary, error) {
	var summaries []AccountSummary

	token := ""
	for {
		call := c.svc.AccountSummaries.List().PageSize(defaultPageSize).Context(ctx)
		if token != "" {
			call = call.PageToken(token)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list account summaries: %w", err)
		}

		for _, s := range resp.AccountSummaries {
			summaries = append(summaries, toAccountSummary(s))
		}

		token = resp.NextPageToken
		if token == "" {
			return summaries, nil
		}
	}
}

// AccountSummaries implements property.SummaryLister so the property
// resolver can match free-text references against display names.
func (c *Client) AccountSummaries(ctx context.Context) ([]property.Summary, error) {
	summaries, err := c.ListAccountSummaries(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]property.Summary, 0, len(summaries))
	for _, s := range summaries {
		ps := property.Summary{
			Account:     s.Account,
			DisplayName: s.DisplayName,
		}
		for _, p := range s.Properties {
			ps.Properties = append(ps.Properties, property.PropertySummary{
				Property:    p.Property,
				DisplayName: p.DisplayName,
			})
		}
		result = append(result, ps)
	}
	return result, nil
}

// GetProperty retrieves the metadata of one property by resource name.
func (c *Client) GetProperty(ctx context.Context, name string) (*Property, error) {
	p, err := c.svc.Properties.Get(name).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get property %s: %w", name, err)
	}

	result := toProperty(p)
	return &result, nil
}

// ListGoogleAdsLinks lists the Google Ads links of a property. pageSize is
// a per-page hint; zero or out-of-range values fall back to the default.
// All pages are followed regardless of the hint.
func (c *Client) ListGoogleAdsLinks(ctx context.Context, parent string, pageSize int64) ([]GoogleAdsLink, error) {
	pageSize = clampPageSize(pageSize)

	var links []GoogleAdsLink

	token := ""
	for {
		call := c.svc.Properties.GoogleAdsLinks.List(parent).PageSize(pageSize).Context(ctx)
		if token != "" {
			call = call.PageToken(token)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list Google Ads links for %s: %w", parent, err)
		}

		for _, l := range resp.GoogleAdsLinks {
			links = append(links, toGoogleAdsLink(l))
		}

		token = resp.NextPageToken
		if token == "" {
			return links, nil
		}
	}
}

// GetCustomDefinitions returns a property's declared custom dimensions and
// metrics. Schema sets are small, but tokens are still followed so a
// property with many definitions is returned whole.
func (c *Client) GetCustomDefinitions(ctx context.Context, parent string) (*CustomDefinitions, error) {
	defs := &CustomDefinitions{
		Dimensions: []CustomDimension{},
		Metrics:    []CustomMetric{},
	}

	token := ""
	for {
		call := c.svc.Properties.CustomDimensions.List(parent).PageSize(defaultPageSize).Context(ctx)
		if token != "" {
			call = call.PageToken(token)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list custom dimensions for %s: %w", parent, err)
		}

		for _, d := range resp.CustomDimensions {
			defs.Dimensions = append(defs.Dimensions, toCustomDimension(d))
		}

		token = resp.NextPageToken
		if token == "" {
			break
		}
	}

	token = ""
	for {
		call := c.svc.Properties.CustomMetrics.List(parent).PageSize(defaultPageSize).Context(ctx)
		if token != "" {
			call = call.PageToken(token)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list custom metrics for %s: %w", parent, err)
		}

		for _, m := range resp.CustomMetrics {
			defs.Metrics = append(defs.Metrics, toCustomMetric(m))
		}

		token = resp.NextPageToken
		if token == "" {
			break
		}
	}

	return defs, nil
}
