package reporting

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	analyticsdata "google.golang.org/api/analyticsdata/v1beta"
	"google.golang.org/api/option"

	"github.com/teemow/analytics-mcp/internal/apierror"
	"github.com/teemow/analytics-mcp/internal/logging"
)

// Client wraps the Google Analytics Data API service.
type Client struct {
	svc *analyticsdata.Service
}

// NewClient creates a Data API client using the given client options,
// typically the Application Default Credentials options from the google
// package.
func NewClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := analyticsdata.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Analytics Data service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// RunReport validates the spec, runs the report with sequential pagination,
// and flattens the result. now anchors relative date keywords and is
// injectable for tests.
func (c *Client) RunReport(ctx context.Context, spec *ReportSpec, now time.Time) (*Report, error) {
	req, err := BuildReportRequest(spec, now)
	if err != nil {
		return nil, err
	}

	var quota *analyticsdata.PropertyQuota
	fetch := func(ctx context.Context, offset, pageSize int64) (*ReportPage, error) {
		pageReq := *req
		pageReq.Offset = offset
		pageReq.Limit = pageSize
		pageReq.ForceSendFields = []string{"Limit"}

		resp, err := c.svc.Properties.RunReport(spec.Property, &pageReq).Context(ctx).Do()
		if err != nil {
			return nil, apierror.FromGoogleAPI(err)
		}
		if resp.PropertyQuota != nil {
			quota = resp.PropertyQuota
		}
		return toReportPage(resp.DimensionHeaders, resp.MetricHeaders, resp.Rows, resp.RowCount), nil
	}

	pages, err := Paginate(ctx, spec.Offset, spec.Limit, fetch)
	if err != nil {
		return nil, err
	}

	report, err := assembleReport(pages, quota)
	if err != nil {
		return nil, err
	}

	slog.Debug("report assembled",
		logging.Service("data"),
		logging.Operation("run_report"),
		logging.Property(spec.Property),
		slog.Int64("rows", report.RowCount),
		slog.Int("pages", len(pages)))
	return report, nil
}

// RunRealtimeReport validates the spec and runs a single realtime call. The
// realtime API has no offset, so there is no pagination to drive.
func (c *Client) RunRealtimeReport(ctx context.Context, spec *RealtimeSpec) (*Report, error) {
	req, err := BuildRealtimeRequest(spec)
	if err != nil {
		return nil, err
	}

	resp, err := c.svc.Properties.RunRealtimeReport(spec.Property, req).Context(ctx).Do()
	if err != nil {
		return nil, apierror.FromGoogleAPI(err)
	}

	page := toReportPage(resp.DimensionHeaders, resp.MetricHeaders, resp.Rows, resp.RowCount)
	report, err := assembleReport([]*ReportPage{page}, resp.PropertyQuota)
	if err != nil {
		return nil, err
	}

	slog.Debug("realtime report assembled",
		logging.Service("data"),
		logging.Operation("run_realtime_report"),
		logging.Property(spec.Property),
		slog.Int64("rows", report.RowCount))
	return report, nil
}

// GetMetadata returns the dimensions and metrics available to a property,
// standard fields and the property's custom definitions alike.
func (c *Client) GetMetadata(ctx context.Context, property string) (*Metadata, error) {
	resp, err := c.svc.Properties.GetMetadata(property + "/metadata").Context(ctx).Do()
	if err != nil {
		return nil, apierror.FromGoogleAPI(err)
	}
	result := toMetadata(resp)
	return &result, nil
}

func assembleReport(pages []*ReportPage, quota *analyticsdata.PropertyQuota) (*Report, error) {
	records, err := Flatten(pages)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Rows:     records,
		RowCount: int64(len(records)),
		Quota:    quota,
		Pages:    int64(len(pages)),
	}
	if len(pages) > 0 {
		report.TotalRows = pages[0].TotalRows
	}
	return report, nil
}

func toReportPage(dims []*analyticsdata.DimensionHeader, mets []*analyticsdata.MetricHeader, rows []*analyticsdata.Row, rowCount int64) *ReportPage {
	page := &ReportPage{TotalRows: rowCount}

	for _, d := range dims {
		page.DimensionHeaders = append(page.DimensionHeaders, d.Name)
	}
	for _, m := range mets {
		page.MetricHeaders = append(page.MetricHeaders, MetricHeader{Name: m.Name, Type: m.Type})
	}
	for _, r := range rows {
		row := make([]string, 0, len(r.DimensionValues)+len(r.MetricValues))
		for _, v := range r.DimensionValues {
			row = append(row, v.Value)
		}
		for _, v := range r.MetricValues {
			row = append(row, v.Value)
		}
		page.Rows = append(page.Rows, row)
	}

	return page
}
