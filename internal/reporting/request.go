package reporting

import (
	"time"

	analyticsdata "google.golang.org/api/analyticsdata/v1beta"

	"github.com/teemow/analytics-mcp/internal/apierror"
)

// BuildReportRequest validates a core report spec and assembles the Data
// API request. The request's Limit and Offset are left unset; the
// pagination driver manages them per page. now anchors relative date
// keywords.
func BuildReportRequest(spec *ReportSpec, now time.Time) (*analyticsdata.RunReportRequest, error) {
	if err := validateFieldNames("dimension", spec.Dimensions, false); err != nil {
		return nil, err
	}
	if err := validateFieldNames("metric", spec.Metrics, false); err != nil {
		return nil, err
	}
	if spec.DateRange.IsZero() {
		return nil, apierror.InvalidArgument("a date range is required")
	}
	if err := spec.DateRange.Validate(now); err != nil {
		return nil, err
	}
	if err := validateOrderBys(spec.OrderBys, spec.Dimensions, spec.Metrics); err != nil {
		return nil, err
	}
	if spec.Offset < 0 {
		return nil, apierror.InvalidArgument("offset must not be negative")
	}
	if spec.Limit < 0 {
		return nil, apierror.InvalidArgument("limit must not be negative")
	}
	if spec.Limit == 0 || spec.Limit > MaxRowLimit {
		spec.Limit = MaxRowLimit
	}

	req := &analyticsdata.RunReportRequest{
		DateRanges: []*analyticsdata.DateRange{{
			StartDate: spec.DateRange.StartDate,
			EndDate:   spec.DateRange.EndDate,
			Name:      spec.DateRange.Name,
		}},
		Dimensions:          toDimensions(spec.Dimensions),
		Metrics:             toMetrics(spec.Metrics),
		OrderBys:            toOrderBys(spec.OrderBys),
		CurrencyCode:        spec.CurrencyCode,
		ReturnPropertyQuota: spec.ReturnQuota,
	}

	if spec.DimensionFilter != nil {
		expr, err := parseFilterExpression(spec.DimensionFilter)
		if err != nil {
			return nil, err
		}
		req.DimensionFilter = expr
	}
	if spec.MetricFilter != nil {
		expr, err := parseFilterExpression(spec.MetricFilter)
		if err != nil {
			return nil, err
		}
		req.MetricFilter = expr
	}

	return req, nil
}

// BuildRealtimeRequest validates a realtime spec and assembles the Data API
// request. Realtime reports allow an empty dimension list but reject any
// date range, which has no meaning over the live window.
func BuildRealtimeRequest(spec *RealtimeSpec) (*analyticsdata.RunRealtimeReportRequest, error) {
	if !spec.DateRange.IsZero() {
		return nil, apierror.InvalidArgument("realtime reports do not accept a date range")
	}
	if err := validateFieldNames("dimension", spec.Dimensions, true); err != nil {
		return nil, err
	}
	if err := validateFieldNames("metric", spec.Metrics, false); err != nil {
		return nil, err
	}
	if err := validateOrderBys(spec.OrderBys, spec.Dimensions, spec.Metrics); err != nil {
		return nil, err
	}
	if spec.Limit < 0 {
		return nil, apierror.InvalidArgument("limit must not be negative")
	}
	if spec.Limit == 0 || spec.Limit > MaxRowLimit {
		spec.Limit = MaxRowLimit
	}

	req := &analyticsdata.RunRealtimeReportRequest{
		Dimensions:          toDimensions(spec.Dimensions),
		Metrics:             toMetrics(spec.Metrics),
		OrderBys:            toOrderBys(spec.OrderBys),
		Limit:               spec.Limit,
		ReturnPropertyQuota: spec.ReturnQuota,
	}

	for _, r := range spec.MinuteRanges {
		if r.StartMinutesAgo < 0 || r.EndMinutesAgo < 0 {
			return nil, apierror.InvalidArgument("minute range values must not be negative")
		}
		if r.StartMinutesAgo < r.EndMinutesAgo {
			return nil, apierror.InvalidArgument("minute range start (%d minutes ago) must not be more recent than its end (%d minutes ago)", r.StartMinutesAgo, r.EndMinutesAgo)
		}
		req.MinuteRanges = append(req.MinuteRanges, &analyticsdata.MinuteRange{
			Name:            r.Name,
			StartMinutesAgo: r.StartMinutesAgo,
			EndMinutesAgo:   r.EndMinutesAgo,
			ForceSendFields: []string{"StartMinutesAgo", "EndMinutesAgo"},
		})
	}

	if spec.DimensionFilter != nil {
		expr, err := parseFilterExpression(spec.DimensionFilter)
		if err != nil {
			return nil, err
		}
		req.DimensionFilter = expr
	}
	if spec.MetricFilter != nil {
		expr, err := parseFilterExpression(spec.MetricFilter)
		if err != nil {
			return nil, err
		}
		req.MetricFilter = expr
	}

	return req, nil
}

func toDimensions(names []string) []*analyticsdata.Dimension {
	dims := make([]*analyticsdata.Dimension, 0, len(names))
	for _, name := range names {
		dims = append(dims, &analyticsdata.Dimension{Name: name})
	}
	return dims
}

func toMetrics(names []string) []*analyticsdata.Metric {
	mets := make([]*analyticsdata.Metric, 0, len(names))
	for _, name := range names {
		mets = append(mets, &analyticsdata.Metric{Name: name})
	}
	return mets
}

func toOrderBys(orderBys []OrderSpec) []*analyticsdata.OrderBy {
	if len(orderBys) == 0 {
		return nil
	}
	result := make([]*analyticsdata.OrderBy, 0, len(orderBys))
	for _, o := range orderBys {
		ob := &analyticsdata.OrderBy{Desc: o.Desc}
		if o.Metric != "" {
			ob.Metric = &analyticsdata.MetricOrderBy{MetricName: o.Metric}
		} else {
			ob.Dimension = &analyticsdata.DimensionOrderBy{
				DimensionName: o.Dimension,
				OrderType:     o.OrderType,
			}
		}
		result = append(result, ob)
	}
	return result
}
