package reporting

import (
	analyticsdata "google.golang.org/api/analyticsdata/v1beta"
)

// Row limits for core reports. MaxRowLimit caps how many rows a single tool
// call may accumulate across pages; DefaultPageSize is the per-request page
// size used by the pagination driver.
const (
	MaxRowLimit     = 250000
	DefaultPageSize = 10000
)

// ReportSpec is the validated input of a core report. Property must already
// be in canonical properties/{id} form.
type ReportSpec struct {
	Property        string
	Dimensions      []string
	Metrics         []string
	DateRange       DateRange
	OrderBys        []OrderSpec
	DimensionFilter map[string]any
	MetricFilter    map[string]any
	Limit           int64
	Offset          int64
	CurrencyCode    string
	ReturnQuota     bool
}

// RealtimeSpec is the validated input of a realtime report. Realtime
// reports cover the last ~30 minutes, so there is no date range and no
// offset; dimensions may be empty.
type RealtimeSpec struct {
	Property   string
	Dimensions []string
	Metrics    []string
	// DateRange must stay zero; realtime reports reject historical ranges
	// at build time.
	DateRange       DateRange
	OrderBys        []OrderSpec
	DimensionFilter map[string]any
	MetricFilter    map[string]any
	Limit           int64
	MinuteRanges    []MinuteRange
	ReturnQuota     bool
}

// MinuteRange selects a window of recent minutes for a realtime report.
// Values count backwards from now; zero means the current minute.
type MinuteRange struct {
	Name            string `json:"name,omitempty"`
	StartMinutesAgo int64  `json:"startMinutesAgo"`
	EndMinutesAgo   int64  `json:"endMinutesAgo"`
}

// OrderSpec orders report rows by one requested field. Exactly one of
// Metric and Dimension must be set, and the named field must appear in the
// report's requested field set.
type OrderSpec struct {
	Desc      bool
	Metric    string
	Dimension string
	// OrderType refines dimension ordering (e.g. ALPHANUMERIC, NUMERIC).
	// Ignored for metric ordering.
	OrderType string
}

// MetricHeader pairs a metric name with its declared value type, which
// drives numeric coercion during flattening.
type MetricHeader struct {
	Name string
	Type string
}

// ReportPage is one Data API response unit: ordered headers, the raw rows
// of this page, and the total row count of the whole report as declared by
// the API.
type ReportPage struct {
	DimensionHeaders []string
	MetricHeaders    []MetricHeader
	Rows             [][]string
	TotalRows        int64
}

// FlatRecord is one output row, keyed by field name. Dimension values are
// strings; metric values are int64 or float64 when the declared metric type
// is numeric, strings otherwise.
type FlatRecord map[string]any

// Report is the final result of a report tool call. Pages counts the API
// pages fetched; it feeds metrics and is not part of the tool result.
type Report struct {
	Rows      []FlatRecord                 `json:"rows"`
	RowCount  int64                        `json:"rowCount"`
	TotalRows int64                        `json:"totalRows"`
	Quota     *analyticsdata.PropertyQuota `json:"propertyQuota,omitempty"`
	Pages     int64                        `json:"-"`
}
