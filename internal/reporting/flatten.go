package reporting

import (
	"strconv"

	"github.com/teemow/analytics-mcp/internal/apierror"
)

// Flatten zips the ordered headers of each page against its raw rows,
// producing one record per row keyed by field name. Row order is preserved
// exactly as the API returned it; ordering is the request's concern, not
// this layer's.
//
// Headers are identical across all pages of one report, an invariant of the
// API contract. The one thing checked defensively is the header/row length
// match, since a mismatch would otherwise read out of bounds.
func Flatten(pages []*ReportPage) ([]FlatRecord, error) {
	records := []FlatRecord{}

	for _, page := range pages {
		for _, row := range page.Rows {
			if len(row) != len(page.DimensionHeaders)+len(page.MetricHeaders) {
				return nil, apierror.New(apierror.KindReportAPI,
					"response row has %d values for %d dimension and %d metric headers",
					len(row), len(page.DimensionHeaders), len(page.MetricHeaders))
			}

			record := make(FlatRecord, len(row))
			for i, name := range page.DimensionHeaders {
				record[name] = row[i]
			}
			for i, header := range page.MetricHeaders {
				record[header.Name] = coerceMetric(row[len(page.DimensionHeaders)+i], header.Type)
			}
			records = append(records, record)
		}
	}

	return records, nil
}

// coerceMetric converts a raw metric cell according to its declared type.
// Integer metrics become int64, other numeric types become float64, and
// anything unrecognized (or unparsable) stays a string.
func coerceMetric(value, metricType string) any {
	switch metricType {
	case "TYPE_INTEGER":
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	case "TYPE_FLOAT", "TYPE_CURRENCY", "TYPE_STANDARD",
		"TYPE_SECONDS", "TYPE_MILLISECONDS", "TYPE_MINUTES", "TYPE_HOURS",
		"TYPE_FEET", "TYPE_MILES", "TYPE_METERS", "TYPE_KILOMETERS":
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return value
}
