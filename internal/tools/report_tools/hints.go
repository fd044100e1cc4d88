package report_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/analytics-mcp/internal/reporting"
)

// The hint tools return worked argument examples. Examples are built from
// the real request types and re-marshaled, so they cannot drift from the
// shapes the handlers actually accept.

func registerHintTools(s *mcpserver.MCPServer) {
	dateRangesTool := mcp.NewTool("run_report_date_ranges_hints",
		mcp.WithDescription("Show worked examples of the date_range argument accepted by run_report."),
	)
	s.AddTool(dateRangesTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(dateRangesHint()), nil
	})

	filtersTool := mcp.NewTool("run_report_filter_hints",
		mcp.WithDescription("Show worked examples of the dimension_filter and metric_filter arguments accepted by run_report and run_realtime_report."),
	)
	s.AddTool(filtersTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(filtersHint()), nil
	})

	orderBysTool := mcp.NewTool("run_report_order_bys_hints",
		mcp.WithDescription("Show worked examples of the order_bys argument accepted by run_report and run_realtime_report."),
	)
	s.AddTool(orderBysTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(orderBysHint()), nil
	})
}

func mustJSON(v any) string {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		panic(fmt.Sprintf("marshaling hint example: %v", err))
	}
	return string(body)
}

func dateRangesHint() string {
	examples := map[string]reporting.DateRange{
		"fixed calendar month": {
			StartDate: "2024-01-01",
			EndDate:   "2024-01-31",
			Name:      "january",
		},
		"rolling last week ending yesterday": {
			StartDate: "7daysAgo",
			EndDate:   "yesterday",
			Name:      "last_week",
		},
		"today only": {
			StartDate: "today",
			EndDate:   "today",
		},
	}

	return "The date_range argument is a single object with start_date and end_date. " +
		"Endpoints are YYYY-MM-DD dates or the markers today, yesterday, and NdaysAgo " +
		"(e.g. 30daysAgo). start_date must not be after end_date.\n\n" +
		"Examples:\n" + mustJSON(examples)
}

func filtersHint() string {
	examples := map[string]map[string]any{
		"dimension equals one value": {
			"filter": map[string]any{
				"fieldName": "country",
				"stringFilter": map[string]any{
					"matchType": "EXACT",
					"value":     "Germany",
				},
			},
		},
		"dimension in a list": {
			"filter": map[string]any{
				"fieldName": "city",
				"inListFilter": map[string]any{
					"values":        []string{"Berlin", "Hamburg"},
					"caseSensitive": false,
				},
			},
		},
		"metric above a threshold": {
			"filter": map[string]any{
				"fieldName": "sessions",
				"numericFilter": map[string]any{
					"operation": "GREATER_THAN",
					"value":     map[string]any{"int64Value": "100"},
				},
			},
		},
		"two conditions combined": {
			"andGroup": map[string]any{
				"expressions": []any{
					map[string]any{
						"filter": map[string]any{
							"fieldName": "country",
							"stringFilter": map[string]any{
								"matchType": "EXACT",
								"value":     "Germany",
							},
						},
					},
					map[string]any{
						"notExpression": map[string]any{
							"filter": map[string]any{
								"fieldName": "city",
								"emptyFilter": map[string]any{},
							},
						},
					},
				},
			},
		},
	}

	return "dimension_filter and metric_filter are filter expression trees. A node is " +
		"exactly one of andGroup, orGroup, notExpression, or filter; a filter leaf names " +
		"one field and exactly one of stringFilter, inListFilter, numericFilter, " +
		"betweenFilter, or emptyFilter. Metric filters apply after aggregation.\n\n" +
		"Examples:\n" + mustJSON(examples)
}

func orderBysHint() string {
	examples := map[string][]map[string]any{
		"busiest rows first": {
			{"metric": "sessions", "desc": true},
		},
		"alphabetical by country, then sessions descending": {
			{"dimension": "country", "order_type": "ALPHANUMERIC"},
			{"metric": "sessions", "desc": true},
		},
		"numeric dimension ordering": {
			{"dimension": "hour", "order_type": "NUMERIC"},
		},
	}

	return "order_bys is an array of objects, each naming exactly one requested " +
		"dimension or metric. desc reverses the order; order_type refines dimension " +
		"ordering (ALPHANUMERIC, CASE_INSENSITIVE_ALPHANUMERIC, NUMERIC). Fields not " +
		"present in the report's dimensions or metrics are rejected.\n\n" +
		"Examples:\n" + mustJSON(examples)
}
