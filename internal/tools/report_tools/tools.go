package report_tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/analytics-mcp/internal/instrumentation"
	"github.com/teemow/analytics-mcp/internal/reporting"
	"github.com/teemow/analytics-mcp/internal/server"
	"github.com/teemow/analytics-mcp/internal/tools/common"
)

const propertyArgDescription = "Property reference: a numeric ID, a properties/{id} resource name, " +
	"or an account/property display name to resolve (e.g. 'My Web Store')."

// RegisterReportTools registers all Data API tools with the MCP server.
func RegisterReportTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	registerRunReportTool(s, sc)
	registerRunRealtimeReportTool(s, sc)
	registerMetadataTools(s, sc)
	registerHintTools(s)
	return nil
}

// parseDateRange reads the date_range object argument. An absent argument
// yields a zero DateRange; the request builder decides whether that is
// acceptable for the report kind.
func parseDateRange(args map[string]any) (reporting.DateRange, error) {
	m, err := common.Map(args, "date_range")
	if err != nil || m == nil {
		return reporting.DateRange{}, err
	}
	return reporting.DateRange{
		StartDate: common.String(m, "start_date"),
		EndDate:   common.String(m, "end_date"),
		Name:      common.String(m, "name"),
	}, nil
}

func parseOrderBys(args map[string]any) ([]reporting.OrderSpec, error) {
	maps, err := common.MapSlice(args, "order_bys")
	if err != nil {
		return nil, err
	}
	orderBys := make([]reporting.OrderSpec, 0, len(maps))
	for _, m := range maps {
		orderBys = append(orderBys, reporting.OrderSpec{
			Desc:      common.Bool(m, "desc"),
			Metric:    common.String(m, "metric"),
			Dimension: common.String(m, "dimension"),
			OrderType: common.String(m, "order_type"),
		})
	}
	return orderBys, nil
}

func parseMinuteRanges(args map[string]any) ([]reporting.MinuteRange, error) {
	maps, err := common.MapSlice(args, "minute_ranges")
	if err != nil {
		return nil, err
	}
	ranges := make([]reporting.MinuteRange, 0, len(maps))
	for _, m := range maps {
		start, err := common.Int64(m, "start_minutes_ago", 0)
		if err != nil {
			return nil, err
		}
		end, err := common.Int64(m, "end_minutes_ago", 0)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, reporting.MinuteRange{
			Name:            common.String(m, "name"),
			StartMinutesAgo: start,
			EndMinutesAgo:   end,
		})
	}
	return ranges, nil
}

func registerRunReportTool(s *mcpserver.MCPServer, sc *server.ServerContext) {
	tool := mcp.NewTool("run_report",
		mcp.WithDescription("Run a Google Analytics core report over a historical date range. "+
			"Rows are fetched across pages and flattened into field-keyed records with typed metric values."),
		mcp.WithString("property",
			mcp.Required(),
			mcp.Description(propertyArgDescription),
		),
		mcp.WithArray("dimensions",
			mcp.Required(),
			mcp.Description("Dimension API names, e.g. [\"date\", \"country\"]. Use get_dimensions to discover valid names."),
		),
		mcp.WithArray("metrics",
			mcp.Required(),
			mcp.Description("Metric API names, e.g. [\"sessions\", \"activeUsers\"]. Use get_metrics to discover valid names."),
		),
		mcp.WithObject("date_range",
			mcp.Required(),
			mcp.Description("Object with start_date and end_date: YYYY-MM-DD, today, yesterday, or NdaysAgo. "+
				"Use run_report_date_ranges_hints for examples."),
		),
		mcp.WithObject("dimension_filter",
			mcp.Description("Filter expression over dimensions. Use run_report_filter_hints for examples."),
		),
		mcp.WithObject("metric_filter",
			mcp.Description("Filter expression over metrics, applied after aggregation."),
		),
		mcp.WithArray("order_bys",
			mcp.Description("Row ordering. Each entry names one requested dimension or metric. "+
				"Use run_report_order_bys_hints for examples."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum rows to return across all pages (default and maximum 250000)."),
		),
		mcp.WithNumber("offset",
			mcp.Description("Row offset to start from (default 0)."),
		),
		mcp.WithString("currency_code",
			mcp.Description("ISO 4217 currency code for monetary metrics, e.g. EUR."),
		),
		mcp.WithBoolean("return_property_quota",
			mcp.Description("Include the property's Data API quota state in the result."),
		),
	)

	s.AddTool(tool, common.InstrumentedToolHandlerWithService(
		"run_report", instrumentation.ServiceData, instrumentation.OperationRunReport, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()

			dimensions, err := common.StringSlice(args, "dimensions")
			if err != nil {
				return common.ToolError(err), nil
			}
			metrics, err := common.StringSlice(args, "metrics")
			if err != nil {
				return common.ToolError(err), nil
			}
			dateRange, err := parseDateRange(args)
			if err != nil {
				return common.ToolError(err), nil
			}
			orderBys, err := parseOrderBys(args)
			if err != nil {
				return common.ToolError(err), nil
			}
			dimensionFilter, err := common.Map(args, "dimension_filter")
			if err != nil {
				return common.ToolError(err), nil
			}
			metricFilter, err := common.Map(args, "metric_filter")
			if err != nil {
				return common.ToolError(err), nil
			}
			limit, err := common.Int64(args, "limit", 0)
			if err != nil {
				return common.ToolError(err), nil
			}
			offset, err := common.Int64(args, "offset", 0)
			if err != nil {
				return common.ToolError(err), nil
			}

			ref, err := common.ResolveProperty(ctx, sc, args["property"])
			if err != nil {
				return common.ToolError(err), nil
			}

			spec := &reporting.ReportSpec{
				Property:        ref.Name(),
				Dimensions:      dimensions,
				Metrics:         metrics,
				DateRange:       dateRange,
				OrderBys:        orderBys,
				DimensionFilter: dimensionFilter,
				MetricFilter:    metricFilter,
				Limit:           limit,
				Offset:          offset,
				CurrencyCode:    common.String(args, "currency_code"),
				ReturnQuota:     common.Bool(args, "return_property_quota"),
			}

			client, err := sc.DataClient()
			if err != nil {
				return common.ToolError(err), nil
			}

			report, err := client.RunReport(ctx, spec, time.Now())
			if err != nil {
				return common.ToolError(err), nil
			}

			if m := sc.Metrics(); m != nil {
				m.RecordReport(ctx, "run_report", spec.Property, report.RowCount, report.Pages)
			}
			return common.ToolJSON(report)
		}))
}

func registerRunRealtimeReportTool(s *mcpserver.MCPServer, sc *server.ServerContext) {
	tool := mcp.NewTool("run_realtime_report",
		mcp.WithDescription("Run a Google Analytics realtime report over the last ~30 minutes. "+
			"Realtime reports take no date range; use minute_ranges to narrow the window."),
		mcp.WithString("property",
			mcp.Required(),
			mcp.Description(propertyArgDescription),
		),
		mcp.WithArray("dimensions",
			mcp.Description("Realtime dimension API names. May be empty for property-wide totals."),
		),
		mcp.WithArray("metrics",
			mcp.Required(),
			mcp.Description("Realtime metric API names, e.g. [\"activeUsers\"]."),
		),
		mcp.WithObject("dimension_filter",
			mcp.Description("Filter expression over dimensions."),
		),
		mcp.WithObject("metric_filter",
			mcp.Description("Filter expression over metrics."),
		),
		mcp.WithArray("order_bys",
			mcp.Description("Row ordering over requested fields."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum rows to return."),
		),
		mcp.WithArray("minute_ranges",
			mcp.Description("Windows of recent minutes, e.g. [{\"name\": \"recent\", \"start_minutes_ago\": 5, \"end_minutes_ago\": 0}]."),
		),
		mcp.WithBoolean("return_property_quota",
			mcp.Description("Include the property's realtime quota state in the result."),
		),
	)

	s.AddTool(tool, common.InstrumentedToolHandlerWithService(
		"run_realtime_report", instrumentation.ServiceData, instrumentation.OperationRunRealtimeReport, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()

			dimensions, err := common.StringSlice(args, "dimensions")
			if err != nil {
				return common.ToolError(err), nil
			}
			metrics, err := common.StringSlice(args, "metrics")
			if err != nil {
				return common.ToolError(err), nil
			}
			// A date_range argument is parsed here only so the builder can
			// reject it; realtime reports never take one.
			dateRange, err := parseDateRange(args)
			if err != nil {
				return common.ToolError(err), nil
			}
			orderBys, err := parseOrderBys(args)
			if err != nil {
				return common.ToolError(err), nil
			}
			dimensionFilter, err := common.Map(args, "dimension_filter")
			if err != nil {
				return common.ToolError(err), nil
			}
			metricFilter, err := common.Map(args, "metric_filter")
			if err != nil {
				return common.ToolError(err), nil
			}
			limit, err := common.Int64(args, "limit", 0)
			if err != nil {
				return common.ToolError(err), nil
			}
			minuteRanges, err := parseMinuteRanges(args)
			if err != nil {
				return common.ToolError(err), nil
			}

			ref, err := common.ResolveProperty(ctx, sc, args["property"])
			if err != nil {
				return common.ToolError(err), nil
			}

			spec := &reporting.RealtimeSpec{
				Property:        ref.Name(),
				Dimensions:      dimensions,
				Metrics:         metrics,
				DateRange:       dateRange,
				OrderBys:        orderBys,
				DimensionFilter: dimensionFilter,
				MetricFilter:    metricFilter,
				Limit:           limit,
				MinuteRanges:    minuteRanges,
				ReturnQuota:     common.Bool(args, "return_property_quota"),
			}

			client, err := sc.DataClient()
			if err != nil {
				return common.ToolError(err), nil
			}

			report, err := client.RunRealtimeReport(ctx, spec)
			if err != nil {
				return common.ToolError(err), nil
			}

			if m := sc.Metrics(); m != nil {
				m.RecordReport(ctx, "run_realtime_report", spec.Property, report.RowCount, report.Pages)
			}
			return common.ToolJSON(report)
		}))
}

func registerMetadataTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	dimensionsTool := mcp.NewTool("get_dimensions",
		mcp.WithDescription("List every dimension the Data API accepts for a property, including custom dimensions."),
		mcp.WithString("property",
			mcp.Required(),
			mcp.Description(propertyArgDescription),
		),
	)

	s.AddTool(dimensionsTool, common.InstrumentedToolHandlerWithService(
		"get_dimensions", instrumentation.ServiceData, instrumentation.OperationGetMetadata, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			meta, ref, err := propertyMetadata(ctx, sc, request)
			if err != nil {
				return common.ToolError(err), nil
			}
			return common.ToolJSON(map[string]any{
				"property":   ref,
				"dimensions": meta.Dimensions,
			})
		}))

	metricsTool := mcp.NewTool("get_metrics",
		mcp.WithDescription("List every metric the Data API accepts for a property, including custom metrics."),
		mcp.WithString("property",
			mcp.Required(),
			mcp.Description(propertyArgDescription),
		),
	)

	s.AddTool(metricsTool, common.InstrumentedToolHandlerWithService(
		"get_metrics", instrumentation.ServiceData, instrumentation.OperationGetMetadata, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			meta, ref, err := propertyMetadata(ctx, sc, request)
			if err != nil {
				return common.ToolError(err), nil
			}
			return common.ToolJSON(map[string]any{
				"property": ref,
				"metrics":  meta.Metrics,
			})
		}))
}

func propertyMetadata(ctx context.Context, sc *server.ServerContext, request mcp.CallToolRequest) (*reporting.Metadata, string, error) {
	args := request.GetArguments()

	ref, err := common.ResolveProperty(ctx, sc, args["property"])
	if err != nil {
		return nil, "", err
	}

	client, err := sc.DataClient()
	if err != nil {
		return nil, "", err
	}

	meta, err := client.GetMetadata(ctx, ref.Name())
	if err != nil {
		return nil, "", err
	}
	return meta, ref.Name(), nil
}
