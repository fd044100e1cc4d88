package admin_tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/analytics-mcp/internal/instrumentation"
	"github.com/teemow/analytics-mcp/internal/server"
	"github.com/teemow/analytics-mcp/internal/tools/common"
)

const propertyArgDescription = "Property reference: a numeric ID, a properties/{id} resource name, " +
	"or an account/property display name to resolve (e.g. 'My Web Store')."

// RegisterAdminTools registers all Admin API tools with the MCP server.
func RegisterAdminTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	registerAccountSummariesTool(s, sc)
	registerPropertyDetailsTool(s, sc)
	registerGoogleAdsLinksTool(s, sc)
	registerCustomDefinitionsTool(s, sc)
	return nil
}

func registerAccountSummariesTool(s *mcpserver.MCPServer, sc *server.ServerContext) {
	tool := mcp.NewTool("get_account_summaries",
		mcp.WithDescription("List all Google Analytics accounts and properties the credentials can access, as a compact summary tree."),
	)

	s.AddTool(tool, common.InstrumentedToolHandlerWithService(
		"get_account_summaries", instrumentation.ServiceAdmin, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			client, err := sc.AdminClient()
			if err != nil {
				return common.ToolError(err), nil
			}

			summaries, err := client.ListAccountSummaries(ctx)
			if err != nil {
				return common.ToolError(err), nil
			}

			return common.ToolJSON(map[string]any{"accountSummaries": summaries})
		}))
}

func registerPropertyDetailsTool(s *mcpserver.MCPServer, sc *server.ServerContext) {
	tool := mcp.NewTool("get_property_details",
		mcp.WithDescription("Get the full details of a single Google Analytics property."),
		mcp.WithString("property",
			mcp.Required(),
			mcp.Description(propertyArgDescription),
		),
	)

	s.AddTool(tool, common.InstrumentedToolHandlerWithService(
		"get_property_details", instrumentation.ServiceAdmin, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()

			ref, err := common.ResolveProperty(ctx, sc, args["property"])
			if err != nil {
				return common.ToolError(err), nil
			}

			client, err := sc.AdminClient()
			if err != nil {
				return common.ToolError(err), nil
			}

			prop, err := client.GetProperty(ctx, ref.Name())
			if err != nil {
				return common.ToolError(err), nil
			}

			return common.ToolJSON(prop)
		}))
}

func registerGoogleAdsLinksTool(s *mcpserver.MCPServer, sc *server.ServerContext) {
	tool := mcp.NewTool("list_google_ads_links",
		mcp.WithDescription("List the Google Ads account links of a Google Analytics property."),
		mcp.WithString("property",
			mcp.Required(),
			mcp.Description(propertyArgDescription),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Maximum number of links to return (default and maximum 200)."),
		),
	)

	s.AddTool(tool, common.InstrumentedToolHandlerWithService(
		"list_google_ads_links", instrumentation.ServiceAdmin, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()

			pageSize, err := common.Int64(args, "page_size", 0)
			if err != nil {
				return common.ToolError(err), nil
			}

			ref, err := common.ResolveProperty(ctx, sc, args["property"])
			if err != nil {
				return common.ToolError(err), nil
			}

			client, err := sc.AdminClient()
			if err != nil {
				return common.ToolError(err), nil
			}

			links, err := client.ListGoogleAdsLinks(ctx, ref.Name(), pageSize)
			if err != nil {
				return common.ToolError(err), nil
			}

			return common.ToolJSON(map[string]any{
				"property":       ref.Name(),
				"googleAdsLinks": links,
			})
		}))
}

func registerCustomDefinitionsTool(s *mcpserver.MCPServer, sc *server.ServerContext) {
	tool := mcp.NewTool("get_custom_dimensions_and_metrics",
		mcp.WithDescription("List the custom dimensions and custom metrics defined on a Google Analytics property."),
		mcp.WithString("property",
			mcp.Required(),
			mcp.Description(propertyArgDescription),
		),
	)

	s.AddTool(tool, common.InstrumentedToolHandlerWithService(
		"get_custom_dimensions_and_metrics", instrumentation.ServiceAdmin, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()

			ref, err := common.ResolveProperty(ctx, sc, args["property"])
			if err != nil {
				return common.ToolError(err), nil
			}

			client, err := sc.AdminClient()
			if err != nil {
				return common.ToolError(err), nil
			}

			defs, err := client.GetCustomDefinitions(ctx, ref.Name())
			if err != nil {
				return common.ToolError(err), nil
			}

			return common.ToolJSON(map[string]any{
				"property":         ref.Name(),
				"customDimensions": defs.Dimensions,
				"customMetrics":    defs.Metrics,
			})
		}))
}
