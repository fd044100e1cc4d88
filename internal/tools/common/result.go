package common

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/analytics-mcp/internal/apierror"
)

// toolErrorPayload is the JSON body of every error result. Clients branch on
// the type field, so it is always present.
type toolErrorPayload struct {
	Type              apierror.Kind `json:"type"`
	Message           string        `json:"message"`
	Candidates        []string      `json:"candidates,omitempty"`
	RetryAfterSeconds int64         `json:"retryAfterSeconds,omitempty"`
}

// ToolError renders err as an MCP error result carrying the structured
// error payload. Errors without a classification are normalized first so
// that callers always see exactly one error type.
func ToolError(err error) *mcp.CallToolResult {
	var e *apierror.Error
	if !errors.As(err, &e) {
		e = apierror.FromGoogleAPI(err)
	}

	payload := toolErrorPayload{
		Type:       e.Kind,
		Message:    e.Message,
		Candidates: e.Candidates,
	}
	if e.RetryAfter > 0 {
		payload.RetryAfterSeconds = int64(e.RetryAfter.Seconds())
	}

	body, merr := json.MarshalIndent(map[string]toolErrorPayload{"error": payload}, "", "  ")
	if merr != nil {
		return mcp.NewToolResultError(e.Error())
	}
	return mcp.NewToolResultError(string(body))
}

// ToolJSON marshals v as indented JSON and returns it as a text result.
func ToolJSON(v any) (*mcp.CallToolResult, error) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tool result: %w", err)
	}
	return mcp.NewToolResultText(string(body)), nil
}
