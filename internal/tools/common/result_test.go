package common

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/analytics-mcp/internal/apierror"
)

func errorResultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if !result.IsError {
		t.Fatal("expected IsError to be true")
	}
	if len(result.Content) == 0 {
		t.Fatal("expected content in error result")
	}
	text, ok := mcp.AsTextContent(result.Content[0])
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func TestToolError_Classified(t *testing.T) {
	result := ToolError(apierror.InvalidArgument("limit must be non-negative"))

	var payload struct {
		Error struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(errorResultText(t, result)), &payload); err != nil {
		t.Fatalf("failed to parse error payload: %v", err)
	}
	if payload.Error.Type != string(apierror.KindInvalidArgument) {
		t.Errorf("type = %q, want %q", payload.Error.Type, apierror.KindInvalidArgument)
	}
	if payload.Error.Message != "limit must be non-negative" {
		t.Errorf("message = %q", payload.Error.Message)
	}
}

func TestToolError_Candidates(t *testing.T) {
	err := apierror.Ambiguous("shop", []string{
		"Shop EU (properties/1, account \"Acme\")",
		"Shop US (properties/2, account \"Acme\")",
	})
	result := ToolError(err)

	var payload struct {
		Error struct {
			Type       string   `json:"type"`
			Candidates []string `json:"candidates"`
		} `json:"error"`
	}
	if jerr := json.Unmarshal([]byte(errorResultText(t, result)), &payload); jerr != nil {
		t.Fatalf("failed to parse error payload: %v", jerr)
	}
	if payload.Error.Type != string(apierror.KindAmbiguousReference) {
		t.Errorf("type = %q, want %q", payload.Error.Type, apierror.KindAmbiguousReference)
	}
	if len(payload.Error.Candidates) != 2 {
		t.Errorf("candidates = %v, want 2 entries", payload.Error.Candidates)
	}
}

func TestToolError_RetryAfter(t *testing.T) {
	err := &apierror.Error{
		Kind:       apierror.KindQuotaExceeded,
		Message:    "quota exhausted",
		RetryAfter: 30 * time.Second,
	}
	result := ToolError(err)

	var payload struct {
		Error struct {
			RetryAfterSeconds int64 `json:"retryAfterSeconds"`
		} `json:"error"`
	}
	if jerr := json.Unmarshal([]byte(errorResultText(t, result)), &payload); jerr != nil {
		t.Fatalf("failed to parse error payload: %v", jerr)
	}
	if payload.Error.RetryAfterSeconds != 30 {
		t.Errorf("retryAfterSeconds = %d, want 30", payload.Error.RetryAfterSeconds)
	}
}

func TestToolError_Unclassified(t *testing.T) {
	result := ToolError(errors.New("connection reset"))

	var payload struct {
		Error struct {
			Type string `json:"type"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(errorResultText(t, result)), &payload); err != nil {
		t.Fatalf("failed to parse error payload: %v", err)
	}
	if payload.Error.Type != string(apierror.KindReportAPI) {
		t.Errorf("type = %q, want %q", payload.Error.Type, apierror.KindReportAPI)
	}
}

func TestToolJSON(t *testing.T) {
	result, err := ToolJSON(map[string]any{"rows": []int{1, 2, 3}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Error("expected IsError to be false")
	}
	text, ok := mcp.AsTextContent(result.Content[0])
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(text.Text), &decoded); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
}
