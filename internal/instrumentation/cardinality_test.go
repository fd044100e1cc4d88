package instrumentation

import "testing"

func TestNormalizeOperation(t *testing.T) {
	tests := []struct {
		operation string
		expected  string
	}{
		{"list", "list"},
		{"get", "get"},
		{"run_report", "run_report"},
		{"run_realtime_report", "run_realtime_report"},
		{"get_metadata", "get_metadata"},
		{"frobnicate", "other"},
		{"", "other"},
		{"LIST", "other"},
	}

	for _, tt := range tests {
		t.Run(tt.operation, func(t *testing.T) {
			result := NormalizeOperation(tt.operation)
			if result != tt.expected {
				t.Errorf("NormalizeOperation(%q) = %q, want %q", tt.operation, result, tt.expected)
			}
		})
	}
}

func TestNormalizeService(t *testing.T) {
	tests := []struct {
		service  string
		expected string
	}{
		{ServiceAdmin, "admin"},
		{ServiceData, "data"},
		{"gmail", "other"},
		{"", "other"},
	}

	for _, tt := range tests {
		t.Run(tt.service, func(t *testing.T) {
			result := NormalizeService(tt.service)
			if result != tt.expected {
				t.Errorf("NormalizeService(%q) = %q, want %q", tt.service, result, tt.expected)
			}
		})
	}
}

func TestOperationConstants(t *testing.T) {
	operations := map[string]string{
		OperationList:              "list",
		OperationGet:               "get",
		OperationRunReport:         "run_report",
		OperationRunRealtimeReport: "run_realtime_report",
		OperationGetMetadata:       "get_metadata",
	}

	for constant, expected := range operations {
		if constant != expected {
			t.Errorf("Operation constant = %q, want %q", constant, expected)
		}
	}
}
