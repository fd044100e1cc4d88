package reporting

import (
	"testing"

	"github.com/teemow/analytics-mcp/internal/apierror"
)

func TestFlatten(t *testing.T) {
	pages := []*ReportPage{{
		DimensionHeaders: []string{"date"},
		MetricHeaders:    []MetricHeader{{Name: "sessions", Type: "TYPE_INTEGER"}},
		Rows: [][]string{
			{"20240101", "42"},
		},
		TotalRows: 1,
	}}

	records, err := Flatten(pages)
	if err != nil {
		t.Fatalf("Flatten returned error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	if got := records[0]["date"]; got != "20240101" {
		t.Errorf("date = %v (%T), want the string 20240101", got, got)
	}
	// Integer metrics come back as numbers, not strings.
	if got := records[0]["sessions"]; got != int64(42) {
		t.Errorf("sessions = %v (%T), want int64 42", got, got)
	}
}

func TestFlatten_MultiplePagesPreserveOrder(t *testing.T) {
	header := []MetricHeader{{Name: "sessions", Type: "TYPE_INTEGER"}}
	pages := []*ReportPage{
		{
			DimensionHeaders: []string{"date"},
			MetricHeaders:    header,
			Rows:             [][]string{{"20240101", "1"}, {"20240102", "2"}},
		},
		{
			DimensionHeaders: []string{"date"},
			MetricHeaders:    header,
			Rows:             [][]string{{"20240103", "3"}},
		},
	}

	records, err := Flatten(pages)
	if err != nil {
		t.Fatalf("Flatten returned error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	for i, want := range []string{"20240101", "20240102", "20240103"} {
		if records[i]["date"] != want {
			t.Errorf("record %d date = %v, want %s", i, records[i]["date"], want)
		}
	}
}

func TestFlatten_EmptyPages(t *testing.T) {
	records, err := Flatten(nil)
	if err != nil {
		t.Fatalf("Flatten returned error: %v", err)
	}
	if records == nil {
		t.Fatal("expected an empty record slice, got nil")
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestFlatten_LengthMismatch(t *testing.T) {
	pages := []*ReportPage{{
		DimensionHeaders: []string{"date", "country"},
		MetricHeaders:    []MetricHeader{{Name: "sessions", Type: "TYPE_INTEGER"}},
		Rows: [][]string{
			{"20240101", "42"},
		},
	}}

	_, err := Flatten(pages)
	if err == nil {
		t.Fatal("Flatten succeeded on a malformed row, want error")
	}
	if kind := apierror.KindOf(err); kind != apierror.KindReportAPI {
		t.Errorf("error kind = %q, want %q", kind, apierror.KindReportAPI)
	}
}

func TestCoerceMetric(t *testing.T) {
	tests := []struct {
		value      string
		metricType string
		want       any
	}{
		{"42", "TYPE_INTEGER", int64(42)},
		{"0", "TYPE_INTEGER", int64(0)},
		{"3.25", "TYPE_FLOAT", 3.25},
		{"19.99", "TYPE_CURRENCY", 19.99},
		{"1.5", "TYPE_SECONDS", 1.5},
		{"0.42", "TYPE_STANDARD", 0.42},
		// Unparsable values fall back to the raw string.
		{"(other)", "TYPE_INTEGER", "(other)"},
		// Unknown types stay strings even when they look numeric.
		{"42", "", "42"},
		{"42", "TYPE_UNSPECIFIED", "42"},
	}

	for _, tt := range tests {
		if got := coerceMetric(tt.value, tt.metricType); got != tt.want {
			t.Errorf("coerceMetric(%q, %q) = %v (%T), want %v (%T)",
				tt.value, tt.metricType, got, got, tt.want, tt.want)
		}
	}
}
