package report_tools

import (
	"strings"
	"testing"
)

func TestDateRangesHint(t *testing.T) {
	hint := dateRangesHint()

	for _, want := range []string{"start_date", "end_date", "7daysAgo", "yesterday", "2024-01-01"} {
		if !strings.Contains(hint, want) {
			t.Errorf("date ranges hint missing %q", want)
		}
	}
}

func TestFiltersHint(t *testing.T) {
	hint := filtersHint()

	for _, want := range []string{"andGroup", "notExpression", "stringFilter", "inListFilter", "numericFilter", "emptyFilter", "fieldName"} {
		if !strings.Contains(hint, want) {
			t.Errorf("filters hint missing %q", want)
		}
	}
}

func TestOrderBysHint(t *testing.T) {
	hint := orderBysHint()

	for _, want := range []string{"desc", "order_type", "ALPHANUMERIC", "NUMERIC"} {
		if !strings.Contains(hint, want) {
			t.Errorf("order bys hint missing %q", want)
		}
	}
}
