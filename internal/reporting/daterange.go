package reporting

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/teemow/analytics-mcp/internal/apierror"
)

// DateRange is a pair of date markers, each either an absolute YYYY-MM-DD
// date or one of the relative keywords the Data API accepts ("today",
// "yesterday", "NdaysAgo"). The start must resolve to a calendar date no
// later than the end.
type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Name      string `json:"name,omitempty"`
}

// IsZero reports whether the range carries no dates at all.
func (r DateRange) IsZero() bool {
	return r.StartDate == "" && r.EndDate == ""
}

var daysAgoPattern = regexp.MustCompile(`^(\d+)daysAgo$`)

// resolveDate turns a date marker into a calendar day relative to now.
func resolveDate(marker string, now time.Time) (time.Time, error) {
	switch marker {
	case "today":
		return now, nil
	case "yesterday":
		return now.AddDate(0, 0, -1), nil
	}

	if m := daysAgoPattern.FindStringSubmatch(marker); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid relative date %q", marker)
		}
		return now.AddDate(0, 0, -n), nil
	}

	t, err := time.Parse("2006-01-02", marker)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD, today, yesterday, or NdaysAgo", marker)
	}
	return t, nil
}

// Validate checks both markers and the ordering invariant, resolving
// relative keywords against now. It returns an invalid-argument error so
// malformed ranges never reach the API.
func (r DateRange) Validate(now time.Time) error {
	if r.StartDate == "" || r.EndDate == "" {
		return apierror.InvalidArgument("date range requires both startDate and endDate")
	}

	start, err := resolveDate(r.StartDate, now)
	if err != nil {
		return apierror.InvalidArgument("invalid startDate: %v", err)
	}
	end, err := resolveDate(r.EndDate, now)
	if err != nil {
		return apierror.InvalidArgument("invalid endDate: %v", err)
	}

	// Compare at day granularity; now carries a time of day.
	if start.Format("2006-01-02") > end.Format("2006-01-02") {
		return apierror.InvalidArgument("startDate %q resolves after endDate %q", r.StartDate, r.EndDate)
	}
	return nil
}
