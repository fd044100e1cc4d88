package reporting

import (
	"regexp"

	"github.com/teemow/analytics-mcp/internal/apierror"
)

// fieldNamePattern is the syntax-level grammar for dimension and metric API
// names. Custom fields use a "customEvent:" style prefix, hence the colon.
// Whether a syntactically valid name exists on the property is left to the
// remote API.
var fieldNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_:]*$`)

// validateFieldNames checks one field list: every name must match the
// grammar and appear at most once. Names are case-sensitive, so "Date" and
// "date" are distinct (and only the latter exists upstream).
func validateFieldNames(label string, names []string, allowEmpty bool) error {
	if len(names) == 0 && !allowEmpty {
		return apierror.InvalidArgument("at least one %s is required", label)
	}

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if !fieldNamePattern.MatchString(name) {
			return apierror.InvalidArgument("invalid %s name %q", label, name)
		}
		if seen[name] {
			return apierror.InvalidArgument("duplicate %s %q", label, name)
		}
		seen[name] = true
	}
	return nil
}

// validateOrderBys checks that every order entry names exactly one field and
// that the field was actually requested. Ordering by an unrequested field is
// caught here rather than surfaced as a late API rejection.
func validateOrderBys(orderBys []OrderSpec, dimensions, metrics []string) error {
	dims := make(map[string]bool, len(dimensions))
	for _, d := range dimensions {
		dims[d] = true
	}
	mets := make(map[string]bool, len(metrics))
	for _, m := range metrics {
		mets[m] = true
	}

	for _, o := range orderBys {
		switch {
		case o.Dimension != "" && o.Metric != "":
			return apierror.InvalidArgument("order by must name either a dimension or a metric, not both")
		case o.Dimension != "":
			if !dims[o.Dimension] {
				return apierror.InvalidArgument("order by dimension %q is not in the requested dimensions", o.Dimension)
			}
		case o.Metric != "":
			if !mets[o.Metric] {
				return apierror.InvalidArgument("order by metric %q is not in the requested metrics", o.Metric)
			}
		default:
			return apierror.InvalidArgument("order by must name a dimension or a metric")
		}
	}
	return nil
}
