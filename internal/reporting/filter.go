package reporting

import (
	"strconv"

	analyticsdata "google.golang.org/api/analyticsdata/v1beta"

	"github.com/teemow/analytics-mcp/internal/apierror"
)

// parseFilterExpression converts a loose filter tree, as received from the
// tool client, into a typed Data API filter expression. The accepted shape
// mirrors the API's JSON representation: exactly one of andGroup, orGroup,
// notExpression, or filter per node.
func parseFilterExpression(m map[string]any) (*analyticsdata.FilterExpression, error) {
	if len(m) == 0 {
		return nil, apierror.InvalidArgument("filter expression must not be empty")
	}
	if len(m) > 1 {
		return nil, apierror.InvalidArgument("filter expression must have exactly one of andGroup, orGroup, notExpression, or filter")
	}

	for key, value := range m {
		switch key {
		case "andGroup", "orGroup":
			list, err := parseFilterList(key, value)
			if err != nil {
				return nil, err
			}
			if key == "andGroup" {
				return &analyticsdata.FilterExpression{AndGroup: list}, nil
			}
			return &analyticsdata.FilterExpression{OrGroup: list}, nil

		case "notExpression":
			inner, ok := value.(map[string]any)
			if !ok {
				return nil, apierror.InvalidArgument("notExpression must be a filter expression object")
			}
			expr, err := parseFilterExpression(inner)
			if err != nil {
				return nil, err
			}
			return &analyticsdata.FilterExpression{NotExpression: expr}, nil

		case "filter":
			inner, ok := value.(map[string]any)
			if !ok {
				return nil, apierror.InvalidArgument("filter must be an object")
			}
			f, err := parseFilter(inner)
			if err != nil {
				return nil, err
			}
			return &analyticsdata.FilterExpression{Filter: f}, nil

		default:
			return nil, apierror.InvalidArgument("unknown filter expression key %q", key)
		}
	}
	return nil, apierror.InvalidArgument("filter expression must not be empty")
}

func parseFilterList(key string, value any) (*analyticsdata.FilterExpressionList, error) {
	group, ok := value.(map[string]any)
	if !ok {
		return nil, apierror.InvalidArgument("%s must be an object with an expressions list", key)
	}
	raw, ok := group["expressions"].([]any)
	if !ok || len(raw) == 0 {
		return nil, apierror.InvalidArgument("%s requires a non-empty expressions list", key)
	}

	list := &analyticsdata.FilterExpressionList{}
	for i, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			return nil, apierror.InvalidArgument("%s expression %d must be a filter expression object", key, i)
		}
		expr, err := parseFilterExpression(m)
		if err != nil {
			return nil, err
		}
		list.Expressions = append(list.Expressions, expr)
	}
	return list, nil
}

// parseFilter converts one leaf filter: a field name plus exactly one
// predicate (stringFilter, inListFilter, numericFilter, betweenFilter, or
// emptyFilter).
func parseFilter(m map[string]any) (*analyticsdata.Filter, error) {
	fieldName, _ := m["fieldName"].(string)
	if fieldName == "" {
		return nil, apierror.InvalidArgument("filter requires a fieldName")
	}
	if !fieldNamePattern.MatchString(fieldName) {
		return nil, apierror.InvalidArgument("invalid filter fieldName %q", fieldName)
	}

	f := &analyticsdata.Filter{FieldName: fieldName}

	predicates := 0
	for key, value := range m {
		switch key {
		case "fieldName":
			continue

		case "stringFilter":
			sf, err := parseStringFilter(value)
			if err != nil {
				return nil, err
			}
			f.StringFilter = sf

		case "inListFilter":
			ilf, err := parseInListFilter(value)
			if err != nil {
				return nil, err
			}
			f.InListFilter = ilf

		case "numericFilter":
			nf, err := parseNumericFilter(value)
			if err != nil {
				return nil, err
			}
			f.NumericFilter = nf

		case "betweenFilter":
			bf, err := parseBetweenFilter(value)
			if err != nil {
				return nil, err
			}
			f.BetweenFilter = bf

		case "emptyFilter":
			f.EmptyFilter = &analyticsdata.EmptyFilter{}

		default:
			return nil, apierror.InvalidArgument("unknown filter key %q", key)
		}
		predicates++
	}

	if predicates != 1 {
		return nil, apierror.InvalidArgument("filter on %q must have exactly one predicate", fieldName)
	}
	return f, nil
}

func parseStringFilter(value any) (*analyticsdata.StringFilter, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, apierror.InvalidArgument("stringFilter must be an object")
	}
	v, ok := m["value"].(string)
	if !ok {
		return nil, apierror.InvalidArgument("stringFilter requires a string value")
	}
	matchType, _ := m["matchType"].(string)
	caseSensitive, _ := m["caseSensitive"].(bool)
	return &analyticsdata.StringFilter{
		MatchType:     matchType,
		Value:         v,
		CaseSensitive: caseSensitive,
	}, nil
}

func parseInListFilter(value any) (*analyticsdata.InListFilter, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, apierror.InvalidArgument("inListFilter must be an object")
	}
	raw, ok := m["values"].([]any)
	if !ok || len(raw) == 0 {
		return nil, apierror.InvalidArgument("inListFilter requires a non-empty values list")
	}
	values := make([]string, 0, len(raw))
	for _, entry := range raw {
		s, ok := entry.(string)
		if !ok {
			return nil, apierror.InvalidArgument("inListFilter values must be strings")
		}
		values = append(values, s)
	}
	caseSensitive, _ := m["caseSensitive"].(bool)
	return &analyticsdata.InListFilter{
		Values:        values,
		CaseSensitive: caseSensitive,
	}, nil
}

func parseNumericFilter(value any) (*analyticsdata.NumericFilter, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, apierror.InvalidArgument("numericFilter must be an object")
	}
	operation, _ := m["operation"].(string)
	if operation == "" {
		return nil, apierror.InvalidArgument("numericFilter requires an operation")
	}
	nv, err := parseNumericValue(m["value"])
	if err != nil {
		return nil, err
	}
	return &analyticsdata.NumericFilter{
		Operation: operation,
		Value:     nv,
	}, nil
}

func parseBetweenFilter(value any) (*analyticsdata.BetweenFilter, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, apierror.InvalidArgument("betweenFilter must be an object")
	}
	from, err := parseNumericValue(m["fromValue"])
	if err != nil {
		return nil, err
	}
	to, err := parseNumericValue(m["toValue"])
	if err != nil {
		return nil, err
	}
	return &analyticsdata.BetweenFilter{
		FromValue: from,
		ToValue:   to,
	}, nil
}

// parseNumericValue accepts both the API's tagged form ({int64Value} or
// {doubleValue}) and a bare number for convenience. Tagged int64 values may
// arrive as JSON strings, matching the API's int64 encoding.
func parseNumericValue(value any) (*analyticsdata.NumericValue, error) {
	switch v := value.(type) {
	case float64:
		if v == float64(int64(v)) {
			return &analyticsdata.NumericValue{Int64Value: int64(v), ForceSendFields: []string{"Int64Value"}}, nil
		}
		return &analyticsdata.NumericValue{DoubleValue: v, ForceSendFields: []string{"DoubleValue"}}, nil

	case map[string]any:
		if raw, ok := v["int64Value"]; ok {
			switch n := raw.(type) {
			case string:
				i, err := strconv.ParseInt(n, 10, 64)
				if err != nil {
					return nil, apierror.InvalidArgument("invalid int64Value %q", n)
				}
				return &analyticsdata.NumericValue{Int64Value: i, ForceSendFields: []string{"Int64Value"}}, nil
			case float64:
				return &analyticsdata.NumericValue{Int64Value: int64(n), ForceSendFields: []string{"Int64Value"}}, nil
			default:
				return nil, apierror.InvalidArgument("int64Value must be a number or numeric string")
			}
		}
		if raw, ok := v["doubleValue"]; ok {
			n, ok := raw.(float64)
			if !ok {
				return nil, apierror.InvalidArgument("doubleValue must be a number")
			}
			return &analyticsdata.NumericValue{DoubleValue: n, ForceSendFields: []string{"DoubleValue"}}, nil
		}
		return nil, apierror.InvalidArgument("numeric value requires int64Value or doubleValue")

	default:
		return nil, apierror.InvalidArgument("numeric value must be a number or a tagged value object, got %T", value)
	}
}
