package property

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/teemow/analytics-mcp/internal/apierror"
)

// Ref is a canonical Google Analytics property reference. It is always
// backed by a numeric property ID and never mutated after construction.
type Ref struct {
	id int64
}

// ID returns the numeric property ID.
func (r Ref) ID() int64 {
	return r.id
}

// Name returns the resource name in the properties/{id} form required by
// both the Admin API and the Data API.
func (r Ref) Name() string {
	return fmt.Sprintf("properties/%d", r.id)
}

func (r Ref) String() string {
	return r.Name()
}

// FromID constructs a Ref from a known-good numeric property ID.
func FromID(id int64) Ref {
	return Ref{id: id}
}

// Parse canonicalizes a user-supplied property reference. It accepts a bare
// integer (including the float64 form JSON numbers arrive as), a numeric
// string, or a string already in properties/{id} form. Surrounding
// whitespace is tolerated. Anything else is an invalid-argument error;
// free-text name resolution is the Resolver's job, not Parse's.
func Parse(input any) (Ref, error) {
	switch v := input.(type) {
	case nil:
		return Ref{}, apierror.InvalidArgument("property reference is required")
	case int:
		return fromID(int64(v))
	case int64:
		return fromID(v)
	case float64:
		if v != math.Trunc(v) {
			return Ref{}, apierror.InvalidArgument("property ID %v is not an integer", v)
		}
		return fromID(int64(v))
	case string:
		return parseString(v)
	default:
		return Ref{}, apierror.InvalidArgument("unsupported property reference type %T", input)
	}
}

func fromID(id int64) (Ref, error) {
	if id <= 0 {
		return Ref{}, apierror.InvalidArgument("property ID must be positive, got %d", id)
	}
	return Ref{id: id}, nil
}

func parseString(s string) (Ref, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Ref{}, apierror.InvalidArgument("property reference is required")
	}

	raw := s
	if rest, ok := strings.CutPrefix(s, "properties/"); ok {
		if strings.Contains(rest, "/") {
			return Ref{}, apierror.InvalidArgument("property resource name %q has too many components", raw)
		}
		s = rest
	}

	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Ref{}, apierror.InvalidArgument("property reference %q is not a numeric ID or properties/{id} resource name", raw)
	}
	return fromID(id)
}
