package common

import (
	"reflect"
	"testing"

	"github.com/teemow/analytics-mcp/internal/apierror"
)

func TestRequiredString(t *testing.T) {
	tests := []struct {
		name      string
		args      map[string]any
		want      string
		expectErr bool
	}{
		{"present", map[string]any{"property": "properties/123"}, "properties/123", false},
		{"missing", map[string]any{}, "", true},
		{"empty", map[string]any{"property": ""}, "", true},
		{"wrong type", map[string]any{"property": 42.0}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RequiredString(tt.args, "property")
			if tt.expectErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if kind := apierror.KindOf(err); kind != apierror.KindInvalidArgument {
					t.Errorf("error kind = %q, want %q", kind, apierror.KindInvalidArgument)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("RequiredString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInt64(t *testing.T) {
	tests := []struct {
		name      string
		args      map[string]any
		def       int64
		want      int64
		expectErr bool
	}{
		{"absent uses default", map[string]any{}, 100, 100, false},
		{"json number", map[string]any{"limit": 42.0}, 0, 42, false},
		{"int", map[string]any{"limit": 42}, 0, 42, false},
		{"numeric string", map[string]any{"limit": "42"}, 0, 42, false},
		{"fractional", map[string]any{"limit": 42.5}, 0, 0, true},
		{"non-numeric string", map[string]any{"limit": "many"}, 0, 0, true},
		{"bool", map[string]any{"limit": true}, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Int64(tt.args, "limit", tt.def)
			if tt.expectErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Int64() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStringSlice(t *testing.T) {
	tests := []struct {
		name      string
		args      map[string]any
		want      []string
		expectErr bool
	}{
		{"absent", map[string]any{}, nil, false},
		{"bare string", map[string]any{"dimensions": "country"}, []string{"country"}, false},
		{"array", map[string]any{"dimensions": []any{"country", "city"}}, []string{"country", "city"}, false},
		{"mixed array", map[string]any{"dimensions": []any{"country", 7.0}}, nil, true},
		{"object", map[string]any{"dimensions": map[string]any{}}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StringSlice(tt.args, "dimensions")
			if tt.expectErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("StringSlice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMap(t *testing.T) {
	filter := map[string]any{"filter": map[string]any{"fieldName": "country"}}

	got, err := Map(filter, "filter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["fieldName"] != "country" {
		t.Errorf("Map() = %v, want fieldName=country", got)
	}

	if _, err := Map(map[string]any{"filter": "nope"}, "filter"); err == nil {
		t.Error("expected error for non-object value")
	}

	got, err = Map(map[string]any{}, "filter")
	if err != nil || got != nil {
		t.Errorf("Map() for absent key = (%v, %v), want (nil, nil)", got, err)
	}
}

func TestMapSlice(t *testing.T) {
	args := map[string]any{
		"minute_ranges": []any{
			map[string]any{"name": "recent", "start_minutes_ago": 5.0},
			map[string]any{"name": "earlier", "start_minutes_ago": 29.0},
		},
	}

	got, err := MapSlice(args, "minute_ranges")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("MapSlice() returned %d entries, want 2", len(got))
	}
	if got[0]["name"] != "recent" {
		t.Errorf("first entry name = %v, want recent", got[0]["name"])
	}

	if _, err := MapSlice(map[string]any{"minute_ranges": []any{"nope"}}, "minute_ranges"); err == nil {
		t.Error("expected error for non-object entry")
	}
	if _, err := MapSlice(map[string]any{"minute_ranges": "nope"}, "minute_ranges"); err == nil {
		t.Error("expected error for non-array value")
	}
}

func TestBoolAndString(t *testing.T) {
	args := map[string]any{"return_property_quota": true, "currency_code": "EUR"}

	if !Bool(args, "return_property_quota") {
		t.Error("Bool() = false, want true")
	}
	if Bool(args, "missing") {
		t.Error("Bool() for absent key = true, want false")
	}
	if got := String(args, "currency_code"); got != "EUR" {
		t.Errorf("String() = %q, want EUR", got)
	}
	if got := String(args, "missing"); got != "" {
		t.Errorf("String() for absent key = %q, want empty", got)
	}
}
