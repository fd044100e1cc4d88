package property

import (
	"testing"

	"github.com/teemow/analytics-mcp/internal/apierror"
)

func TestParse_ValidInput(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"bare int", 12345, "properties/12345"},
		{"int64", int64(12345), "properties/12345"},
		{"json number", float64(12345), "properties/12345"},
		{"numeric string", "12345", "properties/12345"},
		{"whitespace around ID", " 12345  ", "properties/12345"},
		{"full resource name", "properties/12345", "properties/12345"},
		{"resource name with whitespace", "  properties/12345 ", "properties/12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%v) returned error: %v", tt.input, err)
			}
			if ref.Name() != tt.want {
				t.Errorf("Parse(%v).Name() = %q, want %q", tt.input, ref.Name(), tt.want)
			}
		})
	}
}

func TestParse_AllFormsAgree(t *testing.T) {
	// The three accepted input forms of the same property must yield the
	// same canonical reference.
	forms := []any{98765, "98765", "properties/98765"}

	var refs []Ref
	for _, f := range forms {
		ref, err := Parse(f)
		if err != nil {
			t.Fatalf("Parse(%v) returned error: %v", f, err)
		}
		refs = append(refs, ref)
	}

	for i := 1; i < len(refs); i++ {
		if refs[i] != refs[0] {
			t.Errorf("Parse(%v) = %v, want %v", forms[i], refs[i], refs[0])
		}
	}
}

func TestParse_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"nil", nil},
		{"empty string", ""},
		{"non-numeric string", "abc"},
		{"resource name without ID", "properties/"},
		{"resource name with non-numeric ID", "properties/abc"},
		{"resource name with extra components", "properties/123/abc"},
		{"zero", 0},
		{"negative", -5},
		{"fractional number", float64(12.5)},
		{"bool", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%v) succeeded, want error", tt.input)
			}
			if kind := apierror.KindOf(err); kind != apierror.KindInvalidArgument {
				t.Errorf("Parse(%v) error kind = %q, want %q", tt.input, kind, apierror.KindInvalidArgument)
			}
		})
	}
}

func TestRef_ID(t *testing.T) {
	ref, err := Parse("properties/321")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if ref.ID() != 321 {
		t.Errorf("ID() = %d, want 321", ref.ID())
	}
}
