package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"google.golang.org/api/googleapi"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "plain kind and message",
			err:  New(KindInvalidArgument, "metrics must not be empty"),
			want: "INVALID_ARGUMENT: metrics must not be empty",
		},
		{
			name: "candidates listed",
			err:  Ambiguous("shop", []string{"Shop EU", "Shop US"}),
			want: `AMBIGUOUS_REFERENCE: property reference "shop" matches multiple properties (candidates: [Shop EU Shop US])`,
		},
		{
			name: "retry hint",
			err:  &Error{Kind: KindQuotaExceeded, Message: "quota exceeded", RetryAfter: 30 * time.Second},
			want: "QUOTA_EXCEEDED: quota exceeded (retry after 30s)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	err := fmt.Errorf("building request: %w", InvalidArgument("bad date"))
	if got := KindOf(err); got != KindInvalidArgument {
		t.Errorf("KindOf(wrapped) = %q, want %q", got, KindInvalidArgument)
	}

	if got := KindOf(errors.New("plain")); got != "" {
		t.Errorf("KindOf(plain) = %q, want empty", got)
	}
}

func TestFromGoogleAPI(t *testing.T) {
	tests := []struct {
		name string
		code int
		want Kind
	}{
		{"unauthorized", http.StatusUnauthorized, KindAuthentication},
		{"forbidden", http.StatusForbidden, KindAuthentication},
		{"not found", http.StatusNotFound, KindNotFound},
		{"rate limited", http.StatusTooManyRequests, KindQuotaExceeded},
		{"bad request", http.StatusBadRequest, KindReportAPI},
		{"server error", http.StatusInternalServerError, KindReportAPI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gerr := &googleapi.Error{Code: tt.code, Message: "remote says no"}
			got := FromGoogleAPI(gerr)
			if got.Kind != tt.want {
				t.Errorf("FromGoogleAPI(%d).Kind = %q, want %q", tt.code, got.Kind, tt.want)
			}
			if got.Message != "remote says no" {
				t.Errorf("remote message not passed through, got %q", got.Message)
			}
		})
	}
}

func TestFromGoogleAPI_RetryAfterSeconds(t *testing.T) {
	gerr := &googleapi.Error{
		Code:    http.StatusTooManyRequests,
		Message: "quota exceeded",
		Header:  http.Header{"Retry-After": []string{"42"}},
	}

	got := FromGoogleAPI(gerr)
	if got.RetryAfter != 42*time.Second {
		t.Errorf("RetryAfter = %s, want 42s", got.RetryAfter)
	}
}

func TestFromGoogleAPI_WrappedGoogleError(t *testing.T) {
	gerr := &googleapi.Error{Code: http.StatusNotFound, Message: "no such property"}
	wrapped := fmt.Errorf("failed to get property: %w", gerr)

	if got := FromGoogleAPI(wrapped); got.Kind != KindNotFound {
		t.Errorf("Kind = %q, want %q", got.Kind, KindNotFound)
	}
}

func TestFromGoogleAPI_PlainError(t *testing.T) {
	got := FromGoogleAPI(errors.New("connection reset"))
	if got.Kind != KindReportAPI {
		t.Errorf("Kind = %q, want %q", got.Kind, KindReportAPI)
	}
}

func TestFromGoogleAPI_PreservesExistingKind(t *testing.T) {
	orig := NotFound("no account matches")
	got := FromGoogleAPI(fmt.Errorf("resolving: %w", orig))
	if got.Kind != KindNotFound {
		t.Errorf("Kind = %q, want %q", got.Kind, KindNotFound)
	}
}
