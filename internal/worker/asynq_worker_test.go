package worker

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vastra-store/internal/service"
)

func TestIsPermanentEmailError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "disabled", err: service.ErrEmailServiceDisabled, want: true},
		{name: "not_configured", err: service.ErrEmailServiceNotConfigured, want: true},
		{name: "recipient_rejected", err: service.ErrEmailRecipientRejected, want: true},
		{name: "wrapped_recipient_rejected", err: fmt.Errorf("send failed: %w", service.ErrEmailRecipientRejected), want: true},
		{name: "transient", err: errors.New("dial tcp: connection refused"), want: false},
	}
	for _, tc := range cases {
		if got := isPermanentEmailError(tc.err); got != tc.want {
			t.Fatalf("case %s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}
