package httpclient

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/jsamuelsen11/recipebox/internal/platform/config"
)

func TestRetryableStatus(t *testing.T) {
	t.Parallel()

	for code, want := range map[int]bool{
		http.StatusOK:                  false,
		http.StatusBadRequest:          false,
		http.StatusUnauthorized:        false,
		http.StatusNotFound:            false,
		http.StatusTooManyRequests:     true,
		http.StatusInternalServerError: true,
		http.StatusBadGateway:          true,
		http.StatusServiceUnavailable:  true,
	} {
		if got := retryableStatus(code); got != want {
			t.Errorf("retryableStatus(%d) = %v, want %v", code, got, want)
		}
	}
}

func TestRetryAfter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		header string
		want   time.Duration
		wantOK bool
	}{
		{"429 seconds", http.StatusTooManyRequests, "2", 2 * time.Second, true},
		{"503 seconds", http.StatusServiceUnavailable, "0", 0, true},
		{"capped", http.StatusTooManyRequests, "3600", maxRetryAfter, true},
		{"http date", http.StatusServiceUnavailable, "Wed, 21 Oct 2026 07:28:00 GMT", 0, false},
		{"negative", http.StatusTooManyRequests, "-1", 0, false},
		{"absent", http.StatusTooManyRequests, "", 0, false},
		{"other status", http.StatusBadGateway, "5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp := &http.Response{StatusCode: tt.status, Header: http.Header{}}
			if tt.header != "" {
				resp.Header.Set("Retry-After", tt.header)
			}
			got, ok := retryAfter(resp)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("retryAfter() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestStatusError_UnwrapsRetryAfter(t *testing.T) {
	t.Parallel()

	plain := &statusError{service: "identity-provider", status: http.StatusBadGateway}
	var ra *backoff.RetryAfterError
	if errors.As(plain, &ra) {
		t.Error("errors.As found a RetryAfterError without a Retry-After header")
	}

	delayed := &statusError{
		service:    "identity-provider",
		status:     http.StatusTooManyRequests,
		retryAfter: &backoff.RetryAfterError{Duration: time.Second},
	}
	if !errors.As(delayed, &ra) || ra.Duration != time.Second {
		t.Errorf("errors.As() = %v, want a 1s RetryAfterError", ra)
	}
	if delayed.Error() != "HTTP 429 from identity-provider" {
		t.Errorf("Error() = %q", delayed.Error())
	}
}

func TestRetryPolicy_BackOff(t *testing.T) {
	t.Parallel()

	p := newRetryPolicy(config.RetryConfig{
		MaxAttempts:     4,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     300 * time.Millisecond,
		Multiplier:      2,
	})
	b := p.backOff()

	bounds := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 300 * time.Millisecond, 300 * time.Millisecond}
	for i, base := range bounds {
		got := b.NextBackOff()
		low := time.Duration(float64(base) * (1 - jitter))
		high := time.Duration(float64(base)*(1+jitter)) + time.Microsecond
		if got < low || got > high {
			t.Errorf("interval %d = %v, want within [%v, %v]", i+1, got, low, high)
		}
	}
}
