package provider_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/JaimeStill/flux/pkg/provider"
)

func TestMapStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"rate limited", http.StatusTooManyRequests, provider.ErrRateLimited},
		{"credits exhausted", http.StatusPaymentRequired, provider.ErrCreditsExhausted},
		{"ok passes through", http.StatusOK, nil},
		{"server error passes through", http.StatusInternalServerError, nil},
		{"bad gateway passes through", http.StatusBadGateway, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := provider.MapStatus(tt.status)
			if !errors.Is(got, tt.want) {
				t.Errorf("MapStatus(%d) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestNormalizedMessages(t *testing.T) {
	if provider.ErrRateLimited.Message != "Rate limit exceeded. Please try again shortly." {
		t.Errorf("rate limited message: got %q", provider.ErrRateLimited.Message)
	}
	if provider.ErrCreditsExhausted.Message != "AI credits exhausted. Please add credits in Settings." {
		t.Errorf("credits exhausted message: got %q", provider.ErrCreditsExhausted.Message)
	}
}

func TestNormalizedCodes(t *testing.T) {
	if provider.ErrRateLimited.Code != provider.CodeRateLimited {
		t.Errorf("rate limited code: got %s", provider.ErrRateLimited.Code)
	}
	if provider.ErrCreditsExhausted.Code != provider.CodeCreditsExhausted {
		t.Errorf("credits exhausted code: got %s", provider.ErrCreditsExhausted.Code)
	}
	if provider.ErrNotConfigured.Code != provider.CodeConfigError {
		t.Errorf("not configured code: got %s", provider.ErrNotConfigured.Code)
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"rate limited", provider.ErrRateLimited, http.StatusTooManyRequests},
		{"credits exhausted", provider.ErrCreditsExhausted, http.StatusPaymentRequired},
		{"not configured", provider.ErrNotConfigured, http.StatusInternalServerError},
		{"wrapped status error", fmt.Errorf("call failed: %w", provider.ErrRateLimited), http.StatusTooManyRequests},
		{"upstream", provider.ErrUpstream, http.StatusInternalServerError},
		{"arbitrary", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := provider.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus = %d, want %d", got, tt.want)
			}
		})
	}
}
