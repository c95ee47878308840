package formatting_test

import (
	"testing"

	"github.com/JaimeStill/flux/pkg/formatting"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name      string
		n         int64
		precision int
		want      string
	}{
		{"zero", 0, 2, "0 B"},
		{"bytes", 512, 0, "512 B"},
		{"kilobytes", 2048, 1, "2.0 KB"},
		{"megabytes", 1024 * 1024, 0, "1 MB"},
		{"gigabytes", 3 * 1024 * 1024 * 1024, 2, "3.00 GB"},
		{"negative precision clamped", 1024, -1, "1 KB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatting.FormatBytes(tt.n, tt.precision); got != tt.want {
				t.Errorf("FormatBytes(%d, %d) = %q, want %q", tt.n, tt.precision, got, tt.want)
			}
		})
	}
}

func TestParseBytes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"bare number", "1024", 1024, false},
		{"bytes", "512B", 512, false},
		{"megabytes", "1MB", 1024 * 1024, false},
		{"with space", "2 KB", 2048, false},
		{"lowercase", "1mb", 1024 * 1024, false},
		{"fractional", "1.5KB", 1536, false},
		{"empty", "", 0, true},
		{"unknown unit", "5XB", 0, true},
		{"not a number", "abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatting.ParseBytes(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseBytes(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBytes(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseBytes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	sizes := []int64{1024, 50 * 1024 * 1024, 1024 * 1024 * 1024}
	for _, size := range sizes {
		formatted := formatting.FormatBytes(size, 0)
		parsed, err := formatting.ParseBytes(formatted)
		if err != nil {
			t.Fatalf("ParseBytes(%q) error = %v", formatted, err)
		}
		if parsed != size {
			t.Errorf("round trip %d -> %q -> %d", size, formatted, parsed)
		}
	}
}
