package subtitle

import (
	"testing"
	"time"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0.0, "00:00:00,000"},
		{"sub-second", 0.5, "00:00:00,500"},
		{"truncates fractional millisecond", 3661.2005, "01:01:01,200"},
		{"one and a half seconds", 1.5, "00:00:01,500"},
		{"minute boundary", 60.0, "00:01:00,000"},
		{"hour boundary", 3600.0, "01:00:00,000"},
		{"beyond 24 hours", 25*3600 + 61.5, "25:01:01,500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := time.Duration(tt.seconds * float64(time.Second))
			if got := FormatTimestamp(d); got != tt.want {
				t.Errorf("FormatTimestamp(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"00:00:00,000", 0, false},
		{"00:00:01,500", 1500 * time.Millisecond, false},
		{"01:01:01,200", time.Hour + time.Minute + time.Second + 200*time.Millisecond, false},
		{"25:00:00,000", 25 * time.Hour, false},
		{"1:02:03,004", 0, true},
		{"00:00:00.000", 0, true},
		{"00:00:00", 0, true},
		{"garbage", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTimestamp(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimestamp(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	// decode(encode(x)) must agree with x to within a millisecond
	seconds := []float64{0, 0.001, 0.9995, 1.5, 59.999, 3661.2005, 7325.25, 86399.999, 90000.5}

	for _, s := range seconds {
		d := time.Duration(s * float64(time.Second))
		parsed, err := ParseTimestamp(FormatTimestamp(d))
		if err != nil {
			t.Fatalf("round trip of %v failed to parse: %v", s, err)
		}

		diff := d - parsed
		if diff < 0 {
			diff = -diff
		}
		if diff >= time.Millisecond {
			t.Errorf("round trip of %v drifted by %v", s, diff)
		}
	}
}
