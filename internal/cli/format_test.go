package cli

import (
	"testing"
	"time"
)

func TestFormatCount(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{5, "5"},
		{999, "999"},
		{1000, "1,000"},
		{12450, "12,450"},
		{1234567, "1,234,567"},
		{-12450, "-12,450"},
	}
	for _, c := range cases {
		if got := FormatCount(c.in); got != c.want {
			t.Errorf("FormatCount(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatElapsed(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{500 * time.Millisecond, "0.5s"},
		{3 * time.Second, "3.0s"},
		{90 * time.Second, "1m 30s"},
		{3661 * time.Second, "1h 1m"},
	}
	for _, c := range cases {
		if got := FormatElapsed(c.in); got != c.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
