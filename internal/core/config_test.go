package core

import (
	"testing"
	"time"
)

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		rate     int
		expected time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}

	for _, tc := range tests {
		cfg := RuntimeConfig{TickRate: tc.rate}
		if got := cfg.FrameInterval(); got != tc.expected {
			t.Errorf("FrameInterval() at %d fps = %v, expected %v", tc.rate, got, tc.expected)
		}
	}
}

func TestResolveSeed(t *testing.T) {
	now := time.Unix(0, 42)

	if got := (RuntimeConfig{Seed: 7}).ResolveSeed(now); got != 7 {
		t.Errorf("explicit seed should win, got %d", got)
	}
	if got := DefaultConfig().ResolveSeed(now); got != 42 {
		t.Errorf("zero seed should fall back to time, got %d", got)
	}
}
