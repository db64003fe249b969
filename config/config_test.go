package config

import "testing"

func TestParseWindows(t *testing.T) {
	windows, err := ParseWindows("09:00-12:00, 14:00-18:00")
	if err != nil {
		t.Fatalf("ParseWindows error: %v", err)
	}
	if len(windows) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(windows))
	}
	if windows[0].Start != "09:00" || windows[1].End != "18:00" {
		t.Fatalf("unexpected windows: %v", windows)
	}
}

func TestParseWindowsRejectsInvertedRange(t *testing.T) {
	if _, err := ParseWindows("12:00-09:00"); err == nil {
		t.Fatalf("expected error for range that ends before it starts")
	}
}

func TestParseWindowsRejectsMalformedInput(t *testing.T) {
	for _, s := range []string{"", "09:00", "9am-12pm", "09:00-12:00-14:00"} {
		if _, err := ParseWindows(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}
