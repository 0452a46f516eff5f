package domain

import (
	"testing"
	"time"
)

func TestPackTimeBitFields(t *testing.T) {
	t.Parallel()

	// Monday 2024-01-01 00:00 UTC: only the weekday and year fields are set.
	packed := PackTime(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if want := uint32(1<<12 | 24<<24); packed != want {
		t.Fatalf("packed = %#x, want %#x", packed, want)
	}
}

func TestPackTimeCarriesAllFields(t *testing.T) {
	t.Parallel()

	// Saturday 2027-03-20 14:45 UTC.
	packed := PackTime(time.Date(2027, 3, 20, 14, 45, 0, 0, time.UTC))
	if got := packed & 0x3f; got != 45 {
		t.Fatalf("minute = %d, want 45", got)
	}
	if got := packed >> 6 & 0x3f; got != 14 {
		t.Fatalf("hour = %d, want 14", got)
	}
	if got := packed >> 12 & 0x7; got != 6 {
		t.Fatalf("weekday = %d, want 6", got)
	}
	if got := packed >> 15 & 0x1f; got != 19 {
		t.Fatalf("day = %d, want 19", got)
	}
	if got := packed >> 20 & 0xf; got != 2 {
		t.Fatalf("month = %d, want 2", got)
	}
	if got := packed >> 24; got != 27 {
		t.Fatalf("year = %d, want 27", got)
	}
}
