package timezone_test

import (
	"testing"
	"time"

	"tourism/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	// Test Now() function
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	// Test GetLocation()
	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func TestInit(t *testing.T) {
	timezone.Init("Asia/Kolkata")
	if timezone.GetLocation().String() != "Asia/Kolkata" {
		t.Errorf("expected Asia/Kolkata, got %s", timezone.GetLocation())
	}

	timezone.Init("Not/AZone")
	if timezone.GetLocation() != time.UTC {
		t.Errorf("expected fallback to UTC, got %s", timezone.GetLocation())
	}

	timezone.Init("")
	if timezone.GetLocation().String() != "UTC" {
		t.Errorf("expected UTC for empty name, got %s", timezone.GetLocation())
	}
}

func TestParseDate(t *testing.T) {
	parsed, err := timezone.ParseDate("2025-03-14")
	if err != nil {
		t.Fatalf("ParseDate() failed: %v", err)
	}

	if parsed.Location() != time.UTC || parsed.Day() != 14 || parsed.Hour() != 0 {
		t.Errorf("unexpected parsed date %v", parsed)
	}

	if _, err := timezone.ParseDate("14/03/2025"); err == nil {
		t.Error("expected error for malformed date")
	}
}
