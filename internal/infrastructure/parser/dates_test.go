package parser

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC)

func TestNormalizeDate_FutureDateStaysInCurrentYear(t *testing.T) {
	if got := NormalizeDate("15.03", testNow); got != "2026-03-15" {
		t.Fatalf("NormalizeDate() = %q, want %q", got, "2026-03-15")
	}
}

func TestNormalizeDate_PastMonthRollsToNextYear(t *testing.T) {
	if got := NormalizeDate("15.01", testNow); got != "2027-01-15" {
		t.Fatalf("NormalizeDate() = %q, want %q", got, "2027-01-15")
	}
}

func TestNormalizeDate_PastDaySameMonthRollsToNextYear(t *testing.T) {
	if got := NormalizeDate("02.02", testNow); got != "2027-02-02" {
		t.Fatalf("NormalizeDate() = %q, want %q", got, "2027-02-02")
	}
}

func TestNormalizeDate_TodayStaysInCurrentYear(t *testing.T) {
	if got := NormalizeDate("03.02", testNow); got != "2026-02-03" {
		t.Fatalf("NormalizeDate() = %q, want %q", got, "2026-02-03")
	}
}

func TestNormalizeDate_KeepsInvalidCalendarDateVerbatim(t *testing.T) {
	if got := NormalizeDate("31.02", testNow); got != "2026-02-31" {
		t.Fatalf("NormalizeDate() = %q, want %q", got, "2026-02-31")
	}
}

func TestNormalizeDate_MalformedFallsBackToTomorrow(t *testing.T) {
	if got := NormalizeDate("not-a-date", testNow); got != "2026-02-04" {
		t.Fatalf("NormalizeDate() = %q, want %q", got, "2026-02-04")
	}
}

func TestDisplayDate_PadsDayAndMonth(t *testing.T) {
	if got := DisplayDate("5.4", testNow); got != "05.04.2026" {
		t.Fatalf("DisplayDate() = %q, want %q", got, "05.04.2026")
	}
}

func TestDisplayDate_MalformedReturnedUnchanged(t *testing.T) {
	if got := DisplayDate("soon", testNow); got != "soon" {
		t.Fatalf("DisplayDate() = %q, want %q", got, "soon")
	}
}

func TestLinkDate_PadsToFourDigits(t *testing.T) {
	if got := LinkDate("5.3"); got != "0503" {
		t.Fatalf("LinkDate() = %q, want %q", got, "0503")
	}
}

func TestLinkDate_MalformedFallsBack(t *testing.T) {
	if got := LinkDate("??"); got != "0101" {
		t.Fatalf("LinkDate() = %q, want %q", got, "0101")
	}
}

func TestValidateDate(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"15.03", true},
		{"1.1", true},
		{"31.12", true},
		{"32.01", false},
		{"15.13", false},
		{"0.05", false},
		{"15", false},
		{"15.03.2026", false},
	}
	for _, c := range cases {
		if got := ValidateDate(c.in); got != c.want {
			t.Fatalf("ValidateDate(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
