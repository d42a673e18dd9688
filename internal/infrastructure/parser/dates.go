package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// splitDayMonth parses "DD.MM" into numeric day and month without range
// checks. Returns an error for anything that is not two dot-separated
// integers.
func splitDayMonth(dateStr string) (int, int, error) {
	parts := strings.Split(dateStr, ".")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("bad date %q", dateStr)
	}
	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("bad day in %q", dateStr)
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("bad month in %q", dateStr)
	}
	return day, month, nil
}

// resolveYear picks the nearest future year for a day/month pair: dates
// already past relative to now roll into the next year, today and later
// stay in the current one.
func resolveYear(day, month int, now time.Time) int {
	year := now.Year()
	if month < int(now.Month()) || (month == int(now.Month()) && day < now.Day()) {
		year++
	}
	return year
}

// NormalizeDate converts user input "DD.MM" to the API format "YYYY-MM-DD",
// resolving the year to the nearest future occurrence. Day and month are
// carried over verbatim, so calendar-invalid input like "31.02" produces
// "2026-02-31" and is left for the upstream API to reject. Malformed input
// falls back to tomorrow.
func NormalizeDate(dateStr string, now time.Time) string {
	day, month, err := splitDayMonth(dateStr)
	if err != nil {
		t := now.AddDate(0, 0, 1)
		return t.Format("2006-01-02")
	}
	return fmt.Sprintf("%d-%02d-%02d", resolveYear(day, month, now), month, day)
}

// DisplayDate formats "DD.MM" as "DD.MM.YYYY" for user-facing messages,
// using the same year resolution as NormalizeDate. Malformed input is
// returned unchanged.
func DisplayDate(dateStr string, now time.Time) string {
	day, month, err := splitDayMonth(dateStr)
	if err != nil {
		return dateStr
	}
	return fmt.Sprintf("%02d.%02d.%d", day, month, resolveYear(day, month, now))
}

// LinkDate converts "DD.MM" to the four-digit "DDMM" segment used in
// aviasales search URLs. Malformed input falls back to "0101".
func LinkDate(dateStr string) string {
	day, month, err := splitDayMonth(dateStr)
	if err != nil {
		return "0101"
	}
	return fmt.Sprintf("%02d%02d", day, month)
}

// ValidateDate reports whether the string looks like a plausible "DD.MM"
// date. It only bounds the numbers; month lengths are not checked.
func ValidateDate(dateStr string) bool {
	day, month, err := splitDayMonth(dateStr)
	if err != nil {
		return false
	}
	return day >= 1 && day <= 31 && month >= 1 && month <= 12
}
