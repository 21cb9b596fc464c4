package utils

import (
	"fmt"
	"time"
)

const BillingMonthLayout = "2006-01"

// ParseUserTime parses a time string that can be either RFC3339 or YYYY-MM-DD format.
// For YYYY-MM-DD format, if isEndTime is true, it will set the time to end of day (23:59:59).
func ParseUserTime(timeStr string, isEndTime bool) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, timeStr)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse("2006-01-02", timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format, expected RFC3339 or YYYY-MM-DD, got %s", timeStr)
	}

	if isEndTime {
		t = t.Add(24*time.Hour - time.Second)
	}

	return t, nil
}

// ParseBillingMonth validates a YYYY-MM string and returns the first instant of that month in UTC.
func ParseBillingMonth(month string) (time.Time, error) {
	t, err := time.Parse(BillingMonthLayout, month)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid billing month, expected YYYY-MM, got %q", month)
	}
	return t.UTC(), nil
}

// BillingMonthOf formats t as YYYY-MM.
func BillingMonthOf(t time.Time) string {
	return t.Format(BillingMonthLayout)
}

// LastMonths returns n billing months ending with the month of now, oldest first.
func LastMonths(now time.Time, n int) []string {
	if n <= 0 {
		return nil
	}
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	months := make([]string, n)
	for i := 0; i < n; i++ {
		months[n-1-i] = BillingMonthOf(first.AddDate(0, -i, 0))
	}
	return months
}
