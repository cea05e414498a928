package model

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

const monthLayout = "06-Jan"

// ParseMonth parses a month key in YY-Mon form. Anything after the second
// dash-separated part is ignored, so "12-Jan-01" is the same as "12-Jan".
func ParseMonth(key string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(key), "-")
	if len(parts) < 2 {
		return time.Time{}, errors.Errorf("invalid month key: %q", key)
	}

	t, err := time.Parse(monthLayout, parts[0]+"-"+parts[1])
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid month key: %q", key)
	}

	return t, nil
}

// SameMonth compares only the year and month of both dates.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
