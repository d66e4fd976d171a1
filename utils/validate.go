package utils

import (
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// ValidNumber reports whether s parses as a number within [min, max].
// Pass a negative max to skip the upper bound.
func ValidNumber(s string, min, max float64) bool {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	if v < min {
		return false
	}
	if max >= 0 && v > max {
		return false
	}
	return true
}

// Today returns the current day formatted for record and note dates.
func Today() string {
	return time.Now().Format(dateLayout)
}
