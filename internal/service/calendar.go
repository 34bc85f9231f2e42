package service

import (
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// dayStart truncates an instant to its calendar day.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dateKey formats a day for use as a grouping key.
func dateKey(t time.Time) string {
	return t.Format(dateLayout)
}

func sameDay(a, b time.Time) bool {
	return dayStart(a).Equal(dayStart(b))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
