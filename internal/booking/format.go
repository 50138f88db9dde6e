package booking

import (
	"fmt"
	"time"
)

// FormatDate renders a sailing date the way the booking pages display
// it, "31/12/2025".
func FormatDate(d time.Time) string { return d.Format("02/01/2006") }

// FormatTimeOfDay turns a TIME column value "14:30:00" into the
// display form "14h30".  Anything too short to carry hours and
// minutes is returned untouched.
func FormatTimeOfDay(t string) string {
	if len(t) < 5 {
		return t
	}
	return t[0:2] + "h" + t[3:5]
}

// FormatCrossing renders the crossing duration between two TIME
// column values as "2h 35m", or just "45m" for crossings under an
// hour.  A departure or arrival that does not parse yields "".
func FormatCrossing(departure, arrival string) string {
	dep, err := time.Parse("15:04:05", departure)
	if err != nil {
		return ""
	}
	arr, err := time.Parse("15:04:05", arrival)
	if err != nil {
		return ""
	}
	minutes := int(arr.Sub(dep).Minutes())
	if minutes < 0 {
		return ""
	}
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}
