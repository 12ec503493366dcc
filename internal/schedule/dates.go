package schedule

import (
	"fmt"
	"time"
)

// RoundDates returns one calendar date per round: the first date on or after
// start that falls on the given weekday (start itself if it already does),
// then every 7 days after it.
func RoundDates(start time.Time, day time.Weekday, rounds int) ([]time.Time, error) {
	if day < time.Sunday || day > time.Saturday {
		return nil, fmt.Errorf("invalid weekday %d (must be 0-6)", day)
	}

	offset := (int(day) - int(start.Weekday()) + 7) % 7
	first := start.AddDate(0, 0, offset)

	dates := make([]time.Time, rounds)
	for i := range dates {
		dates[i] = first.AddDate(0, 0, 7*i)
	}
	return dates, nil
}
