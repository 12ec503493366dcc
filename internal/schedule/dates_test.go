package schedule

import (
	"testing"
	"time"
)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestRoundDates(t *testing.T) {
	t.Run("first match day after start", func(t *testing.T) {
		// 2026-09-07 is a Monday; the first Wednesday on or after it is the 9th.
		dates, err := RoundDates(day(2026, 9, 7), time.Wednesday, 3)
		if err != nil {
			t.Fatalf("RoundDates() error: %v", err)
		}
		want := []time.Time{day(2026, 9, 9), day(2026, 9, 16), day(2026, 9, 23)}
		if len(dates) != len(want) {
			t.Fatalf("dates = %d, want %d", len(dates), len(want))
		}
		for i := range want {
			if !dates[i].Equal(want[i]) {
				t.Errorf("date %d = %v, want %v", i, dates[i], want[i])
			}
		}
	})

	t.Run("start already on match day", func(t *testing.T) {
		dates, err := RoundDates(day(2026, 9, 9), time.Wednesday, 2)
		if err != nil {
			t.Fatalf("RoundDates() error: %v", err)
		}
		if !dates[0].Equal(day(2026, 9, 9)) {
			t.Errorf("first date = %v, want start date itself", dates[0])
		}
	})

	t.Run("all dates on match day a week apart", func(t *testing.T) {
		dates, err := RoundDates(day(2026, 9, 4), time.Sunday, 8)
		if err != nil {
			t.Fatalf("RoundDates() error: %v", err)
		}
		for i, d := range dates {
			if d.Weekday() != time.Sunday {
				t.Errorf("date %d = %v falls on %v", i, d, d.Weekday())
			}
			if i > 0 && d.Sub(dates[i-1]) != 7*24*time.Hour {
				t.Errorf("gap before date %d is %v, want 168h", i, d.Sub(dates[i-1]))
			}
		}
	})

	t.Run("zero rounds", func(t *testing.T) {
		dates, err := RoundDates(day(2026, 9, 7), time.Monday, 0)
		if err != nil {
			t.Fatalf("RoundDates() error: %v", err)
		}
		if len(dates) != 0 {
			t.Errorf("dates = %d, want 0", len(dates))
		}
	})

	t.Run("invalid weekday rejected", func(t *testing.T) {
		if _, err := RoundDates(day(2026, 9, 7), time.Weekday(7), 1); err == nil {
			t.Error("expected error for weekday 7")
		}
		if _, err := RoundDates(day(2026, 9, 7), time.Weekday(-1), 1); err == nil {
			t.Error("expected error for weekday -1")
		}
	})
}
