package schedule

import (
	"math"
	"testing"
	"time"

	"github.com/dmaher/courtsched/internal/fixture"
)

func weekDates(n int) []time.Time {
	dates := make([]time.Time, n)
	for i := range dates {
		dates[i] = day(2026, 9, 9).AddDate(0, 0, 7*i)
	}
	return dates
}

func TestAssignSlotsSingleCourt(t *testing.T) {
	// 4 teams on one court: two matchups per week, one at 18:00 and one at
	// 19:00, with accumulated debt deciding who gets the earlier hour.
	gen := &fixture.RoundRobin{}
	rounds, err := gen.Rounds([]string{"A", "B", "C", "D"}, 3)
	if err != nil {
		t.Fatalf("Rounds() error: %v", err)
	}

	matches, err := AssignSlots(rounds, weekDates(3), []string{"Court 1"})
	if err != nil {
		t.Fatalf("AssignSlots() error: %v", err)
	}
	if len(matches) != 6 {
		t.Fatalf("matches = %d, want 6", len(matches))
	}

	t.Run("hours split 18 and 19 each week", func(t *testing.T) {
		for w := 0; w < 3; w++ {
			first, second := matches[2*w], matches[2*w+1]
			if first.Hour != 18 || second.Hour != 19 {
				t.Errorf("week %d hours = %d,%d, want 18,19", w+1, first.Hour, second.Hour)
			}
		}
	})

	t.Run("week 1 ties break by input order", func(t *testing.T) {
		if matches[0].Home != "A" || matches[0].Away != "D" {
			t.Errorf("week 1 best slot = %s vs %s, want A vs D", matches[0].Home, matches[0].Away)
		}
		if matches[1].Home != "B" || matches[1].Away != "C" {
			t.Errorf("week 1 late slot = %s vs %s, want B vs C", matches[1].Home, matches[1].Away)
		}
	})

	t.Run("best slot follows the most under-served team", func(t *testing.T) {
		// After two weeks B has had 19:00 twice while A has had 18:00 twice,
		// so in week 3 the matchup containing B takes the earlier hour.
		third := matches[4]
		if third.Home != "A" || third.Away != "B" || third.Hour != 18 {
			t.Errorf("week 3 best slot = %s vs %s at %d, want A vs B at 18", third.Home, third.Away, third.Hour)
		}
	})
}

func TestAssignSlotsFillsCourtsBeforeHours(t *testing.T) {
	gen := &fixture.RoundRobin{}
	rounds, err := gen.Rounds([]string{"A", "B", "C", "D"}, 3)
	if err != nil {
		t.Fatalf("Rounds() error: %v", err)
	}

	matches, err := AssignSlots(rounds, weekDates(3), []string{"Court 1", "Court 2"})
	if err != nil {
		t.Fatalf("AssignSlots() error: %v", err)
	}

	// Two matchups and two courts: both play at the best hour on separate courts.
	for w := 0; w < 3; w++ {
		first, second := matches[2*w], matches[2*w+1]
		if first.Hour != 18 || second.Hour != 18 {
			t.Errorf("week %d hours = %d,%d, want both 18", w+1, first.Hour, second.Hour)
		}
		if first.Court == second.Court {
			t.Errorf("week %d uses court %s twice", w+1, first.Court)
		}
	}
}

func TestAssignSlotsMaxNotSumOrdering(t *testing.T) {
	// Regression guard for the ordering rule. After week 1, E and F sit at
	// +0.5 debt each (sum 1.0), while G is at +1.5 and A at -1.5 (sum 0).
	// Ordering by debt sum would give E vs F the best hour; ordering by the
	// matchup's maximum debt must give it to the matchup carrying G.
	rounds := []fixture.Round{
		{
			{Home: "A", Away: "B"},
			{Home: "C", Away: "D"},
			{Home: "E", Away: "F"},
			{Home: "G", Away: "H"},
		},
		{
			{Home: "E", Away: "F"},
			{Home: "G", Away: "A"},
		},
	}

	matches, err := AssignSlots(rounds, weekDates(2), []string{"Court 1"})
	if err != nil {
		t.Fatalf("AssignSlots() error: %v", err)
	}

	second := matches[4]
	if second.Home != "G" || second.Away != "A" || second.Hour != 18 {
		t.Errorf("week 2 best slot = %s vs %s at %d, want G vs A at 18",
			second.Home, second.Away, second.Hour)
	}
}

func TestAssignSlotsDebtConservation(t *testing.T) {
	// A fully packed round (4 matchups, 1 court, all 4 hours used once)
	// leaves total debt across all teams unchanged at zero.
	gen := &fixture.RoundRobin{}
	teams := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	rounds, err := gen.Rounds(teams, 7)
	if err != nil {
		t.Fatalf("Rounds() error: %v", err)
	}

	matches, err := AssignSlots(rounds, weekDates(7), []string{"Court 1"})
	if err != nil {
		t.Fatalf("AssignSlots() error: %v", err)
	}

	total := 0.0
	for _, tm := range Metrics(matches, teams, 7) {
		total += tm.Debt
	}
	if math.Abs(total) > 1e-9 {
		t.Errorf("total debt = %v, want 0", total)
	}
}

func TestAssignSlotsNoDoubleBooking(t *testing.T) {
	gen := &fixture.RoundRobin{}
	rounds, err := gen.Rounds([]string{"A", "B", "C", "D", "E", "F"}, 10)
	if err != nil {
		t.Fatalf("Rounds() error: %v", err)
	}

	matches, err := AssignSlots(rounds, weekDates(10), []string{"Court 1", "Court 2"})
	if err != nil {
		t.Fatalf("AssignSlots() error: %v", err)
	}

	type slotKey struct {
		date  time.Time
		hour  int
		court string
	}
	seen := make(map[slotKey]bool)
	for _, m := range matches {
		sk := slotKey{m.Date, m.Hour, m.Court}
		if seen[sk] {
			t.Errorf("court %s double-booked at %s %d:00", m.Court, m.Date.Format("2006-01-02"), m.Hour)
		}
		seen[sk] = true
	}
}

func TestAssignSlotsPreconditions(t *testing.T) {
	rounds := []fixture.Round{{{Home: "A", Away: "B"}}}

	t.Run("no courts", func(t *testing.T) {
		if _, err := AssignSlots(rounds, weekDates(1), nil); err == nil {
			t.Error("expected error for empty court list")
		}
	})

	t.Run("rounds and dates length mismatch", func(t *testing.T) {
		if _, err := AssignSlots(rounds, weekDates(2), []string{"Court 1"}); err == nil {
			t.Error("expected error for mismatched lengths")
		}
	})
}
