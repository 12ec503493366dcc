package schedule

import (
	"time"

	"github.com/dmaher/courtsched/internal/fixture"
)

// Generate produces the full season schedule: one round of matchups per
// week from the generator, one match date per week, and debt-balanced court
// and hour assignments.
//
// The engine is pure and deterministic: no I/O, no shared state, and
// identical inputs always produce an identical schedule. It assumes the
// team list is already validated; persisting the result is the caller's job.
func Generate(gen fixture.Generator, teams []string, weeks int, start time.Time, day time.Weekday, courts []string) ([]Match, error) {
	rounds, err := gen.Rounds(teams, weeks)
	if err != nil {
		return nil, err
	}

	dates, err := RoundDates(start, day, weeks)
	if err != nil {
		return nil, err
	}

	return AssignSlots(rounds, dates, courts)
}

// TeamMetrics holds per-team schedule statistics for reporting.
type TeamMetrics struct {
	Games int
	Home  int
	Away  int
	Byes  int
	Prime int     // matches in the most desirable hour
	Debt  float64 // slot debt after the final round
}

// Metrics summarizes a schedule per team. Byes are weeks in which a team
// has no match.
func Metrics(matches []Match, teams []string, weeks int) map[string]*TeamMetrics {
	metrics := make(map[string]*TeamMetrics, len(teams))
	for _, team := range teams {
		metrics[team] = &TeamMetrics{}
	}

	get := func(name string) *TeamMetrics {
		tm, ok := metrics[name]
		if !ok {
			tm = &TeamMetrics{}
			metrics[name] = tm
		}
		return tm
	}

	for _, m := range matches {
		home, away := get(m.Home), get(m.Away)
		home.Games++
		home.Home++
		away.Games++
		away.Away++
		if m.Hour == slotHours[0] {
			home.Prime++
			away.Prime++
		}
		delta := avgWeight - hourWeight(m.Hour)
		home.Debt += delta
		away.Debt += delta
	}

	for _, tm := range metrics {
		tm.Byes = weeks - tm.Games
	}
	return metrics
}
