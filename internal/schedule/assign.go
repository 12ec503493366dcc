package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/dmaher/courtsched/internal/fixture"
)

// Match is a matchup placed on the calendar: a week number, a date, a start
// hour, and a court.
type Match struct {
	Home  string
	Away  string
	Round int // 1-based week number
	Date  time.Time
	Hour  int
	Court string
}

// Start hours in descending desirability, with the weights that drive the
// fairness accounting. The average weight is the midpoint of the weight set.
var (
	slotHours   = []int{18, 19, 20, 21}
	slotWeights = []float64{4, 3, 2, 1}
)

const avgWeight = 2.5

// AssignSlots places each round's matchups onto courts and start hours,
// steering under-served teams toward the better hours.
//
// A debt accumulator, owned by this one call, tracks per team how far its
// slot history sits from the average desirability: positive debt means the
// team has drawn worse-than-average hours so far. Each round's matchups are
// sorted descending by the maximum of the two teams' debts, so the single
// most under-served team in a matchup drives its priority; two moderately
// behind teams never displace a matchup carrying one severely behind team.
// Ties keep input order. Matchups then fill every court at the best hour
// before moving to the next hour, and each placement charges both teams
// avgWeight minus the hour's weight. Debt is never reset or averaged
// mid-season.
func AssignSlots(rounds []fixture.Round, dates []time.Time, courts []string) ([]Match, error) {
	if len(courts) == 0 {
		return nil, fmt.Errorf("at least one court is required")
	}
	if len(rounds) != len(dates) {
		return nil, fmt.Errorf("have %d rounds but %d dates", len(rounds), len(dates))
	}

	debt := make(map[string]float64)
	for _, round := range rounds {
		for _, m := range round {
			debt[m.Home], debt[m.Away] = 0, 0
		}
	}

	var matches []Match
	for ri, round := range rounds {
		ordered := make(fixture.Round, len(round))
		copy(ordered, round)
		sort.SliceStable(ordered, func(i, j int) bool {
			return maxDebt(debt, ordered[i]) > maxDebt(debt, ordered[j])
		})

		for mi, m := range ordered {
			slot := (mi / len(courts)) % len(slotHours)
			matches = append(matches, Match{
				Home:  m.Home,
				Away:  m.Away,
				Round: ri + 1,
				Date:  dates[ri],
				Hour:  slotHours[slot],
				Court: courts[mi%len(courts)],
			})

			delta := avgWeight - slotWeights[slot]
			debt[m.Home] += delta
			debt[m.Away] += delta
		}
	}

	return matches, nil
}

// maxDebt returns the larger of the two teams' debts, never the sum: a
// matchup is as urgent as its most under-served team.
func maxDebt(debt map[string]float64, m fixture.Matchup) float64 {
	if debt[m.Home] > debt[m.Away] {
		return debt[m.Home]
	}
	return debt[m.Away]
}

func hourWeight(hour int) float64 {
	for i, h := range slotHours {
		if h == hour {
			return slotWeights[i]
		}
	}
	return avgWeight
}
