package fixture

import "fmt"

// RoundRobin pairs teams with the circle method: the first team stays fixed
// while the rest rotate one position per round, so a full cycle of n-1 rounds
// has every team meeting every other team exactly once. Seasons longer than
// one cycle repeat the pairings with home and away reversed on the next
// cycle; seasons shorter than one cycle simply leave some pairs unplayed.
type RoundRobin struct{}

// Rounds generates the matchups for each of the given weeks.
//
// An odd team count gets a synthetic bye opponent so the working set has even
// size. The bye is an index one past the real team list, never a team name,
// and any pairing that lands on it is dropped from the round.
func (g *RoundRobin) Rounds(teams []string, weeks int) ([]Round, error) {
	if len(teams) < 2 {
		return nil, fmt.Errorf("round robin needs at least 2 teams (got %d)", len(teams))
	}
	if weeks < 1 {
		return nil, fmt.Errorf("season must have at least 1 week (got %d)", weeks)
	}

	n := len(teams)
	bye := -1
	if n%2 == 1 {
		bye = n
		n++
	}
	perCycle := n - 1

	rounds := make([]Round, 0, weeks)
	for w := 0; w < weeks; w++ {
		r := w % perCycle
		cycle := w / perCycle
		order := rotation(n, r)

		round := make(Round, 0, n/2)
		for i := 0; i < n/2; i++ {
			a, b := order[i], order[n-1-i]
			if a == bye || b == bye {
				continue
			}
			home, away := a, b
			// Flip home and away on alternating rounds, offset by the cycle
			// number so a pairing that recurs in the next cycle swaps roles.
			if (r+cycle)%2 == 1 {
				home, away = away, home
			}
			round = append(round, Matchup{Home: teams[home], Away: teams[away]})
		}
		rounds = append(rounds, round)
	}

	return rounds, nil
}

// rotation returns the team indices arranged for a round: index 0 stays
// fixed, and each rotation step moves the last element of the rotating span
// to the front of that span.
func rotation(n, round int) []int {
	m := n - 1
	order := make([]int, n)
	for j := 0; j < m; j++ {
		order[1+j] = ((j-round)%m+m)%m + 1
	}
	return order
}
