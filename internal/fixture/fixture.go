package fixture

import "fmt"

// Matchup is an ordered home/away pairing of two real teams.
type Matchup struct {
	Home string
	Away string
}

// Round holds the matchups for one week of play. With an odd team count one
// team sits out each round; that team simply has no matchup here.
type Round []Matchup

// Generator produces the per-week matchups for a season.
type Generator interface {
	Rounds(teams []string, weeks int) ([]Round, error)
}

// Get returns a Generator by name.
func Get(name string) (Generator, error) {
	switch name {
	case "round_robin":
		return &RoundRobin{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %q", name)
	}
}
