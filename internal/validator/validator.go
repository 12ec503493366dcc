package validator

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/xuri/excelize/v2"

	"github.com/dmaher/courtsched/internal/config"
)

// Violation is a problem found in a schedule workbook.
type Violation struct {
	Row     int
	Type    string // "error" or "warning"
	Message string
}

// Validate reads a schedule workbook and checks it against the config.
// Errors are states the generator can never produce (a team playing twice in
// one week, a name outside the team list); warnings flag fairness drift that
// manual edits may have introduced deliberately.
func Validate(cfg *config.Config, path string) ([]Violation, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	matches, err := readMatches(f)
	if err != nil {
		return nil, fmt.Errorf("reading schedule: %w", err)
	}

	var violations []Violation
	violations = append(violations, checkKnownTeams(cfg, matches)...)
	violations = append(violations, checkOneMatchPerWeek(matches)...)
	violations = append(violations, checkAllTeamsPlay(cfg, matches)...)
	violations = append(violations, checkWeekCount(cfg, matches)...)
	violations = append(violations, checkHomeAwayBalance(cfg, matches)...)
	violations = append(violations, checkRematchSpacing(cfg, matches)...)

	return violations, nil
}

type parsedMatch struct {
	Row  int
	Date time.Time
	Hour string
	Home string
	Away string
}

func readMatches(f *excelize.File) ([]parsedMatch, error) {
	rows, err := f.GetRows("Master Schedule")
	if err != nil {
		return nil, fmt.Errorf("reading Master Schedule: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("Master Schedule is empty")
	}

	header := rows[0]
	firstCourtCol := 4 // after Date, Day, Week, Time

	var matches []parsedMatch
	for i, row := range rows {
		if i == 0 || len(row) <= firstCourtCol || row[0] == "" {
			continue
		}

		// Excel tends to reformat date cells once edited by hand, so accept
		// anything dateparse recognizes rather than one fixed layout.
		date, err := dateparse.ParseAny(row[0])
		if err != nil {
			continue
		}

		for col := firstCourtCol; col < len(row) && col < len(header); col++ {
			cell := row[col]
			if cell == "" {
				continue
			}
			away, home, ok := parseMatchCell(cell)
			if !ok {
				continue
			}
			matches = append(matches, parsedMatch{
				Row:  i + 1,
				Date: date,
				Hour: row[3],
				Home: home,
				Away: away,
			})
		}
	}
	return matches, nil
}

// parseMatchCell parses "Away @ Home" and returns (away, home, true).
func parseMatchCell(cell string) (away, home string, ok bool) {
	idx := strings.Index(cell, " @ ")
	if idx < 0 {
		return "", "", false
	}
	return cell[:idx], cell[idx+3:], true
}

func checkKnownTeams(cfg *config.Config, matches []parsedMatch) []Violation {
	known := make(map[string]bool)
	for _, team := range cfg.Teams {
		known[team] = true
	}

	var violations []Violation
	for _, m := range matches {
		for _, team := range []string{m.Home, m.Away} {
			if !known[team] {
				violations = append(violations, Violation{
					Row:     m.Row,
					Type:    "error",
					Message: fmt.Sprintf("%q is not in the team list", team),
				})
			}
		}
	}
	return violations
}

func checkOneMatchPerWeek(matches []parsedMatch) []Violation {
	type teamDay struct {
		team string
		date time.Time
	}
	counts := make(map[teamDay][]int)
	for _, m := range matches {
		counts[teamDay{m.Home, m.Date}] = append(counts[teamDay{m.Home, m.Date}], m.Row)
		counts[teamDay{m.Away, m.Date}] = append(counts[teamDay{m.Away, m.Date}], m.Row)
	}

	var violations []Violation
	for td, rows := range counts {
		if len(rows) > 1 {
			violations = append(violations, Violation{
				Row:     rows[1],
				Type:    "error",
				Message: fmt.Sprintf("%s plays %d matches on %s", td.team, len(rows), td.date.Format("01/02")),
			})
		}
	}
	return violations
}

func checkAllTeamsPlay(cfg *config.Config, matches []parsedMatch) []Violation {
	counts := make(map[string]int)
	for _, m := range matches {
		counts[m.Home]++
		counts[m.Away]++
	}

	var violations []Violation
	for _, team := range cfg.Teams {
		if counts[team] == 0 {
			violations = append(violations, Violation{
				Type:    "error",
				Message: fmt.Sprintf("%s has no matches scheduled", team),
			})
		}
	}
	return violations
}

func checkWeekCount(cfg *config.Config, matches []parsedMatch) []Violation {
	dates := make(map[time.Time]bool)
	for _, m := range matches {
		dates[m.Date] = true
	}

	if len(dates) != cfg.Season.Weeks {
		return []Violation{{
			Type:    "warning",
			Message: fmt.Sprintf("schedule covers %d match days, config expects %d weeks", len(dates), cfg.Season.Weeks),
		}}
	}
	return nil
}

func checkHomeAwayBalance(cfg *config.Config, matches []parsedMatch) []Violation {
	home := make(map[string]int)
	away := make(map[string]int)
	for _, m := range matches {
		home[m.Home]++
		away[m.Away]++
	}

	var violations []Violation
	for _, team := range cfg.Teams {
		diff := home[team] - away[team]
		if diff < -2 || diff > 2 {
			violations = append(violations, Violation{
				Type:    "warning",
				Message: fmt.Sprintf("%s home/away imbalance: %d home, %d away", team, home[team], away[team]),
			})
		}
	}
	return violations
}

// checkRematchSpacing warns when a pair meets again before a full cycle has
// elapsed; the generator spaces repeat meetings exactly one cycle apart.
func checkRematchSpacing(cfg *config.Config, matches []parsedMatch) []Violation {
	cycle := len(cfg.Teams)
	if cycle%2 == 1 {
		cycle++
	}
	cycle-- // rounds per cycle

	type pair struct{ a, b string }
	meetings := make(map[pair][]time.Time)
	for _, m := range matches {
		a, b := m.Home, m.Away
		if a > b {
			a, b = b, a
		}
		meetings[pair{a, b}] = append(meetings[pair{a, b}], m.Date)
	}

	var violations []Violation
	for pk, dates := range meetings {
		sortDates(dates)
		for i := 1; i < len(dates); i++ {
			weeks := int(dates[i].Sub(dates[i-1]).Hours() / 24 / 7)
			if weeks < cycle {
				violations = append(violations, Violation{
					Type: "warning",
					Message: fmt.Sprintf("%s vs %s meet again after %d weeks (full cycle is %d): %s and %s",
						pk.a, pk.b, weeks, cycle,
						dates[i-1].Format("01/02"), dates[i].Format("01/02")),
				})
			}
		}
	}
	return violations
}

func sortDates(dates []time.Time) {
	for i := 1; i < len(dates); i++ {
		for j := i; j > 0 && dates[j].Before(dates[j-1]); j-- {
			dates[j], dates[j-1] = dates[j-1], dates[j]
		}
	}
}
