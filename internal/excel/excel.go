package excel

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/dmaher/courtsched/internal/config"
	"github.com/dmaher/courtsched/internal/schedule"
)

const masterSheet = "Master Schedule"

// Generate creates an Excel workbook with the master schedule grid and one
// sheet per team.
func Generate(cfg *config.Config, matches []schedule.Match) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetDefaultFont("Arial")

	if err := writeMasterSheet(f, cfg, matches); err != nil {
		return nil, fmt.Errorf("writing master sheet: %w", err)
	}

	if err := writeTeamSheets(f, cfg, matches); err != nil {
		return nil, fmt.Errorf("writing team sheets: %w", err)
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

func writeMasterSheet(f *excelize.File, cfg *config.Config, matches []schedule.Match) error {
	f.NewSheet(masterSheet)

	headers := []string{"Date", "Day", "Week", "Time"}
	headers = append(headers, cfg.Courts...)
	for i, h := range headers {
		f.SetCellValue(masterSheet, cellRef(i+1, 1), h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 14, Family: "Arial"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if headerStyle != 0 {
		for i := range headers {
			f.SetCellStyle(masterSheet, cellRef(i+1, 1), cellRef(i+1, 1), headerStyle)
		}
	}

	courtIndex := make(map[string]int)
	for i, court := range cfg.Courts {
		courtIndex[court] = i
	}

	// One row per (date, hour) that has at least one match.
	type rowKey struct {
		date time.Time
		week int
		hour int
	}
	byRow := make(map[rowKey][]schedule.Match)
	var rowKeys []rowKey
	for _, m := range matches {
		rk := rowKey{m.Date, m.Round, m.Hour}
		if _, ok := byRow[rk]; !ok {
			rowKeys = append(rowKeys, rk)
		}
		byRow[rk] = append(byRow[rk], m)
	}
	sort.Slice(rowKeys, func(i, j int) bool {
		if !rowKeys[i].date.Equal(rowKeys[j].date) {
			return rowKeys[i].date.Before(rowKeys[j].date)
		}
		return rowKeys[i].hour < rowKeys[j].hour
	})

	cellStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 14, Family: "Arial"},
	})
	courtCellStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 14, Family: "Arial"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	for i, rk := range rowKeys {
		row := i + 2
		f.SetCellValue(masterSheet, cellRef(1, row), rk.date.Format("01/02/2006"))
		f.SetCellValue(masterSheet, cellRef(2, row), rk.date.Format("Mon"))
		f.SetCellValue(masterSheet, cellRef(3, row), rk.week)
		f.SetCellValue(masterSheet, cellRef(4, row), hourLabel(rk.hour))

		for _, m := range byRow[rk] {
			ci, ok := courtIndex[m.Court]
			if !ok {
				return fmt.Errorf("match assigned to unknown court %q", m.Court)
			}
			f.SetCellValue(masterSheet, cellRef(ci+5, row), fmt.Sprintf("%s @ %s", m.Away, m.Home))
		}

		if cellStyle != 0 {
			for col := 1; col <= 4; col++ {
				f.SetCellStyle(masterSheet, cellRef(col, row), cellRef(col, row), cellStyle)
			}
			for col := 5; col <= len(headers); col++ {
				f.SetCellStyle(masterSheet, cellRef(col, row), cellRef(col, row), courtCellStyle)
			}
		}
	}

	f.SetColWidth(masterSheet, "A", "A", 14)
	f.SetColWidth(masterSheet, "B", "B", 7)
	f.SetColWidth(masterSheet, "C", "C", 7)
	f.SetColWidth(masterSheet, "D", "D", 8)
	for i := range cfg.Courts {
		col := colLetter(i + 5)
		f.SetColWidth(masterSheet, col, col, 26)
	}

	return nil
}

func writeTeamSheets(f *excelize.File, cfg *config.Config, matches []schedule.Match) error {
	for _, team := range cfg.Teams {
		if err := writeTeamSheet(f, team, matches); err != nil {
			return err
		}
	}
	return nil
}

func writeTeamSheet(f *excelize.File, team string, matches []schedule.Match) error {
	f.NewSheet(team)

	headers := []string{"Date", "Day", "Time", "Court", "Opponent", "Home/Away", "Week"}
	for i, h := range headers {
		f.SetCellValue(team, cellRef(i+1, 1), h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 14, Family: "Arial"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if headerStyle != 0 {
		for i := range headers {
			f.SetCellStyle(team, cellRef(i+1, 1), cellRef(i+1, 1), headerStyle)
		}
	}

	type teamMatch struct {
		date     time.Time
		hour     int
		court    string
		opponent string
		homeAway string
		week     int
	}
	var games []teamMatch
	for _, m := range matches {
		switch team {
		case m.Home:
			games = append(games, teamMatch{m.Date, m.Hour, m.Court, m.Away, "Home", m.Round})
		case m.Away:
			games = append(games, teamMatch{m.Date, m.Hour, m.Court, m.Home, "Away", m.Round})
		}
	}
	sort.Slice(games, func(i, j int) bool {
		if !games[i].date.Equal(games[j].date) {
			return games[i].date.Before(games[j].date)
		}
		return games[i].hour < games[j].hour
	})

	cellStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 14, Family: "Arial"},
	})

	for i, g := range games {
		row := i + 2
		f.SetCellValue(team, cellRef(1, row), g.date.Format("01/02/2006"))
		f.SetCellValue(team, cellRef(2, row), g.date.Format("Mon"))
		f.SetCellValue(team, cellRef(3, row), hourLabel(g.hour))
		f.SetCellValue(team, cellRef(4, row), g.court)
		f.SetCellValue(team, cellRef(5, row), g.opponent)
		f.SetCellValue(team, cellRef(6, row), g.homeAway)
		f.SetCellValue(team, cellRef(7, row), g.week)
		if cellStyle != 0 {
			for col := 1; col <= len(headers); col++ {
				f.SetCellStyle(team, cellRef(col, row), cellRef(col, row), cellStyle)
			}
		}
	}

	widths := map[string]float64{"A": 14, "B": 7, "C": 8, "D": 20, "E": 18, "F": 12, "G": 7}
	for col, w := range widths {
		f.SetColWidth(team, col, col, w)
	}

	return nil
}

// UpdateTeamSheets rebuilds the per-team sheets from the master schedule
// grid, so manual edits to the master carry through.
func UpdateTeamSheets(path string, cfg *config.Config) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	matches, err := ReadMaster(f)
	if err != nil {
		return fmt.Errorf("reading master sheet: %w", err)
	}

	for _, team := range cfg.Teams {
		f.DeleteSheet(team)
		if err := writeTeamSheet(f, team, matches); err != nil {
			return err
		}
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("saving file: %w", err)
	}
	return nil
}

// ReadMaster parses the master schedule grid back into matches. Cells that
// don't look like "Away @ Home" are skipped.
func ReadMaster(f *excelize.File) ([]schedule.Match, error) {
	rows, err := f.GetRows(masterSheet)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", masterSheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s is empty", masterSheet)
	}

	header := rows[0]
	var courts []string
	for i := 4; i < len(header); i++ {
		courts = append(courts, header[i])
	}

	var matches []schedule.Match
	for i, row := range rows {
		if i == 0 || len(row) < 4 || row[0] == "" {
			continue
		}

		date, err := time.Parse("01/02/2006", row[0])
		if err != nil {
			continue
		}
		week, _ := strconv.Atoi(row[2])
		hour, ok := parseHour(row[3])
		if !ok {
			continue
		}

		for ci, court := range courts {
			col := ci + 4
			if col >= len(row) || row[col] == "" {
				continue
			}
			away, home, ok := parseMatchCell(row[col])
			if !ok {
				continue
			}
			matches = append(matches, schedule.Match{
				Home:  home,
				Away:  away,
				Round: week,
				Date:  date,
				Hour:  hour,
				Court: court,
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

func parseHour(label string) (int, bool) {
	idx := strings.Index(label, ":")
	if idx < 0 {
		return 0, false
	}
	hour, err := strconv.Atoi(label[:idx])
	if err != nil {
		return 0, false
	}
	return hour, true
}

func hourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

func cellRef(col, row int) string {
	return fmt.Sprintf("%s%d", colLetter(col), row)
}

func colLetter(col int) string {
	result := ""
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
