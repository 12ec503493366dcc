package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Date is a wrapper around time.Time for YAML date parsing.
type Date struct {
	Time time.Time
}

func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	t, err := time.Parse("2006-01-02", value.Value)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", value.Value, err)
	}
	d.Time = t
	return nil
}

// Weekday is a wrapper around time.Weekday for YAML day-name parsing.
type Weekday struct {
	Day time.Weekday
}

func (w *Weekday) UnmarshalYAML(value *yaml.Node) error {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(value.Value, d.String()) {
			w.Day = d
			return nil
		}
	}
	return fmt.Errorf("invalid weekday %q", value.Value)
}

type League struct {
	Name string `yaml:"name"`
}

type Season struct {
	StartDate Date    `yaml:"start_date"`
	MatchDay  Weekday `yaml:"match_day"`
	Weeks     int     `yaml:"weeks"`
}

type Config struct {
	League League   `yaml:"league"`
	Season Season   `yaml:"season"`
	Format string   `yaml:"format"`
	Teams  []string `yaml:"teams"`
	Courts []string `yaml:"courts"`
}

// LoadFromBytes parses YAML bytes into a Config and validates it.
func LoadFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromFile reads and parses a YAML config file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromBytes(data)
}

func (c *Config) validate() error {
	if c.Season.StartDate.Time.IsZero() {
		return fmt.Errorf("season start_date is required")
	}

	if c.Season.Weeks < 1 {
		return fmt.Errorf("season must run for at least 1 week (got %d)", c.Season.Weeks)
	}

	if len(c.Teams) < 2 {
		return fmt.Errorf("at least 2 teams are required (got %d)", len(c.Teams))
	}

	seen := make(map[string]bool)
	for _, team := range c.Teams {
		if team == "" {
			return fmt.Errorf("team names must not be empty")
		}
		if seen[team] {
			return fmt.Errorf("team %q appears more than once", team)
		}
		seen[team] = true
	}

	if len(c.Courts) == 0 {
		return fmt.Errorf("at least one court is required")
	}

	courtSeen := make(map[string]bool)
	for _, court := range c.Courts {
		if court == "" {
			return fmt.Errorf("court names must not be empty")
		}
		if courtSeen[court] {
			return fmt.Errorf("court %q appears more than once", court)
		}
		courtSeen[court] = true
	}

	return nil
}
