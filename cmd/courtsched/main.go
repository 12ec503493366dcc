package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dmaher/courtsched/internal/config"
	"github.com/dmaher/courtsched/internal/excel"
	"github.com/dmaher/courtsched/internal/fixture"
	"github.com/dmaher/courtsched/internal/schedule"
	"github.com/dmaher/courtsched/internal/validator"
)

const defaultConfigFile = "config.yaml"

func resolveConfigPath(configFlag string) (string, error) {
	if configFlag != "" {
		return configFlag, nil
	}
	if env := os.Getenv("COURTSCHED_CONFIG"); env != "" {
		return env, nil
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return defaultConfigFile, nil
	}
	return "", fmt.Errorf("no config file found. Either create %s in the current directory, set COURTSCHED_CONFIG, or pass --config", defaultConfigFile)
}

func main() {
	// Optional .env can carry COURTSCHED_CONFIG for repeated runs.
	godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "courtsched",
		Short: "Court league round-robin schedule generator",
	}

	var initOutputPath string
	initCmd := &cobra.Command{
		Use:          "init",
		Short:        "Create a starter config.yaml in the current directory",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(initOutputPath)
		},
	}
	initCmd.Flags().StringVarP(&initOutputPath, "output", "o", defaultConfigFile, "Output path for the config file")

	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate and validate schedules",
	}

	var configFile string
	scheduleCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (default: config.yaml in current directory)")

	var outputFile string
	generateCmd := &cobra.Command{
		Use:          "generate",
		Short:        "Generate a season schedule from a config file",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := resolveConfigPath(configFile)
			if err != nil {
				return err
			}
			return runGenerate(configPath, outputFile)
		},
	}
	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "schedule.xlsx", "Output Excel file path")

	validateCmd := &cobra.Command{
		Use:          "validate <schedule.xlsx>",
		Short:        "Validate a schedule workbook against the config",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := resolveConfigPath(configFile)
			if err != nil {
				return err
			}
			return runValidate(configPath, args[0])
		},
	}

	scheduleCmd.AddCommand(generateCmd, validateCmd)
	rootCmd.AddCommand(initCmd, scheduleCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runInit(outputPath string) error {
	if _, err := os.Stat(outputPath); err == nil {
		return fmt.Errorf("%s already exists; remove it first or use -o to write elsewhere", outputPath)
	}

	if err := os.WriteFile(outputPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("✓ Created %s\n", outputPath)
	return nil
}

const configTemplate = `# Court League Season Configuration
# =================================
# This file defines the parameters for generating a league schedule.

league:
  name: Riverside Padel League

# The season plays one round per week: the first match day is the first
# match_day on or after start_date, and play continues weekly for the given
# number of weeks. Seasons longer than a full round robin repeat the pairings
# with home and away reversed; shorter seasons leave some pairs unplayed.
season:
  start_date: "2026-09-07"
  match_day: wednesday
  weeks: 10

# Format determines how matchups are generated. "round_robin" uses the
# circle method so every team meets every other team once per cycle.
format: round_robin

# Teams must be unique. With an odd number of teams, one team sits out each
# week; byes rotate so every team sits out once per cycle.
teams:
  - Aces
  - Breakers
  - Chargers
  - Drifters
  - Eagles
  - Falcons

# Courts available each match evening. Matches fill every court at the
# earliest hour (18:00) before moving to the next hour, and teams that keep
# drawing late hours are steered toward earlier ones in later weeks.
courts:
  - Court 1
  - Court 2
`

func runGenerate(configPath, outputPath string) error {
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	gen, err := fixture.Get(cfg.Format)
	if err != nil {
		return err
	}

	matches, err := schedule.Generate(gen, cfg.Teams, cfg.Season.Weeks,
		cfg.Season.StartDate.Time, cfg.Season.MatchDay.Day, cfg.Courts)
	if err != nil {
		return fmt.Errorf("generating schedule: %w", err)
	}

	fmt.Printf("✓ Scheduled %d matches across %d weeks\n", len(matches), cfg.Season.Weeks)

	fmt.Println("\nPer Team Metrics:")
	fmt.Printf("  %-15s %6s %5s %5s %5s %6s %6s\n", "Team", "Games", "Home", "Away", "Byes", "18:00", "Debt")
	metrics := schedule.Metrics(matches, cfg.Teams, cfg.Season.Weeks)
	for _, team := range cfg.Teams {
		m := metrics[team]
		fmt.Printf("  %-15s %6d %5d %5d %5d %6d %6.1f\n", team, m.Games, m.Home, m.Away, m.Byes, m.Prime, m.Debt)
	}

	f, err := excel.Generate(cfg, matches)
	if err != nil {
		return fmt.Errorf("generating Excel: %w", err)
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("saving file: %w", err)
	}

	fmt.Printf("\n✓ Schedule saved to %s\n", outputPath)
	return nil
}

func runValidate(configPath, schedulePath string) error {
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	violations, err := validator.Validate(cfg, schedulePath)
	if err != nil {
		return fmt.Errorf("validating: %w", err)
	}

	errors := 0
	warnings := 0
	for _, v := range violations {
		switch v.Type {
		case "error":
			errors++
			fmt.Printf("✗ Rule violation: %s\n", v.Message)
		case "warning":
			warnings++
			fmt.Printf("⚠ Fairness warning: %s\n", v.Message)
		}
	}

	fmt.Printf("\nValidation complete: %d rule violations, %d fairness warnings\n", errors, warnings)

	// Regenerate team sheets from the master schedule
	if err := excel.UpdateTeamSheets(schedulePath, cfg); err != nil {
		return fmt.Errorf("updating team sheets: %w", err)
	}
	fmt.Printf("✓ Team sheets updated in %s\n", schedulePath)

	if errors > 0 {
		return fmt.Errorf("%d rule violations found", errors)
	}
	return nil
}
