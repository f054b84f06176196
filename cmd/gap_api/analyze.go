package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/analysis"
	"github.com/allanbrunobr/nasc-gap-analysis/internal/logger"
	"github.com/allanbrunobr/nasc-gap-analysis/internal/types"
)

var (
	analyzeProfilePath string
	analyzeVacancyPath string
	analyzeCatalogPath string
	analyzeNow         string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run one gap analysis from JSON files",
	Long:  `Read a candidate profile and a vacancy from JSON files, run the full pipeline and print the analysis result. Useful for fixtures and manual inspection; no database is touched.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeProfilePath, "profile", "", "Path to candidate profile JSON (required)")
	analyzeCmd.Flags().StringVar(&analyzeVacancyPath, "vacancy", "", "Path to vacancy JSON (required)")
	analyzeCmd.Flags().StringVar(&analyzeCatalogPath, "catalog", "", "Path to a catalog directory (defaults to the embedded catalogs)")
	analyzeCmd.Flags().StringVar(&analyzeNow, "now", "", `Reference date "YYYY-MM" for open experience entries (defaults to today)`)
	_ = analyzeCmd.MarkFlagRequired("profile")
	_ = analyzeCmd.MarkFlagRequired("vacancy")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	var profile types.CandidateProfile
	if err := readJSONFile(analyzeProfilePath, &profile); err != nil {
		return err
	}

	var vacancy types.Vacancy
	if err := readJSONFile(analyzeVacancyPath, &vacancy); err != nil {
		return err
	}
	vacancy.WorkFormat, _ = types.NormalizeWorkFormat(string(vacancy.WorkFormat))

	now := time.Now
	if analyzeNow != "" {
		ref, err := time.Parse("2006-01", analyzeNow)
		if err != nil {
			return fmt.Errorf("invalid --now value %q: %w", analyzeNow, err)
		}
		now = func() time.Time { return ref }
	}

	cat, err := loadCatalog(analyzeCatalogPath)
	if err != nil {
		return err
	}

	log, err := logger.New(false, false)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	analyzer := analysis.New(nil, nil, cat, log, now)
	result := analyzer.Run(&profile, &vacancy)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func readJSONFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
