package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hollow-labs/burrow/pkg/report"
	"github.com/hollow-labs/burrow/pkg/store"
)

var (
	reportDatabase string
	reportFormat   string
	reportColor    string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print matches from a previous run",
	Long:  "Read match records persisted with --output and print them",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportDatabase, "database", "burrow.db", "Path to the match database")
	reportCmd.Flags().StringVar(&reportFormat, "format", "human", "Output format: human, json")
	reportCmd.Flags().StringVar(&reportColor, "color", "auto", "Color output: auto, always, never")
}

func runReport(cmd *cobra.Command, args []string) error {
	if reportDatabase == ":memory:" {
		return fmt.Errorf("cannot report from in-memory store")
	}
	if _, err := os.Stat(reportDatabase); err != nil {
		return fmt.Errorf("database not found: %s", reportDatabase)
	}

	s, err := store.New(store.Config{Path: reportDatabase})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer s.Close()

	records, err := s.Records()
	if err != nil {
		return fmt.Errorf("retrieving matches: %w", err)
	}

	switch reportFormat {
	case "json":
		return report.WriteJSON(cmd.OutOrStdout(), records)
	case "human":
		return report.WriteHuman(cmd.OutOrStdout(), records, colorEnabled(reportColor))
	default:
		return fmt.Errorf("unknown format: %s", reportFormat)
	}
}
