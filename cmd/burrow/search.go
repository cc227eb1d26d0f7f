package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hollow-labs/burrow/pkg/report"
	"github.com/hollow-labs/burrow/pkg/search"
	"github.com/hollow-labs/burrow/pkg/store"
)

var (
	searchFormat           string
	searchOutputPath       string
	searchMaxDepth         int
	searchColor            string
	searchQuiet            bool
	searchRespectGitignore bool
)

func runSearch(cmd *cobra.Command, args []string) error {
	needle := args[0]
	root := args[1]

	cfg := search.Config{
		Needle:   needle,
		Root:     root,
		MaxDepth: searchMaxDepth,
	}

	if searchRespectGitignore {
		ignorePath := filepath.Join(root, ".gitignore")
		if _, err := os.Stat(ignorePath); err == nil {
			cfg.IgnoreFile = ignorePath
		}
	}

	// Traversal events go to stderr when emitting JSON so stdout stays pure.
	eventOut := cmd.OutOrStdout()
	if searchFormat == "json" {
		eventOut = cmd.ErrOrStderr()
	}
	cfg.Emitter = search.NewConsoleEmitter(eventOut, colorEnabled(searchColor), searchQuiet)

	engine, err := search.New(cfg)
	if err != nil {
		return err
	}

	records, err := engine.Search()
	if err != nil {
		return fmt.Errorf("searching: %w", err)
	}

	if searchOutputPath != "" {
		s, err := store.New(store.Config{Path: searchOutputPath})
		if err != nil {
			return fmt.Errorf("creating store: %w", err)
		}
		defer s.Close()
		for _, r := range records {
			if err := s.AddRecord(r); err != nil {
				return fmt.Errorf("storing match: %w", err)
			}
		}
	}

	switch searchFormat {
	case "json":
		fmt.Fprintf(cmd.ErrOrStderr(), "Search complete: %d match(es)\n", len(records))
		return report.WriteJSON(cmd.OutOrStdout(), records)
	case "human":
		fmt.Fprintf(cmd.OutOrStdout(), "Search complete: %d match(es)\n", len(records))
		return nil
	default:
		return fmt.Errorf("unknown format: %s", searchFormat)
	}
}

// colorEnabled resolves a --color mode against the NO_COLOR convention and
// terminal detection.
func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}
