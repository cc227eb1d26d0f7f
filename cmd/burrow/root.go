package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "burrow <string> <path>",
	Short: "Burrow - recursive string search through nested archives",
	Long: `Burrow searches a directory tree for a literal string, descending into
nested archives (tar, zip, 7z, rar) as if their contents were part of the
filesystem. It reports matches in file names, text content, and binary
content under multiple text encodings.`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func init() {
	rootCmd.Flags().StringVar(&searchFormat, "format", "human", "Output format: human, json")
	rootCmd.Flags().StringVar(&searchOutputPath, "output", "", "Persist matches to a SQLite database at this path")
	rootCmd.Flags().IntVar(&searchMaxDepth, "max-depth", 0, "Maximum archive nesting depth (0 = default)")
	rootCmd.Flags().StringVar(&searchColor, "color", "auto", "Color output: auto, always, never")
	rootCmd.Flags().BoolVarP(&searchQuiet, "quiet", "q", false, "Suppress informational lines")
	rootCmd.Flags().BoolVar(&searchRespectGitignore, "respect-gitignore", false, "Skip entries matched by the root's .gitignore")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
