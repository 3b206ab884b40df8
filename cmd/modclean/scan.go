package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"modclean/internal/extract"
	"modclean/internal/match"
	"modclean/internal/purge"
)

// NewScanCmd creates the scan command
func NewScanCmd() *cobra.Command {
	var (
		logFile string
		dir     string
		del     bool
		dryRun  bool
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Find files named in missing cooked file errors",
		Long: `Scan an engine log for missing cooked file errors and search the mod
content directory for the named assets using fuzzy path matching.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if logFile == "" {
				logFile = cfg.LogFilePath
			}
			if logFile == "" {
				return fmt.Errorf("no log file given; pass --log or set log_file_path in the config")
			}
			if dir == "" {
				dir = cfg.SearchDirectory
			}
			if dir == "" {
				return fmt.Errorf("no search directory given; pass --dir or set search_directory in the config")
			}

			targets, err := extract.Targets(logFile)
			if err != nil {
				fmt.Println(errorText(fmt.Sprintf("Error: %v", err)))
				return nil
			}
			if len(targets) == 0 {
				fmt.Println("No files to search for were found in the log file.")
				return nil
			}

			fmt.Println(primaryText("Found the following files to search for:"))
			for _, t := range targets {
				fmt.Printf("- %s\n", t)
			}

			engine := match.NewWithConfig(cfg)
			fmt.Printf("\nSearching in: %s\n", infoText(dir))
			matches, err := engine.Search(dir, targets)
			if err != nil {
				fmt.Println(errorText(fmt.Sprintf("Error scanning directory: %v", err)))
				return nil
			}
			if len(matches) == 0 {
				fmt.Println("\nNo matching files were found.")
				return nil
			}

			displayMatches(matches, engine.Threshold())

			if del {
				purger := purge.NewWithConfig(cfg)
				purger.SetDryRun(dryRun)
				manageMatches(bufio.NewReader(os.Stdin), matches, purger)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&logFile, "log", "l", "", "engine log file (defaults to log_file_path from config)")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "directory to search (defaults to search_directory from config)")
	cmd.Flags().BoolVar(&del, "delete", false, "offer to delete matched files")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "log deletions without touching disk")

	return cmd
}
