package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"modclean/internal/extract"
	"modclean/internal/match"
	"modclean/internal/purge"
	"modclean/internal/tui"
)

// NewTuiCmd creates the TUI command
func NewTuiCmd() *cobra.Command {
	var (
		logFile string
		dir     string
		dryRun  bool
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Review and delete matched files in a terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			if logFile == "" {
				logFile = cfg.LogFilePath
			}
			if dir == "" {
				dir = cfg.SearchDirectory
			}
			if logFile == "" || dir == "" {
				return fmt.Errorf("a log file and search directory are required; pass flags or set them in the config")
			}

			targets, err := extract.Targets(logFile)
			if err != nil {
				return err
			}
			if len(targets) == 0 {
				fmt.Println("No files to search for were found in the log file.")
				return nil
			}

			matches, err := match.NewWithConfig(cfg).Search(dir, targets)
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				fmt.Println("No matching files were found.")
				return nil
			}

			purger := purge.NewWithConfig(cfg)
			purger.SetDryRun(dryRun)

			m := tui.New(matches, purger)
			p := tea.NewProgram(m)
			if _, err := p.Run(); err != nil {
				fmt.Printf("Error running TUI: %v\n", err)
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&logFile, "log", "l", "", "engine log file (defaults to log_file_path from config)")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "directory to search (defaults to search_directory from config)")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "log deletions without touching disk")

	return cmd
}
