package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"modclean/internal/watch"
)

// NewWatchCmd creates the watch command
func NewWatchCmd() *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the engine log and report new missing cooked files",
		Long: `Watch the engine log for changes and print newly reported missing cooked
file targets as they appear. Press Ctrl+C to stop.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if logFile == "" {
				logFile = cfg.LogFilePath
			}
			if logFile == "" {
				return fmt.Errorf("no log file given; pass --log or set log_file_path in the config")
			}

			watcher, err := watch.New(logFile)
			if err != nil {
				return err
			}
			if err := watcher.Start(); err != nil {
				return err
			}
			defer watcher.Stop()

			fmt.Printf("Watching %s for missing cooked file errors. Press Ctrl+C to stop.\n", infoText(logFile))

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			for {
				select {
				case target, ok := <-watcher.Targets():
					if !ok {
						return nil
					}
					fmt.Printf("%s %s\n", warningText("missing:"), target)
				case <-sigChan:
					fmt.Println("\nStopping.")
					return nil
				}
			}
		},
	}

	cmd.Flags().StringVarP(&logFile, "log", "l", "", "engine log file (defaults to log_file_path from config)")

	return cmd
}
