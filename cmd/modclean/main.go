package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"modclean/internal/config"
	"modclean/internal/log"
)

var (
	version = "dev"

	cfgFile string
	cfg     *config.Config
)

// Entry point for the application
func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "modclean",
		Short: "Reconcile and clean up stale Conan Exiles mod asset files",
		Long: `Modclean correlates missing cooked file errors from an engine log, or a
three-way asset comparison report, against files on disk under a mod
content directory, and lets you selectively or bulk delete the matches.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetDebug(debug)

			path := cfgFile
			if path == "" {
				path = config.DefaultFileName
			}
			var err error
			cfg, err = config.LoadFile(path)
			if err != nil {
				fmt.Println(warningText(fmt.Sprintf("Warning: %v", err)))
				fmt.Println("Using default settings.")
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+config.DefaultFileName+")")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(NewScanCmd())
	rootCmd.AddCommand(NewPatchCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewMenuCmd())
	rootCmd.AddCommand(NewTuiCmd())
	rootCmd.AddCommand(NewWatchCmd())

	return rootCmd
}

// configPath returns the active config file path.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultFileName
}

// saveConfig persists the loaded config, reporting but not escalating
// failures.
func saveConfig() {
	if err := config.Save(cfg, configPath()); err != nil {
		fmt.Println(errorText(fmt.Sprintf("Error saving config: %v", err)))
	}
}
