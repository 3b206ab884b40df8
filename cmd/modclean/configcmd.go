package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"modclean/internal/config"
)

// NewConfigCmd creates the config command with show and set subcommands
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or update the saved configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the current configuration",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(primaryText("Current Configuration:"))
			for _, key := range config.Keys() {
				fmt.Printf("%s: %s\n", key, cfg.Get(key))
			}
			fmt.Printf("last_modified: %s\n", cfg.Get("last_modified"))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value and save",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := config.Save(cfg, configPath()); err != nil {
				return err
			}
			fmt.Println(successText(fmt.Sprintf("Set %s = %s", args[0], cfg.Get(args[0]))))
			return nil
		},
	})

	return cmd
}
