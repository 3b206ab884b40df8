package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"modclean/internal/extract"
	"modclean/internal/match"
	"modclean/internal/purge"
	"modclean/pkg/types"
)

// NewPatchCmd creates the patch command
func NewPatchCmd() *cobra.Command {
	var (
		report   string
		dir      string
		sections []string
		del      bool
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "patch",
		Short: "Find files listed in an asset comparison report",
		Long: `Parse a three-way comparison report (Deleted/Added/Changed sections) and
search the content directory for the listed files by exact filename.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if report == "" {
				return fmt.Errorf("no comparison report given; pass --report")
			}
			if dir == "" {
				dir = cfg.ContentDirectory
			}
			if dir == "" {
				return fmt.Errorf("no content directory given; pass --dir or set content_directory in the config")
			}

			include, err := normalizeSections(sections)
			if err != nil {
				return err
			}

			targets, err := extract.ReportTargets(report, include...)
			if err != nil {
				fmt.Println(errorText(fmt.Sprintf("Error: %v", err)))
				return nil
			}
			if len(targets) == 0 {
				fmt.Println("No valid files found in the provided comparison file.")
				return nil
			}

			fmt.Printf("Processing files from sections: %s\n", strings.Join(include, ", "))
			fmt.Printf("Total files to process: %d\n", len(targets))
			previewTargets(targets)

			engine := match.NewWithConfig(cfg)
			fmt.Printf("\nSearching in directory: %s\n", infoText(dir))
			matches, err := engine.SearchExact(dir, targets)
			if err != nil {
				fmt.Println(errorText(fmt.Sprintf("Error scanning directory: %v", err)))
				return nil
			}
			if len(matches) == 0 {
				fmt.Println("No matching files found in the specified directory.")
				return nil
			}

			displayMatchesBySize(matches)

			if del {
				purger := purge.NewWithConfig(cfg)
				purger.SetDryRun(dryRun)
				manageMatches(bufio.NewReader(os.Stdin), matches, purger)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&report, "report", "r", "", "comparison report file (required)")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "directory to scan (defaults to content_directory from config)")
	cmd.Flags().StringSliceVarP(&sections, "sections", "s", nil, "report sections to include: Deleted, Added, Changed (default all)")
	cmd.Flags().BoolVar(&del, "delete", false, "offer to delete matched files")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "log deletions without touching disk")
	cmd.MarkFlagRequired("report")

	return cmd
}

// normalizeSections maps user input onto canonical section names.
func normalizeSections(sections []string) ([]string, error) {
	if len(sections) == 0 {
		return types.AllSections, nil
	}
	var out []string
	for _, s := range sections {
		found := ""
		for _, name := range types.AllSections {
			if strings.EqualFold(strings.TrimSpace(s), name) {
				found = name
				break
			}
		}
		if found == "" {
			return nil, fmt.Errorf("unknown section %q (expected Deleted, Added, or Changed)", s)
		}
		out = append(out, found)
	}
	return out, nil
}

// previewTargets shows the first few targets the way the menu does.
func previewTargets(targets []string) {
	fmt.Println("\nSample of files to process:")
	limit := len(targets)
	if limit > 5 {
		limit = 5
	}
	for _, t := range targets[:limit] {
		fmt.Printf("- %s\n", t)
	}
	if len(targets) > 5 {
		fmt.Printf("... and %d more files\n", len(targets)-5)
	}
}
