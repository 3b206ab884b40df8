package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"modclean/internal/config"
	"modclean/internal/extract"
	"modclean/internal/match"
	"modclean/internal/purge"
	"modclean/pkg/types"
)

// NewMenuCmd creates the interactive menu command
func NewMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu",
		Long:  `Run the numbered interactive menu for scanning and deleting mod files.`,
		Run: func(cmd *cobra.Command, args []string) {
			runMenu(bufio.NewReader(os.Stdin))
		},
	}
}

func runMenu(reader *bufio.Reader) {
	for {
		fmt.Println(primaryText("\nConan Exiles Mod File Manager"))
		fmt.Println("\nMenu Options:")
		fmt.Println("1. Search for missing cooked files and delete")
		fmt.Println("2. View current configuration")
		fmt.Println("3. Update configuration")
		fmt.Println("4. Find patch modified files")
		fmt.Println("q. Quit")

		switch choice := readLine(reader, "Enter your choice: "); choice {
		case "q", "Q":
			return
		case "1":
			menuLogScan(reader)
		case "2":
			fmt.Println(primaryText("\nCurrent Configuration:"))
			for _, key := range config.Keys() {
				fmt.Printf("%s: %s\n", key, cfg.Get(key))
			}
			fmt.Printf("last_modified: %s\n", cfg.Get("last_modified"))
		case "3":
			menuUpdateConfig(reader)
		case "4":
			menuPatchScan(reader)
		default:
			fmt.Println(errorText("Invalid choice. Please try again."))
		}
	}
}

// menuLogScan drives the missing-cooked-file flow: log path, extraction,
// fuzzy search, then the delete sub-loop.
func menuLogScan(reader *bufio.Reader) {
	logFile := pathWithDefault(reader, "Please enter the path to your log file: ", cfg.LogFilePath)
	if logFile == "" {
		fmt.Println(errorText("No log file given."))
		return
	}
	if logFile != cfg.LogFilePath {
		cfg.LogFilePath = logFile
		saveConfig()
	}

	targets, err := extract.Targets(logFile)
	if err != nil {
		fmt.Println(errorText(fmt.Sprintf("Error: %v", err)))
	}
	if len(targets) == 0 {
		fmt.Println("No files to search for were found in the log file.")
		return
	}

	fmt.Println("\nFound the following files to search for:")
	for _, t := range targets {
		fmt.Printf("- %s\n", t)
	}

	searchDir := pathWithDefault(reader,
		"\nEnter path to your ConanSandbox/Content/Mods directory: ", cfg.SearchDirectory)
	if searchDir == "" {
		fmt.Println(errorText("No search directory given."))
		return
	}
	if searchDir != cfg.SearchDirectory {
		cfg.SearchDirectory = searchDir
		saveConfig()
	}

	engine := match.NewWithConfig(cfg)
	fmt.Printf("\nSearching in: %s\n", infoText(searchDir))
	matches, err := engine.Search(searchDir, targets)
	if err != nil {
		fmt.Println(errorText(fmt.Sprintf("Error scanning directory: %v", err)))
		return
	}
	if len(matches) == 0 {
		fmt.Println("\nNo matching files were found.")
		return
	}

	displayMatches(matches, engine.Threshold())
	manageMatches(reader, matches, purge.NewWithConfig(cfg))
}

// menuUpdateConfig walks every editable key, keeping the current value on
// empty input.
func menuUpdateConfig(reader *bufio.Reader) {
	fmt.Println(primaryText("\nUpdating Configuration"))
	for _, key := range config.Keys() {
		fmt.Printf("\nCurrent %s: %s\n", key, cfg.Get(key))
		value := readLine(reader, fmt.Sprintf("Enter new value for %s (or press Enter to keep current): ", key))
		if value == "" {
			continue
		}
		if err := cfg.Set(key, value); err != nil {
			fmt.Println(errorText(err.Error()))
		}
	}
	saveConfig()
	fmt.Println(successText("Configuration updated successfully!"))
}

// menuPatchScan drives the comparison-report flow: directory, report path,
// section selection, exact search, then the delete sub-loop.
func menuPatchScan(reader *bufio.Reader) {
	contentDir := pathWithDefault(reader, "Enter the directory to scan: ", cfg.ContentDirectory)
	if _, err := os.Stat(contentDir); err != nil {
		fmt.Println(errorText("Error: Directory does not exist."))
		return
	}
	if contentDir != cfg.ContentDirectory {
		cfg.ContentDirectory = contentDir
		saveConfig()
	}

	reportPath := readLine(reader, "Enter the path to your comparison file: ")
	include := chooseSections(reader)

	targets, err := extract.ReportTargets(reportPath, include...)
	if err != nil {
		fmt.Println(errorText(fmt.Sprintf("Error: %v", err)))
	}
	if len(targets) == 0 {
		fmt.Println("No valid files found in the provided comparison file.")
		return
	}

	fmt.Printf("\nProcessing files from sections: %s\n", strings.Join(include, ", "))
	fmt.Printf("Total files to process: %d\n", len(targets))
	previewTargets(targets)

	engine := match.NewWithConfig(cfg)
	fmt.Printf("\nSearching in directory: %s\n", infoText(contentDir))
	matches, err := engine.SearchExact(contentDir, targets)
	if err != nil {
		fmt.Println(errorText(fmt.Sprintf("Error scanning directory: %v", err)))
		return
	}
	if len(matches) == 0 {
		fmt.Println("No matching files found in the specified directory.")
		return
	}

	displayMatchesBySize(matches)
	manageMatches(reader, matches, purge.NewWithConfig(cfg))
}

// chooseSections asks which report sections to process.
func chooseSections(reader *bufio.Reader) []string {
	fmt.Println("\nWhich sections would you like to process?")
	fmt.Println("1. All sections")
	fmt.Println("2. Only Deleted files")
	fmt.Println("3. Only Added files")
	fmt.Println("4. Only Changed files")
	fmt.Println("5. Custom combination")

	switch readLine(reader, "Enter your choice (1-5): ") {
	case "1":
		return types.AllSections
	case "2":
		return []string{types.SectionDeleted}
	case "3":
		return []string{types.SectionAdded}
	case "4":
		return []string{types.SectionChanged}
	case "5":
		var include []string
		if confirmPrompt(reader, "Include Deleted files?") {
			include = append(include, types.SectionDeleted)
		}
		if confirmPrompt(reader, "Include Added files?") {
			include = append(include, types.SectionAdded)
		}
		if confirmPrompt(reader, "Include Changed files?") {
			include = append(include, types.SectionChanged)
		}
		return include
	default:
		fmt.Println(warningText("Invalid choice. Processing all sections."))
		return types.AllSections
	}
}
