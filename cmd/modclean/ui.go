package main

import (
	"bufio"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"modclean/internal/purge"
	"modclean/pkg/types"
)

// Text helpers shared by every command.
var (
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	primaryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	emphasisStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
)

func successText(s string) string  { return successStyle.Render(s) }
func errorText(s string) string    { return errorStyle.Render(s) }
func warningText(s string) string  { return warningStyle.Render(s) }
func infoText(s string) string     { return infoStyle.Render(s) }
func primaryText(s string) string  { return primaryStyle.Render(s) }
func emphasisText(s string) string { return emphasisStyle.Render(s) }

// readLine prompts and returns one trimmed input line.
func readLine(reader *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// confirmPrompt asks a y/n question; anything but y declines.
func confirmPrompt(reader *bufio.Reader, prompt string) bool {
	return strings.EqualFold(readLine(reader, prompt+" (y/n): "), "y")
}

// pathWithDefault prompts for a path, offering the saved value first.
func pathWithDefault(reader *bufio.Reader, prompt, defaultValue string) string {
	if defaultValue != "" {
		fmt.Printf("Current saved path: %s\n", emphasisText(defaultValue))
		if confirmPrompt(reader, "Use this path?") {
			return defaultValue
		}
	}
	return readLine(reader, prompt)
}

// displayMatches prints the numbered result list with orphan annotations.
func displayMatches(matches []types.Match, threshold int64) {
	fmt.Printf("\n%s\n", primaryText(fmt.Sprintf("Found %d matching files:", len(matches))))
	orphans := 0
	for i, m := range matches {
		fmt.Printf("%d. %s\n", i+1, m.Path)
		if m.Orphaned {
			fmt.Printf("   Size: %s %s\n", types.FormatSize(m.Size), warningText("(likely orphaned)"))
			orphans++
		} else {
			fmt.Printf("   Size: %s\n", types.FormatSize(m.Size))
		}
	}
	if orphans > 0 {
		fmt.Printf("\n%s\n", warningText(fmt.Sprintf(
			"Found %d potential orphaned files (size < %s)", orphans, types.FormatSize(threshold))))
		fmt.Println("These are likely leftover files from engine asset deletion and can be safely removed")
	}
}

// displayMatchesBySize prints matches sorted largest first, the report
// mode presentation.
func displayMatchesBySize(matches []types.Match) {
	sorted := make([]types.Match, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Size > sorted[j].Size })

	fmt.Printf("\nTotal matching files found: %d\n", len(sorted))
	fmt.Println("\nMatching files found (sorted by size):")
	for i, m := range sorted {
		fmt.Printf("%d. %s\n", i+1, m.Path)
		fmt.Printf("   Size: %s\n", types.FormatSize(m.Size))
	}
}

// manageMatches runs the delete-one / delete-all sub-loop until the list
// is empty or the operator backs out. It returns the remaining matches.
func manageMatches(reader *bufio.Reader, matches []types.Match, engine *purge.Engine) []types.Match {
	for len(matches) > 0 {
		fmt.Println("\nFile Management Options:")
		fmt.Println("1. Delete individual file (enter file number)")
		fmt.Println("2. Delete all files")
		fmt.Println("q. Return to main menu")

		switch choice := readLine(reader, "Enter your choice: "); strings.ToLower(choice) {
		case "q":
			return matches

		case "1":
			idxText := readLine(reader, "Enter file number to delete: ")
			idx, err := strconv.Atoi(idxText)
			if err != nil {
				fmt.Println(errorText("Please enter a valid number."))
				continue
			}
			if idx < 1 || idx > len(matches) {
				fmt.Println(errorText("Invalid file number."))
				continue
			}
			target := matches[idx-1]
			if !confirmPrompt(reader, fmt.Sprintf("Are you sure you want to delete '%s'?", target.Path)) {
				continue
			}
			success, _ := engine.Delete([]types.Match{target})
			if success > 0 {
				fmt.Println(successText(fmt.Sprintf("Successfully deleted: %s", target.Path)))
				matches = append(matches[:idx-1], matches[idx:]...)
			}

		case "2":
			if !confirmPrompt(reader, fmt.Sprintf("Are you sure you want to delete ALL %d files?", len(matches))) {
				continue
			}
			success, failed := engine.Delete(matches)
			fmt.Println(successText(fmt.Sprintf("\nSuccessfully deleted %d out of %d files.", success, len(matches))))
			if len(failed) > 0 {
				fmt.Println(errorText("\nFailed to delete the following files:"))
				for _, path := range failed {
					fmt.Printf("- %s\n", path)
				}
			}
			// Partial failures can leave stale entries behind.
			matches = purge.Prune(matches)

		default:
			fmt.Println(errorText("Invalid choice. Please try again."))
		}
	}
	return matches
}
