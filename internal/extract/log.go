// Package extract derives target asset paths from engine logs and from
// comparison reports produced by external diffing tools.
package extract

import (
	"bufio"
	"os"
	"strings"

	apperrors "modclean/internal/errors"
)

const (
	// missingCookedMarker tags engine log lines worth extracting from.
	missingCookedMarker = "Missing cooked file:"
	// Anchor is the path segment a logical asset path starts at.
	Anchor = "Content/Mods/"
)

// Targets extracts asset paths starting at the Content/Mods/ anchor from an
// engine log. Lines without the marker or the anchor are skipped. A missing
// log file returns an empty list and a reportable error.
func Targets(logFile string) ([]string, error) {
	f, err := os.Open(logFile)
	if err != nil {
		return nil, apperrors.NewFileError("could not open log file", logFile, apperrors.FileNotFound, err)
	}
	defer f.Close()

	var targets []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, missingCookedMarker) {
			continue
		}
		idx := strings.Index(line, Anchor)
		if idx < 0 {
			continue
		}
		target := strings.TrimSpace(line[idx:])
		target = strings.Trim(target, `'"`)
		if target != "" {
			targets = append(targets, target)
		}
	}
	if err := scanner.Err(); err != nil {
		return targets, apperrors.NewFileError("error reading log file", logFile, apperrors.FileAccessDenied, err)
	}
	return targets, nil
}
