package extract

import (
	"bufio"
	"os"
	"strings"

	apperrors "modclean/internal/errors"
	"modclean/pkg/types"
)

// reportPreamble starts the version line comparison reports open with.
const reportPreamble = "Asset changes between"

// ParseReport parses a comparison report into its Deleted/Added/Changed
// sections. Malformed input never errors; whatever was parsed before an
// anomaly is returned. A missing file returns empty sections and a
// reportable error.
func ParseReport(path string) (*types.Sections, error) {
	sections := &types.Sections{}

	f, err := os.Open(path)
	if err != nil {
		return sections, apperrors.NewFileError("could not open comparison file", path, apperrors.FileNotFound, err)
	}
	defer f.Close()

	current := ""
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Blank lines and dash dividers carry no content.
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		if strings.HasPrefix(line, reportPreamble) {
			continue
		}

		switch line {
		case types.SectionDeleted, types.SectionAdded, types.SectionChanged:
			current = line
			continue
		}

		// Lines before the first header have no home and are dropped.
		if current != "" {
			sections.Append(current, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return sections, apperrors.NewFileError("error reading comparison file", path, apperrors.InvalidReport, err)
	}
	return sections, nil
}

// ReportTargets loads the deduplicated union of the named report sections.
// With no sections given, all three are included.
func ReportTargets(path string, include ...string) ([]string, error) {
	sections, err := ParseReport(path)
	if err != nil {
		return nil, err
	}
	return sections.Union(include...), nil
}
