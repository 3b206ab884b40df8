package types

import (
	"fmt"
	"path/filepath"
)

// Match represents a file on disk that matched a target asset path.
type Match struct {
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	Orphaned bool   `json:"orphaned,omitempty"`
}

// Name returns the base name of the matched file
func (m Match) Name() string {
	return filepath.Base(m.Path)
}

// String returns a human-readable representation
func (m Match) String() string {
	if m.Orphaned {
		return fmt.Sprintf("%s (%s, likely orphaned)", m.Path, FormatSize(m.Size))
	}
	return fmt.Sprintf("%s (%s)", m.Path, FormatSize(m.Size))
}

// FormatSize converts a size in bytes to a human readable string.
func FormatSize(size int64) string {
	s := float64(size)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if s < 1024.0 {
			return fmt.Sprintf("%.2f %s", s, unit)
		}
		s /= 1024.0
	}
	return fmt.Sprintf("%.2f TB", s)
}
