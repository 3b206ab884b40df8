package match

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"modclean/internal/config"
	"modclean/internal/log"
	"modclean/pkg/types"
)

// Engine searches a directory tree for files matching target asset paths.
type Engine struct {
	threshold int64
	filter    *Filter
}

// New creates an Engine with the default orphan threshold and no
// extension filter.
func New() *Engine {
	return &Engine{threshold: config.DefaultOrphanThreshold}
}

// NewWithConfig creates an Engine using the configured orphan threshold
// and extension filter.
func NewWithConfig(cfg *config.Config) *Engine {
	threshold := cfg.OrphanThreshold
	if threshold <= 0 {
		threshold = config.DefaultOrphanThreshold
	}
	return &Engine{
		threshold: threshold,
		filter:    NewFilter(cfg.ExtensionsFilter),
	}
}

// Threshold returns the orphan size threshold in bytes.
func (e *Engine) Threshold() int64 {
	return e.threshold
}

// fileEntry is one regular file seen during a walk.
type fileEntry struct {
	path string
	name string
	size int64
}

// Search walks root once and correlates every target against the files
// found. A candidate is accepted when its filename matches the target's
// case-insensitively and its trailing path components agree with the
// target's after normalization; same-named files elsewhere in the tree are
// rejected and logged. Results are ordered likely-orphans first, then by
// size ascending.
func (e *Engine) Search(root string, rawTargets []string) ([]types.Match, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(absRoot); err != nil {
		return nil, err
	}

	entries, err := e.collect(absRoot)
	if err != nil {
		return nil, err
	}

	var matches []types.Match
	seen := make(map[string]struct{})
	for _, raw := range rawTargets {
		target := NewTarget(raw)
		if target.Filename == "" {
			log.Warnf("skipping empty target path %q", raw)
			continue
		}
		for _, entry := range entries {
			if !strings.EqualFold(entry.name, target.Filename) {
				continue
			}
			rel, err := filepath.Rel(absRoot, entry.path)
			if err != nil {
				log.Warnf("could not compute relative path for %s: %v", entry.path, err)
				continue
			}
			if !suffixMatches(target, candidateSuffix(filepath.ToSlash(rel))) {
				log.Debugf("skipping false positive %s for target %s", entry.path, target.Raw)
				continue
			}
			if _, dup := seen[entry.path]; dup {
				continue
			}
			seen[entry.path] = struct{}{}
			matches = append(matches, types.Match{
				Path:     entry.path,
				Size:     entry.size,
				Orphaned: entry.size < e.threshold,
			})
		}
	}

	sortMatches(matches)
	return matches, nil
}

// SearchExact walks root and accepts any file whose name matches any
// target's base filename case-insensitively, with no path correlation.
// Walk order is preserved.
func (e *Engine) SearchExact(root string, rawTargets []string) ([]types.Match, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(absRoot); err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(rawTargets))
	for _, raw := range rawTargets {
		base := filepath.Base(strings.ReplaceAll(raw, `\`, "/"))
		if base != "" && base != "." {
			wanted[strings.ToLower(base)] = struct{}{}
		}
	}

	entries, err := e.collect(absRoot)
	if err != nil {
		return nil, err
	}

	var matches []types.Match
	for _, entry := range entries {
		if _, ok := wanted[strings.ToLower(entry.name)]; !ok {
			continue
		}
		matches = append(matches, types.Match{
			Path:     entry.path,
			Size:     entry.size,
			Orphaned: entry.size < e.threshold,
		})
	}
	return matches, nil
}

// collect enumerates every regular file under root that passes the
// extension filter. Per-entry errors are reported and skipped so one
// unreadable directory never aborts a scan.
func (e *Engine) collect(root string) ([]fileEntry, error) {
	var entries []fileEntry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warnf("error accessing %s: %v", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if !e.filter.Match(name) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			log.Warnf("error reading file info for %s: %v", path, err)
			return nil
		}
		entries = append(entries, fileEntry{path: path, name: name, size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// sortMatches orders likely-orphans before everything else, size ascending
// within each group.
func sortMatches(matches []types.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Orphaned != matches[j].Orphaned {
			return matches[i].Orphaned
		}
		return matches[i].Size < matches[j].Size
	})
}
