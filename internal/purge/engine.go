// Package purge removes matched files from disk.
package purge

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"modclean/internal/config"
	"modclean/internal/log"
	"modclean/pkg/types"
)

// Engine deletes matched files. One failed deletion never aborts the
// batch; failures are collected and returned to the caller.
type Engine struct {
	dryRun    bool
	backupDir string
}

// New creates an Engine with no backup directory and dry run disabled.
func New() *Engine {
	return &Engine{}
}

// NewWithConfig creates an Engine that backs deleted files up into the
// configured backup directory when one is set.
func NewWithConfig(cfg *config.Config) *Engine {
	return &Engine{backupDir: cfg.BackupDirectory}
}

// SetDryRun sets whether deletions are performed or just logged.
func (e *Engine) SetDryRun(dryRun bool) {
	e.dryRun = dryRun
}

// IsDryRun returns whether the engine is in dry run mode.
func (e *Engine) IsDryRun() bool {
	return e.dryRun
}

// Delete removes each matched file, returning the number of successful
// deletions and the paths that failed. A file already absent from disk
// counts as a failure, not an error.
func (e *Engine) Delete(matches []types.Match) (int, []string) {
	success := 0
	var failed []string

	for _, m := range matches {
		if e.dryRun {
			log.Info("would delete %s (%s)", m.Path, types.FormatSize(m.Size))
			success++
			continue
		}
		if err := e.deleteOne(m.Path); err != nil {
			log.Errorf("error deleting %s: %v", m.Path, err)
			failed = append(failed, m.Path)
			continue
		}
		log.Info("deleted %s", m.Path)
		success++
	}

	return success, failed
}

// deleteOne backs the file up if a backup directory is configured, then
// removes it.
func (e *Engine) deleteOne(path string) error {
	if e.backupDir != "" {
		if err := e.backup(path); err != nil {
			return fmt.Errorf("backup before delete failed: %w", err)
		}
	}
	return os.Remove(path)
}

// backup copies the file into the backup directory under its base name.
func (e *Engine) backup(path string) error {
	if err := os.MkdirAll(e.backupDir, 0755); err != nil {
		return err
	}

	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(e.backupDir, filepath.Base(path)))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

// Prune drops matches whose files no longer exist on disk. Used after a
// bulk delete with partial failures to re-validate the in-memory list.
func Prune(matches []types.Match) []types.Match {
	out := matches[:0]
	for _, m := range matches {
		if _, err := os.Stat(m.Path); err == nil {
			out = append(out, m)
		}
	}
	return out
}
