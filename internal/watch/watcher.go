// Package watch follows an engine log and reports newly logged missing
// cooked files as they appear.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"modclean/internal/extract"
	"modclean/internal/log"
)

// Watcher monitors an engine log file using fsnotify and emits targets
// that have not been seen before.
type Watcher struct {
	logFile string

	// Channel delivering newly discovered targets
	targetChan chan string

	// Channel to signal stop
	stopChan chan struct{}

	// fsnotify watcher instance
	fsWatcher *fsnotify.Watcher

	// Lock for running state and the seen set
	mutex sync.Mutex

	seen    map[string]struct{}
	running bool
}

// New creates a watcher for the given engine log file. The log's parent
// directory must exist; the log itself may not yet.
func New(logFile string) (*Watcher, error) {
	abs, err := filepath.Abs(logFile)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(abs)
	if info, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("error accessing log directory: %w", err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &Watcher{
		logFile:    abs,
		targetChan: make(chan string, 64),
		stopChan:   make(chan struct{}),
		fsWatcher:  fsWatcher,
		seen:       make(map[string]struct{}),
	}, nil
}

// Targets returns the channel on which newly discovered targets arrive.
func (w *Watcher) Targets() <-chan string {
	return w.targetChan
}

// Start begins watching. Targets already present in the log are consumed
// into the seen set first so only later additions are emitted.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mutex.Unlock()

	if targets, err := extract.Targets(w.logFile); err == nil {
		w.mutex.Lock()
		for _, t := range targets {
			w.seen[t] = struct{}{}
		}
		w.mutex.Unlock()
	}

	go w.loop()
	return nil
}

// Stop halts the watcher and closes the target channel.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if !w.running {
		return
	}
	w.running = false
	close(w.stopChan)
	w.fsWatcher.Close()
}

func (w *Watcher) loop() {
	defer close(w.targetChan)

	for {
		select {
		case <-w.stopChan:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Name != w.logFile {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.rescan()
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warnf("watch error: %v", err)
		}
	}
}

// rescan re-extracts the log and emits targets not seen before.
func (w *Watcher) rescan() {
	targets, err := extract.Targets(w.logFile)
	if err != nil {
		log.Debugf("rescan failed: %v", err)
		return
	}

	for _, t := range targets {
		w.mutex.Lock()
		_, dup := w.seen[t]
		if !dup {
			w.seen[t] = struct{}{}
		}
		w.mutex.Unlock()
		if dup {
			continue
		}
		select {
		case w.targetChan <- t:
		case <-w.stopChan:
			return
		}
	}
}
