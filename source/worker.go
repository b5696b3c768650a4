// Package source watches a directory of item-source files. When a source
// file changes, every session bound to it is reconciled against the new
// item list, preserving prior toggle flags by name.
package source

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/xiaoyuanzhu-com/list-filter/db"
	"github.com/xiaoyuanzhu-com/list-filter/log"
	"github.com/xiaoyuanzhu-com/list-filter/notifications"
	"github.com/xiaoyuanzhu-com/list-filter/togglelist"
)

var logger = log.GetLogger("Source")

// watchedExtensions are the source file types the worker reacts to
var watchedExtensions = map[string]bool{
	".json": true,
	".txt":  true,
	".csv":  true,
}

// Worker watches the sources directory for item list changes
type Worker struct {
	sourcesDir string
	watcher    *fsnotify.Watcher
	debouncer  *debouncer
	stopChan   chan struct{}
	wg         sync.WaitGroup
}

var (
	instance     *Worker
	instanceOnce sync.Once
)

// GetWorker returns the singleton source worker instance, or nil if no
// worker has been created yet
func GetWorker() *Worker {
	return instance
}

// NewWorker creates a new source worker over the given directory
func NewWorker(sourcesDir string) *Worker {
	w := &Worker{
		sourcesDir: sourcesDir,
		stopChan:   make(chan struct{}),
	}
	w.debouncer = newDebouncer(DefaultDebounceDelay, w.reconcileSource)
	// Set as singleton instance
	instanceOnce.Do(func() {
		instance = w
	})
	return w
}

// Start begins watching the sources directory
func (w *Worker) Start() error {
	if err := os.MkdirAll(w.sourcesDir, 0755); err != nil {
		return err
	}

	var err error
	w.watcher, err = fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if err := w.watcher.Add(w.sourcesDir); err != nil {
		w.watcher.Close()
		return err
	}

	w.wg.Add(1)
	go w.eventLoop()

	logger.Info().Str("dir", w.sourcesDir).Msg("source watcher started")
	return nil
}

// Stop stops the worker gracefully
func (w *Worker) Stop() {
	w.debouncer.Stop()
	close(w.stopChan)
	if w.watcher != nil {
		w.watcher.Close()
	}
	w.wg.Wait()
}

func (w *Worker) eventLoop() {
	defer w.wg.Done()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			if !watchedExtensions[strings.ToLower(filepath.Ext(event.Name))] {
				continue
			}
			w.debouncer.Queue(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn().Err(err).Msg("watcher error")

		case <-w.stopChan:
			return
		}
	}
}

// ReconcileNow re-reads a source file and reconciles its sessions without
// waiting for a filesystem event. Used by the API when a session is first
// bound to a source.
func (w *Worker) ReconcileNow(source string) {
	w.reconcileSource(filepath.Join(w.sourcesDir, source))
}

// reconcileSource parses the changed source file and carries every bound
// session's toggle flags over to the new item list
func (w *Worker) reconcileSource(path string) {
	source := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn().Err(err).Str("source", source).Msg("failed to read source file")
		return
	}

	names, err := togglelist.Parse(string(data))
	if err != nil {
		// Likely a partial write or malformed edit; keep prior session
		// state rather than reconciling everything away
		logger.Warn().Str("source", source).Msg("source file not parsable, skipping")
		return
	}

	sessions, err := db.ListSessionsBySource(source)
	if err != nil {
		logger.Error().Err(err).Str("source", source).Msg("failed to list sessions for source")
		return
	}
	if len(sessions) == 0 {
		return
	}

	updated := 0
	for _, rec := range sessions {
		state := togglelist.Deserialize(rec.State)
		state.Reconcile(names)
		if err := db.UpdateSessionState(rec.ID, state.Serialize()); err != nil {
			logger.Error().Err(err).Str("session", rec.ID).Msg("failed to update session state")
			continue
		}
		updated++
	}

	logger.Info().
		Str("source", source).
		Int("items", len(names)).
		Int("sessions", updated).
		Msg("source reconciled")

	notifications.GetService().NotifySourceChanged(source, updated)
}
